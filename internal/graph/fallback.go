package graph

import "strings"

// Synthesize produces a deterministic workflow graph from document content
// without calling any external service. The document text is classified by
// keyword into a domain bucket, and each (flow, bucket) pair maps to a
// hand-authored reference graph with realistic branch points, retry loops,
// and escalation paths. Unrecognized flows receive a generic default.
//
// Synthesize is pure: identical inputs always yield structurally identical
// graphs.
func Synthesize(content string, flow Flow) []Node {
	lowered := strings.ToLower(content)

	switch flow {
	case FlowUserJourney:
		return userJourney(lowered)
	case FlowServiceBlueprint:
		return serviceBlueprint(lowered)
	case FlowFeatureFlow:
		return featureFlow(lowered)
	default:
		return genericFlow()
	}
}

func containsAny(content string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(content, kw) {
			return true
		}
	}
	return false
}

func node(id string, kind Kind, label string, x, y int, connections ...string) Node {
	if connections == nil {
		connections = []string{}
	}
	return Node{ID: id, Kind: kind, Label: label, X: x, Y: y, Connections: connections}
}

func userJourney(content string) []Node {
	switch {
	case containsAny(content, "e-commerce", "shopping", "cart"):
		return []Node{
			node("start", KindStart, "User Opens App", 200, 100, "browse"),
			node("browse", KindProcess, "Browse Products", 500, 100, "select"),
			node("select", KindProcess, "Select Items", 800, 100, "cart"),
			node("cart", KindProcess, "Add to Cart", 1100, 100, "auth_check"),
			node("auth_check", KindDecision, "User Logged In?", 1400, 100, "payment", "login"),
			node("login", KindProcess, "Login/Register", 1400, 300, "payment"),
			node("payment", KindProcess, "Process Payment", 1700, 100, "success_check"),
			node("success_check", KindDecision, "Payment Success?", 2000, 100, "confirmation", "retry"),
			node("retry", KindProcess, "Retry Payment", 2000, 300, "payment"),
			node("confirmation", KindProcess, "Order Confirmation", 2300, 100, "end"),
			node("end", KindEnd, "Order Complete", 2600, 100),
		}
	case containsAny(content, "social", "post", "media"):
		return []Node{
			node("start", KindStart, "User Login", 200, 100, "dashboard"),
			node("dashboard", KindProcess, "View Dashboard", 500, 100, "create"),
			node("create", KindProcess, "Create Post", 800, 100, "content_check"),
			node("content_check", KindDecision, "Content Valid?", 1100, 100, "schedule", "edit"),
			node("edit", KindProcess, "Edit Content", 1100, 300, "content_check"),
			node("schedule", KindDecision, "Schedule or Publish?", 1400, 100, "publish", "schedule_time"),
			node("schedule_time", KindProcess, "Set Schedule Time", 1400, 50, "publish"),
			node("publish", KindProcess, "Publish Content", 1700, 100, "end"),
			node("end", KindEnd, "Post Published", 2000, 100),
		}
	default:
		return []Node{
			node("start", KindStart, "User Entry", 200, 100, "discover"),
			node("discover", KindProcess, "Discover Features", 500, 100, "valid_check"),
			node("valid_check", KindDecision, "Valid Input?", 800, 100, "interact", "error"),
			node("error", KindProcess, "Show Error Message", 800, 300, "discover"),
			node("interact", KindProcess, "User Interaction", 1100, 100, "complete"),
			node("complete", KindProcess, "Complete Task", 1400, 100, "end"),
			node("end", KindEnd, "Task Complete", 1700, 100),
		}
	}
}

func serviceBlueprint(content string) []Node {
	if containsAny(content, "support", "ticket", "customer") {
		return []Node{
			node("start", KindStart, "Service Request", 200, 100, "validate"),
			node("validate", KindProcess, "Validate Request", 500, 100, "valid_check"),
			node("valid_check", KindDecision, "Request Valid?", 800, 100, "route", "reject"),
			node("reject", KindProcess, "Reject Request", 800, 300, "notify_rejection"),
			node("notify_rejection", KindEnd, "Rejection Sent", 1100, 300),
			node("route", KindProcess, "Route to Team", 1100, 100, "priority"),
			node("priority", KindDecision, "High Priority?", 1400, 100, "escalate", "resolve"),
			node("escalate", KindProcess, "Escalate to Manager", 1400, 50, "resolve"),
			node("resolve", KindProcess, "Resolve Issue", 1700, 100, "quality_check"),
			node("quality_check", KindDecision, "Quality Approved?", 2000, 100, "notify", "rework"),
			node("rework", KindProcess, "Rework Solution", 2000, 300, "resolve"),
			node("notify", KindProcess, "Notify Customer", 2300, 100, "end"),
			node("end", KindEnd, "Service Complete", 2600, 100),
		}
	}
	return []Node{
		node("start", KindStart, "Service Trigger", 200, 100, "validate"),
		node("validate", KindProcess, "Input Validation", 500, 100, "valid_check"),
		node("valid_check", KindDecision, "Input Valid?", 800, 100, "process", "error"),
		node("error", KindEnd, "Error Response", 800, 300),
		node("process", KindProcess, "Core Processing", 1100, 100, "quality"),
		node("quality", KindDecision, "Quality Check Pass?", 1400, 100, "deliver", "retry"),
		node("retry", KindProcess, "Retry Processing", 1400, 300, "process"),
		node("deliver", KindProcess, "Service Delivery", 1700, 100, "end"),
		node("end", KindEnd, "Service Complete", 2000, 100),
	}
}

func featureFlow(content string) []Node {
	if containsAny(content, "api", "integration") {
		return []Node{
			node("start", KindStart, "API Request", 200, 100, "auth"),
			node("auth", KindProcess, "Authentication", 500, 100, "auth_check"),
			node("auth_check", KindDecision, "Auth Valid?", 800, 100, "validate", "unauthorized"),
			node("unauthorized", KindEnd, "Unauthorized", 800, 300),
			node("validate", KindProcess, "Input Validation", 1100, 100, "valid_check"),
			node("valid_check", KindDecision, "Valid Input?", 1400, 100, "process", "bad_request"),
			node("bad_request", KindEnd, "Bad Request", 1400, 300),
			node("process", KindProcess, "Business Logic", 1700, 100, "integrate"),
			node("integrate", KindProcess, "External Integration", 2000, 100, "success_check"),
			node("success_check", KindDecision, "Integration Success?", 2300, 100, "response", "error_response"),
			node("error_response", KindEnd, "Error Response", 2300, 300),
			node("response", KindEnd, "Success Response", 2600, 100),
		}
	}
	return []Node{
		node("start", KindStart, "Feature Trigger", 200, 100, "input"),
		node("input", KindProcess, "Input Processing", 500, 100, "validation"),
		node("validation", KindDecision, "Input Valid?", 800, 100, "logic", "error"),
		node("error", KindEnd, "Validation Error", 800, 300),
		node("logic", KindProcess, "Core Logic", 1100, 100, "decide"),
		node("decide", KindDecision, "Business Rules Met?", 1400, 100, "output", "alternative"),
		node("alternative", KindProcess, "Alternative Path", 1400, 300, "output"),
		node("output", KindProcess, "Generate Output", 1700, 100, "end"),
		node("end", KindEnd, "Feature Complete", 2000, 100),
	}
}

func genericFlow() []Node {
	return []Node{
		node("start", KindStart, "Start", 200, 100, "process1"),
		node("process1", KindProcess, "Initial Process", 500, 100, "decision1"),
		node("decision1", KindDecision, "Continue?", 800, 100, "process2", "end_early"),
		node("end_early", KindEnd, "Early Exit", 800, 300),
		node("process2", KindProcess, "Final Process", 1100, 100, "end"),
		node("end", KindEnd, "Complete", 1400, 100),
	}
}
