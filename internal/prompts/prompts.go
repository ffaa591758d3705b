// Package prompts holds the fixed instruction templates sent to the
// generation model, one family per analysis kind and one per workflow flow.
package prompts

import (
	"fmt"

	"github.com/mano7284/PRD2workflow-Backend/internal/graph"
)

var analysisInstructions = map[string]string{
	"gap_analysis":            gapAnalysisInstructions,
	"requirements_extraction": requirementsInstructions,
	"summary":                 summaryInstructions,
}

var workflowInstructions = map[graph.Flow]string{
	graph.FlowUserJourney:      userJourneyInstructions,
	graph.FlowServiceBlueprint: serviceBlueprintInstructions,
	graph.FlowFeatureFlow:      featureFlowInstructions,
}

// Analysis returns the instruction template for an analysis kind. Unknown
// kinds receive the gap analysis template.
func Analysis(kind string) string {
	if text, ok := analysisInstructions[kind]; ok {
		return text
	}
	return gapAnalysisInstructions
}

// Workflow returns the instruction template for a workflow flow. Unknown
// flows receive the user journey template.
func Workflow(flow graph.Flow) string {
	if text, ok := workflowInstructions[flow]; ok {
		return text
	}
	return userJourneyInstructions
}

// Compose appends the document content to an instruction template.
func Compose(instructions, document string) string {
	return fmt.Sprintf("%s\n\nDocument to analyze:\n\n%s", instructions, document)
}
