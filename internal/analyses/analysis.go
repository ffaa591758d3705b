// Package analyses implements the document analysis domain. It orchestrates
// prompt construction, the outbound model call, and structured decoding of
// the result, and exposes CRUD access to stored analysis records.
package analyses

import (
	"time"

	"github.com/google/uuid"
)

// Analysis represents one completed document analysis.
// Result holds the structured output from the model, or a raw_analysis
// wrapper when the response could not be decoded as JSON.
type Analysis struct {
	ID             uuid.UUID      `json:"id"`
	Result         map[string]any `json:"analysis_result"`
	DocumentLength int            `json:"document_length"`
	AnalysisType   string         `json:"analysis_type"`
	Timestamp      time.Time      `json:"timestamp"`
	UserID         *uuid.UUID     `json:"user_id"`
}

// FileAnalysis is an Analysis produced from an uploaded file, annotated
// with the original filename and, for PDFs, the page count.
type FileAnalysis struct {
	Analysis
	Filename  string `json:"filename"`
	PageCount *int   `json:"page_count,omitempty"`
}

// AnalyzeCommand carries the inputs for a document analysis.
type AnalyzeCommand struct {
	Content      string
	AnalysisType string
	UserID       *uuid.UUID
}
