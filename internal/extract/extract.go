// Package extract converts uploaded document bytes into plain UTF-8 text.
// The format is selected by filename extension; unsupported formats are
// rejected before any model call is attempted.
package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var (
	// ErrUnsupportedFormat is returned for file extensions outside the
	// supported set (pdf, docx, txt, md).
	ErrUnsupportedFormat = errors.New("unsupported file type")
	// ErrNoContent is returned when extraction succeeds but yields no
	// readable text.
	ErrNoContent = errors.New("no readable content found in the file")
)

// Result carries extracted text plus format-specific metadata.
// PageCount is populated for PDFs only.
type Result struct {
	Text      string
	PageCount *int
}

// FromFile extracts plain text from file data based on the filename extension.
func FromFile(filename string, data []byte) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return fromPDF(data)
	case ".docx":
		return fromDOCX(data)
	case ".txt", ".md":
		return fromText(data)
	default:
		return nil, fmt.Errorf("%w: %s (upload PDF, DOCX, TXT, or MD)", ErrUnsupportedFormat, filename)
	}
}
