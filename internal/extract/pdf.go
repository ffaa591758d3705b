package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	pdfcpu "github.com/pdfcpu/pdfcpu/pkg/api"
)

// fromPDF extracts plain text page by page. Pages that fail text extraction
// are skipped; the extraction fails only when no page yields any text.
// Page count comes from pdfcpu and is best-effort.
func fromPDF(data []byte) (*Result, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}

		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}

		sb.WriteString(text)
		sb.WriteString("\n")
	}

	combined := strings.TrimSpace(sb.String())
	if combined == "" {
		return nil, ErrNoContent
	}

	return &Result{Text: combined, PageCount: pageCount(data)}, nil
}

func pageCount(data []byte) *int {
	count, err := pdfcpu.PageCount(bytes.NewReader(data), nil)
	if err != nil {
		return nil
	}
	return &count
}
