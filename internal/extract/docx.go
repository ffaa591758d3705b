package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// DOCX files are zip archives; the document body lives in word/document.xml.
// Only paragraph and table cell text is pulled out, which covers the body
// content of typical requirements documents.

type docxDocument struct {
	XMLName xml.Name `xml:"document"`
	Body    docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text []string `xml:"t"`
}

type docxTable struct {
	Rows []docxRow `xml:"tr"`
}

type docxRow struct {
	Cells []docxCell `xml:"tc"`
}

type docxCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

func fromDOCX(data []byte) (*Result, error) {
	archive, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}

	var body []byte
	for _, file := range archive.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("open document.xml: %w", err)
		}

		body, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read document.xml: %w", err)
		}
		break
	}

	if body == nil {
		return nil, fmt.Errorf("docx archive missing word/document.xml")
	}

	var doc docxDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("parse document.xml: %w", err)
	}

	var sb strings.Builder
	for _, p := range doc.Body.Paragraphs {
		writeParagraph(&sb, p)
	}
	for _, tbl := range doc.Body.Tables {
		for _, row := range tbl.Rows {
			for _, cell := range row.Cells {
				for _, p := range cell.Paragraphs {
					writeParagraph(&sb, p)
				}
			}
		}
	}

	combined := strings.TrimSpace(sb.String())
	if combined == "" {
		return nil, ErrNoContent
	}

	return &Result{Text: combined}, nil
}

func writeParagraph(sb *strings.Builder, p docxParagraph) {
	var line strings.Builder
	for _, run := range p.Runs {
		for _, text := range run.Text {
			line.WriteString(text)
		}
	}

	if trimmed := strings.TrimSpace(line.String()); trimmed != "" {
		sb.WriteString(trimmed)
		sb.WriteString("\n")
	}
}
