package extract

import (
	"strings"
	"unicode/utf8"
)

func fromText(data []byte) (*Result, error) {
	text := string(data)
	if !utf8.ValidString(text) {
		text = strings.ToValidUTF8(text, "")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrNoContent
	}

	return &Result{Text: text}, nil
}
