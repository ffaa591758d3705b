package formatting

import (
	"encoding/json"
	"errors"
	"regexp"
	"strings"
)

// ErrDecodeFailed is returned when content cannot be decoded as JSON,
// either directly or from an embedded fragment.
var ErrDecodeFailed = errors.New("failed to decode response")

// Origin reports which strategy produced a decoded value.
type Origin int

const (
	// OriginStructured means the content parsed directly after fence stripping.
	OriginStructured Origin = iota
	// OriginFragment means the value was recovered from a balanced substring
	// located inside otherwise unparseable content.
	OriginFragment
	// OriginOpaque means no strategy succeeded and the content is raw text.
	OriginOpaque
)

// ArrayFragment matches the outermost bracketed array in a text blob.
var ArrayFragment = regexp.MustCompile(`(?s)\[.*\]`)

// ObjectFragment matches the outermost braced object in a text blob.
var ObjectFragment = regexp.MustCompile(`(?s)\{.*\}`)

var fencePattern = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// StripFence removes a surrounding markdown code fence, optionally annotated
// with a json language tag. Content without a fence is returned trimmed.
func StripFence(content string) string {
	content = strings.TrimSpace(content)

	matches := fencePattern.FindStringSubmatch(content)
	if len(matches) >= 2 {
		return strings.TrimSpace(matches[1])
	}

	return content
}

// Decode unmarshals model output into T using a layered strategy: strict
// parse of the fence-stripped content first, then a parse of the first
// fragment matched by pattern within the original content. When both fail,
// the zero value is returned with OriginOpaque and ErrDecodeFailed so the
// caller can decide how to carry the raw text forward.
func Decode[T any](content string, pattern *regexp.Regexp) (T, Origin, error) {
	var result T

	cleaned := StripFence(content)
	if err := json.Unmarshal([]byte(cleaned), &result); err == nil {
		return result, OriginStructured, nil
	}

	if pattern != nil {
		if fragment := pattern.FindString(content); fragment != "" {
			var recovered T
			if err := json.Unmarshal([]byte(fragment), &recovered); err == nil {
				return recovered, OriginFragment, nil
			}
		}
	}

	var zero T
	return zero, OriginOpaque, ErrDecodeFailed
}
