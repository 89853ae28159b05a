// Package text holds language metadata and cleanup helpers for model output.
package text

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// StripCodeFences removes a surrounding markdown code fence (``` or ```json) from model output.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// Normalize trims model output and converts it to Unicode NFC.
// Bengali vowel signs can arrive decomposed; NFC keeps equal strings byte-equal.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}

// IsBlank reports whether s has no visible content.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
