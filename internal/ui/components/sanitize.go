package components

import (
	"regexp"
	"strings"
	"unicode"
)

var escapeSeq = regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)

// SanitizeText drops escape sequences, bidi overrides and control runes from
// row text. Newlines and tabs survive.
func SanitizeText(input string) string {
	return sanitize(input, false)
}

// SanitizeOneLine is SanitizeText with newlines and tabs folded into spaces,
// for text that must stay on one row.
func SanitizeOneLine(input string) string {
	return sanitize(input, true)
}

func sanitize(input string, fold bool) string {
	if input == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' || r == '\t':
			if fold {
				return ' '
			}
			return r
		case unicode.Is(unicode.Bidi_Control, r), unicode.IsControl(r):
			return -1
		}
		return r
	}, escapeSeq.ReplaceAllString(input, ""))
}
