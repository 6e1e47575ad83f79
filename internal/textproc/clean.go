// Package textproc provides the text normalization, keyword extraction, and
// similarity primitives the resume parser and skill matcher are built on.
// Every function is pure; the vocabulary tables are immutable after init.
package textproc

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	// Keep alphanumerics, whitespace, and a small punctuation set that
	// carries meaning in skill names (node.js, ci-cd, "(remote)").
	specialCharsRe = regexp.MustCompile(`[^\w\s\-.,()]`)
)

// CleanText lower-cases the input, collapses whitespace runs, and replaces
// characters outside [alnum, whitespace, - . , ( )] with a single space.
// Empty input yields an empty string. CleanText is idempotent.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)
	text = whitespaceRe.ReplaceAllString(text, " ")
	text = specialCharsRe.ReplaceAllString(text, " ")
	text = whitespaceRe.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
