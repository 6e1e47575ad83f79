package textproc

import "strings"

// ContainsTerm reports whether term occurs in text delimited by non-word
// characters on both sides. Unlike \b-based matching this also delimits
// terms that end in symbols ("c++", "c#", "node.js"), and it never matches
// "java" inside "javascript". Both arguments are expected lower-cased.
func ContainsTerm(text, term string) bool {
	return CountTerm(text, term) > 0
}

// CountTerm counts non-overlapping boundary-delimited occurrences of term
// in text. Returns 0 for an empty term.
func CountTerm(text, term string) int {
	if term == "" {
		return 0
	}
	count := 0
	for start := 0; ; {
		i := strings.Index(text[start:], term)
		if i < 0 {
			break
		}
		i += start
		if boundaryAt(text, i, len(term)) {
			count++
		}
		start = i + len(term)
	}
	return count
}

func boundaryAt(s string, i, n int) bool {
	before := i == 0 || !isWordByte(s[i-1])
	after := i+n >= len(s) || !isWordByte(s[i+n])
	return before && after
}

func isWordByte(c byte) bool {
	return c == '_' ||
		(c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z')
}
