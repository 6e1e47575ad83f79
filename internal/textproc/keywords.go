package textproc

import "strings"

// DefaultMinKeywordLength is the shortest token kept by keyword extraction.
const DefaultMinKeywordLength = 2

// surroundingPunct is trimmed from both ends of each token before filtering.
const surroundingPunct = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// ExtractKeywords cleans the text, splits it on whitespace, strips
// surrounding punctuation per token, and drops tokens that are shorter than
// minLength, stop words, or purely numeric. The result is deduplicated and
// preserves first-seen order, which keeps phrase extraction deterministic.
func ExtractKeywords(text string, minLength int) []string {
	if text == "" {
		return nil
	}

	seen := make(map[string]bool)
	var keywords []string
	for _, word := range strings.Fields(CleanText(text)) {
		word = strings.Trim(word, surroundingPunct)
		if len(word) < minLength || stopWords[word] || isNumeric(word) {
			continue
		}
		if !seen[word] {
			seen[word] = true
			keywords = append(keywords, word)
		}
	}
	return keywords
}

// KeywordFrequency counts boundary-delimited occurrences of each extracted
// keyword in the lower-cased original text. Keywords with zero boundary-exact
// occurrences are omitted.
func KeywordFrequency(text string) map[string]int {
	frequency := make(map[string]int)
	lower := strings.ToLower(text)
	for _, kw := range ExtractKeywords(text, DefaultMinKeywordLength) {
		if n := CountTerm(lower, kw); n > 0 {
			frequency[kw] = n
		}
	}
	return frequency
}

// ExtractPhrases builds sliding-window n-grams over the ordered deduplicated
// keyword sequence of the text.
func ExtractPhrases(text string, phraseLength int) []string {
	if text == "" || phraseLength < 1 {
		return nil
	}
	words := ExtractKeywords(text, DefaultMinKeywordLength)
	if len(words) < phraseLength {
		return nil
	}
	phrases := make([]string, 0, len(words)-phraseLength+1)
	for i := 0; i+phraseLength <= len(words); i++ {
		phrases = append(phrases, strings.Join(words[i:i+phraseLength], " "))
	}
	return phrases
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
