package textproc

import "regexp"

// technicalPatterns match term shapes that usually denote technology names.
var technicalPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b[A-Z]{2,}\b`),                 // acronyms (AWS, API)
	regexp.MustCompile(`\b[A-Za-z]+\.[A-Za-z]+\b`),      // dotted terms (Node.js)
	regexp.MustCompile(`\b[A-Za-z]+-[A-Za-z]+\b`),       // hyphenated terms
	regexp.MustCompile(`\b[A-Z][a-z]+[A-Z][A-Za-z]*\b`), // CamelCase terms
}

// ExtractTechnicalTerms pulls acronyms, dotted, hyphenated, and CamelCase
// terms out of the raw (not cleaned) text, deduplicated in first-seen order.
func ExtractTechnicalTerms(text string) []string {
	if text == "" {
		return nil
	}
	seen := make(map[string]bool)
	var terms []string
	for _, pattern := range technicalPatterns {
		for _, m := range pattern.FindAllString(text, -1) {
			if !seen[m] {
				seen[m] = true
				terms = append(terms, m)
			}
		}
	}
	return terms
}
