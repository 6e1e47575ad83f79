package resume

import (
	"regexp"

	"github.com/jonathan/resume-matcher/internal/types"
)

// experiencePatterns cover the common phrasings of "N years of experience".
// They are tried in order and the first match wins; mentions are never
// aggregated across patterns.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?experience`),
	regexp.MustCompile(`experience\s*:?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*in\s*\w+`),
	regexp.MustCompile(`over\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`more\s*than\s*(\d+)\+?\s*years?`),
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	// Permissive: tolerates separators, parentheses, and a country code.
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// sectionPatterns detect section-header-like keywords for each canonical
// resume section.
var sectionPatterns = map[string]*regexp.Regexp{
	types.SectionSummary:        regexp.MustCompile(`summary|profile|objective`),
	types.SectionExperience:     regexp.MustCompile(`experience|work history|employment`),
	types.SectionEducation:      regexp.MustCompile(`education|academic|qualification`),
	types.SectionSkills:         regexp.MustCompile(`skills|technical skills|competencies`),
	types.SectionProjects:       regexp.MustCompile(`projects|portfolio`),
	types.SectionCertifications: regexp.MustCompile(`certifications|certificates|licenses`),
}
