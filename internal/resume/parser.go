// Package resume turns raw resume documents into structured ResumeRecord
// values: skills, experience, education, contact info, and detected sections.
package resume

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/extract"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// NotSpecified is the experience value when no years-of-experience phrasing
// was found in the resume.
const NotSpecified = "Not specified"

// Parser extracts structured data from resume text against a shared skill
// vocabulary. Parsers are stateless and safe for concurrent use.
type Parser struct {
	catalog *vocab.Catalog
}

// NewParser returns a Parser backed by the given vocabulary. A nil catalog
// falls back to the default one.
func NewParser(catalog *vocab.Catalog) *Parser {
	if catalog == nil {
		catalog = vocab.Default()
	}
	return &Parser{catalog: catalog}
}

// Parse extracts text from the document bytes and builds a ResumeRecord.
// Unrecognized extensions and empty documents return the typed errors from
// the extract package; callers map those to user-facing 4xx responses.
func (p *Parser) Parse(data []byte, ext string) (*types.ResumeRecord, error) {
	text, err := extract.Text(data, ext)
	if err != nil {
		return nil, err
	}
	return p.ParseText(text), nil
}

// ParseText builds a ResumeRecord from resume text supplied directly, e.g.
// typed into a form instead of uploaded. It is total: empty text yields a
// record with empty fields, never an error.
func (p *Parser) ParseText(text string) *types.ResumeRecord {
	cleaned := textproc.CleanText(text)
	return &types.ResumeRecord{
		RawText:     text,
		CleanedText: cleaned,
		Skills:      p.extractSkills(cleaned),
		Experience:  extractExperience(cleaned),
		Education:   p.extractEducation(cleaned),
		ContactInfo: extractContactInfo(text),
		Sections:    identifySections(text),
	}
}

// extractSkills scans the cleaned text against the skill catalog. Matches
// are title-cased for display; the catalog already deduplicates.
func (p *Parser) extractSkills(cleaned string) []string {
	found := p.catalog.FindSkills(cleaned)
	skills := make([]string, len(found))
	for i, s := range found {
		skills[i] = textproc.TitleCase(s)
	}
	return skills
}

// extractExperience returns "<N> years" from the first matching experience
// pattern, or NotSpecified.
func extractExperience(cleaned string) string {
	for _, pattern := range experiencePatterns {
		if m := pattern.FindStringSubmatch(cleaned); m != nil {
			return m[1] + " years"
		}
	}
	return NotSpecified
}

func (p *Parser) extractEducation(cleaned string) []string {
	found := p.catalog.FindEducation(cleaned)
	education := make([]string, len(found))
	for i, e := range found {
		education[i] = textproc.TitleCase(e)
	}
	return education
}

// extractContactInfo takes the first email-shaped and phone-shaped matches
// from the raw text. Missing matches leave the fields empty.
func extractContactInfo(text string) types.ContactInfo {
	return types.ContactInfo{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}
}

// identifySections tests each canonical section's header pattern against the
// lower-cased raw text. The returned map always has every section key.
func identifySections(text string) map[string]bool {
	lower := strings.ToLower(text)
	sections := make(map[string]bool, len(sectionPatterns))
	for name, pattern := range sectionPatterns {
		sections[name] = pattern.MatchString(lower)
	}
	return sections
}
