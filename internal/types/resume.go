// Package types provides type definitions for structured data used throughout the resume-matcher system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Section names detected by the resume parser. The Sections map of a
// ResumeRecord always carries every one of these keys.
const (
	SectionSummary        = "summary"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
)

// SectionNames lists all canonical resume sections in report order.
var SectionNames = []string{
	SectionSummary,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionProjects,
	SectionCertifications,
}

// ContactInfo holds the first email and phone number found in a resume.
// Missing values stay empty and are omitted from JSON.
type ContactInfo struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ResumeRecord is the structured result of parsing one resume. It is built
// once per parse call and never mutated afterwards; callers may share it
// freely across goroutines.
type ResumeRecord struct {
	RawText     string          `json:"raw_text"`
	CleanedText string          `json:"cleaned_text"`
	Skills      []string        `json:"skills"`
	Experience  string          `json:"experience"`
	Education   []string        `json:"education"`
	ContactInfo ContactInfo     `json:"contact_info"`
	Sections    map[string]bool `json:"sections"`
}

// HasSection reports whether the named section was detected. A nil Sections
// map reads as all-absent, so a zero-value record is safe to score.
func (r *ResumeRecord) HasSection(name string) bool {
	if r.Sections == nil {
		return false
	}
	return r.Sections[name]
}
