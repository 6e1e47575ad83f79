// Package matching scores a parsed resume against a job record and produces
// the match report: ATS score, component breakdown, skill analysis, and
// recommendations. Every call is a pure computation over its two inputs.
package matching

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Matcher analyzes resume-job compatibility against a shared skill
// vocabulary. Matchers are stateless and safe for concurrent use.
type Matcher struct {
	catalog *vocab.Catalog
}

// NewMatcher returns a Matcher backed by the given vocabulary. A nil catalog
// falls back to the default one.
func NewMatcher(catalog *vocab.Catalog) *Matcher {
	if catalog == nil {
		catalog = vocab.Default()
	}
	return &Matcher{catalog: catalog}
}

// Analyze produces the full match report for one resume-job pair. It is
// total over any well-formed pair: empty fields fall back to neutral
// defaults instead of failing. Only nil inputs are an error.
func (m *Matcher) Analyze(resume *types.ResumeRecord, job *types.JobRecord) (*types.MatchReport, error) {
	if resume == nil {
		return nil, fmt.Errorf("analyze: resume record is nil")
	}
	if job == nil {
		return nil, fmt.Errorf("analyze: job record is nil")
	}

	resumeSkills := m.resumeSkills(resume)
	jobSkills := m.jobSkills(job)

	analysis := analyzeSkills(resumeSkills, jobSkills)
	score, breakdown := m.score(resume, job, &analysis)

	totalJobSkills := len(jobSkills.display)
	matchPercentage := 0.0
	if totalJobSkills > 0 {
		matchPercentage = float64(len(analysis.MatchedSkills)) / float64(totalJobSkills) * 100
	}

	return &types.MatchReport{
		ATSScore:        score,
		ScoreBreakdown:  breakdown,
		SkillAnalysis:   analysis,
		Recommendations: recommendations(score, &analysis),
		MatchDetails: types.MatchDetails{
			TotalJobSkills:  totalJobSkills,
			MatchedSkills:   len(analysis.MatchedSkills),
			MissingSkills:   len(analysis.MissingSkills),
			MatchPercentage: matchPercentage,
		},
		ProcessingInfo: types.ProcessingInfo{
			AnalysisID:           uuid.NewString(),
			ResumeLength:         len(resume.RawText),
			JobDescriptionLength: len(job.Description),
			TotalRequiredSkills:  len(job.RequiredSkills),
			ResumeKeywordsCount:  len(textproc.ExtractKeywords(resume.CleanedText, textproc.DefaultMinKeywordLength)),
		},
	}, nil
}

// skillSet is an ordered, case-insensitively deduplicated skill list. The
// display form of each skill is the first-seen spelling; counts keep the
// pre-dedup occurrence totals that drive the underrepresented flag.
type skillSet struct {
	display []string
	norms   []string
	members map[string]bool
	counts  map[string]int
}

func newSkillSet(raw []string) *skillSet {
	s := &skillSet{
		members: make(map[string]bool),
		counts:  make(map[string]int),
	}
	for _, skill := range raw {
		norm := textproc.NormalizeSkillName(skill)
		if norm == "" {
			continue
		}
		s.counts[norm]++
		if !s.members[norm] {
			s.members[norm] = true
			s.display = append(s.display, strings.TrimSpace(skill))
			s.norms = append(s.norms, norm)
		}
	}
	return s
}

func (s *skillSet) has(norm string) bool {
	return s.members[norm]
}

// resumeSkills unions the record's stored skills with skills freshly
// re-extracted from its cleaned text.
func (m *Matcher) resumeSkills(resume *types.ResumeRecord) *skillSet {
	raw := make([]string, 0, len(resume.Skills))
	raw = append(raw, resume.Skills...)
	for _, s := range m.catalog.FindSkills(resume.CleanedText) {
		raw = append(raw, textproc.TitleCase(s))
	}
	return newSkillSet(raw)
}

// jobSkills unions the job's declared required skills with skills extracted
// from its description text.
func (m *Matcher) jobSkills(job *types.JobRecord) *skillSet {
	raw := make([]string, 0, len(job.RequiredSkills))
	raw = append(raw, job.RequiredSkills...)
	for _, s := range m.catalog.FindSkills(job.Description) {
		raw = append(raw, textproc.TitleCase(s))
	}
	return newSkillSet(raw)
}

// analyzeSkills splits the job's skills into matched and missing, flags
// matched skills mentioned exactly once as underrepresented, and reports
// resume-only skills as additional signal.
func analyzeSkills(resumeSkills, jobSkills *skillSet) types.SkillAnalysis {
	analysis := types.SkillAnalysis{
		MatchedSkills:          []string{},
		MissingSkills:          []string{},
		UnderrepresentedSkills: []string{},
	}

	for i, skill := range jobSkills.display {
		norm := jobSkills.norms[i]
		if resumeSkills.has(norm) {
			analysis.MatchedSkills = append(analysis.MatchedSkills, skill)
			if resumeSkills.counts[norm] == 1 {
				analysis.UnderrepresentedSkills = append(analysis.UnderrepresentedSkills, skill)
			}
		} else {
			analysis.MissingSkills = append(analysis.MissingSkills, skill)
		}
	}

	for i, skill := range resumeSkills.display {
		if !jobSkills.has(resumeSkills.norms[i]) {
			analysis.AdditionalSkills = append(analysis.AdditionalSkills, skill)
		}
	}
	return analysis
}
