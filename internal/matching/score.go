package matching

import (
	"math"
	"strings"

	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
	"github.com/jonathan/resume-matcher/internal/vocab"
)

// Component weights. They sum to 100 at full marks.
const (
	weightSkillMatch = 40.0
	weightKeyword    = 20.0
	weightExperience = 20.0
	weightEducation  = 10.0
	weightStructure  = 10.0
)

// essentialSections are the sections the structure score rewards.
var essentialSections = []string{
	types.SectionExperience,
	types.SectionSkills,
	types.SectionEducation,
}

// score computes the weighted ATS score and its component breakdown. The
// final score is the floor of the weighted sum, clamped to [0,100].
func (m *Matcher) score(resume *types.ResumeRecord, job *types.JobRecord, analysis *types.SkillAnalysis) (int, types.ScoreBreakdown) {
	skill := skillComponent(analysis)
	keyword := textproc.SimilarityScore(resume.CleanedText, job.Description)
	experience := experienceComponent(resume)
	education := educationComponent(resume)
	structure := structureComponent(resume)

	total := skill*weightSkillMatch +
		keyword*weightKeyword +
		experience*weightExperience +
		education*weightEducation +
		structure*weightStructure

	final := int(math.Floor(total))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	breakdown := types.ScoreBreakdown{
		SkillMatch:      round1(skill * 100),
		Keyword:         round1(keyword * 100),
		ExperienceMatch: round1(experience * 100),
		EducationMatch:  round1(education * 100),
		Structure:       round1(structure * 100),
	}
	return final, breakdown
}

// skillComponent is the matched fraction of the job's skills. A job with no
// discoverable skill requirements contributes nothing.
func skillComponent(analysis *types.SkillAnalysis) float64 {
	total := len(analysis.MatchedSkills) + len(analysis.MissingSkills)
	if total == 0 {
		return 0.0
	}
	return float64(len(analysis.MatchedSkills)) / float64(total)
}

// experienceComponent grades seniority: senior/lead wording anywhere in the
// resume outranks the year count extracted by the parser.
func experienceComponent(resume *types.ResumeRecord) float64 {
	if strings.Contains(resume.CleanedText, "senior") || strings.Contains(resume.CleanedText, "lead") {
		return 0.8
	}
	switch {
	case strings.ContainsAny(resume.Experience, "345"):
		return 0.6
	case strings.ContainsAny(resume.Experience, "12"):
		return 0.4
	}
	return 0.3
}

// educationComponent: 0.8 for a CS-adjacent entry, 0.6 for any other
// education, 0.5 neutral when the resume carries no education info.
func educationComponent(resume *types.ResumeRecord) float64 {
	if len(resume.Education) == 0 {
		return 0.5
	}
	for _, entry := range resume.Education {
		lower := strings.ToLower(entry)
		for _, field := range vocab.RelevantEducationFields() {
			if strings.Contains(lower, field) {
				return 0.8
			}
		}
	}
	return 0.6
}

// structureComponent rewards the three essential sections plus contact info,
// capped at 1.0.
func structureComponent(resume *types.ResumeRecord) float64 {
	score := 0.0
	for _, section := range essentialSections {
		if resume.HasSection(section) {
			score += 0.25
		}
	}
	if resume.ContactInfo.Email != "" {
		score += 0.125
	}
	if resume.ContactInfo.Phone != "" {
		score += 0.125
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
