package matching

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Legacy scorer weights. This is the historical entry-point formula kept
// reproducible behind configuration; the canonical scorer lives in score.go.
const (
	legacyWeightSkill      = 0.45
	legacyWeightFrequency  = 0.15
	legacyWeightExperience = 0.15
	legacyWeightEducation  = 0.10
	legacyWeightKeywords   = 0.15
)

// legacyTechnicalKeywords drive the keywords_tools component: only terms the
// job description mentions are checked against the resume.
var legacyTechnicalKeywords = []string{
	"api", "rest", "restful", "microservices", "database", "sql", "nosql",
	"cloud", "aws", "azure", "gcp", "docker", "kubernetes", "jenkins",
	"git", "github", "gitlab", "ci/cd", "devops", "agile", "scrum",
	"testing", "unit testing", "integration testing", "tdd", "bdd",
}

var legacyYearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)

// LegacyScore reproduces the historical entry-point scoring: weights
// 45/15/15/10/15 over raw substring containment rather than boundary-aware
// matching and Jaccard similarity. It consumes resume text directly, as the
// original endpoint did.
func LegacyScore(resumeText string, job *types.JobRecord) (*types.MatchReport, error) {
	if job == nil {
		return nil, fmt.Errorf("legacy score: job record is nil")
	}

	resumeClean := textproc.CleanText(resumeText)
	jobDescription := textproc.CleanText(job.Description)
	requiredSkills := make([]string, len(job.RequiredSkills))
	for i, s := range job.RequiredSkills {
		requiredSkills[i] = strings.ToLower(s)
	}

	skillScore := legacySkillMatch(resumeClean, requiredSkills)
	frequencyScore := legacySkillFrequency(resumeClean, requiredSkills)
	experienceScore := legacyExperienceMatch(resumeClean)
	educationScore := legacyEducationMatch(resumeClean)
	keywordsScore := legacyKeywordsMatch(resumeClean, jobDescription)

	total := skillScore*legacyWeightSkill +
		frequencyScore*legacyWeightFrequency +
		experienceScore*legacyWeightExperience +
		educationScore*legacyWeightEducation +
		keywordsScore*legacyWeightKeywords

	final := int(total)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	matched, missing, underrepresented := legacySkillAnalysis(resumeClean, requiredSkills)

	return &types.MatchReport{
		ATSScore: final,
		ScoreBreakdown: types.ScoreBreakdown{
			SkillMatch:      round1(skillScore),
			SkillFrequency:  round1(frequencyScore),
			ExperienceMatch: round1(experienceScore),
			EducationMatch:  round1(educationScore),
			KeywordsTools:   round1(keywordsScore),
		},
		SkillAnalysis: types.SkillAnalysis{
			MatchedSkills:          matched,
			MissingSkills:          missing,
			UnderrepresentedSkills: underrepresented,
		},
		Recommendations: legacyRecommendations(missing, underrepresented, final),
		MatchDetails: types.MatchDetails{
			TotalJobSkills: len(requiredSkills),
			MatchedSkills:  len(matched),
			MissingSkills:  len(missing),
			MatchPercentage: func() float64 {
				if len(requiredSkills) == 0 {
					return 0
				}
				return float64(len(matched)) / float64(len(requiredSkills)) * 100
			}(),
		},
		ProcessingInfo: types.ProcessingInfo{
			AnalysisID:           uuid.NewString(),
			ResumeLength:         len(resumeText),
			JobDescriptionLength: len(job.Description),
			TotalRequiredSkills:  len(requiredSkills),
			ResumeKeywordsCount:  len(textproc.ExtractKeywords(resumeClean, textproc.DefaultMinKeywordLength)),
		},
	}, nil
}

// legacySkillMatch: percentage of required skills found by raw substring
// containment. Neutral 50 when the job declares no skills.
func legacySkillMatch(resumeText string, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 50
	}
	matched := 0
	for _, skill := range requiredSkills {
		if strings.Contains(resumeText, skill) {
			matched++
		}
	}
	return float64(matched) / float64(len(requiredSkills)) * 100
}

// legacySkillFrequency rewards repeated mentions, capped at 3 per skill.
func legacySkillFrequency(resumeText string, requiredSkills []string) float64 {
	if len(requiredSkills) == 0 {
		return 50
	}
	totalMentions := 0
	for _, skill := range requiredSkills {
		mentions := strings.Count(resumeText, skill)
		if mentions > 3 {
			mentions = 3
		}
		totalMentions += mentions
	}
	score := float64(totalMentions) / float64(len(requiredSkills)*3) * 100
	if score > 100 {
		score = 100
	}
	return score
}

func legacyExperienceMatch(resumeText string) float64 {
	score := 0.0

	maxYears := 0
	for _, m := range legacyYearsPattern.FindAllStringSubmatch(resumeText, -1) {
		if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
			maxYears = years
		}
	}
	switch {
	case maxYears >= 5:
		score += 40
	case maxYears >= 3:
		score += 30
	case maxYears >= 1:
		score += 20
	default:
		score += 15
	}

	for _, title := range []string{"developer", "engineer", "programmer", "architect", "lead", "senior"} {
		if strings.Contains(resumeText, title) {
			score += 10
			break
		}
	}
	for _, kw := range []string{"lead", "senior", "manager", "architect", "principal"} {
		if strings.Contains(resumeText, kw) {
			score += 15
			break
		}
	}
	for _, word := range []string{"software", "technology", "development", "programming"} {
		if strings.Contains(resumeText, word) {
			score += 15
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

func legacyEducationMatch(resumeText string) float64 {
	score := 50.0

	for _, kw := range []string{"computer science", "software engineering", "information technology", "computer engineering", "software development"} {
		if strings.Contains(resumeText, kw) {
			score += 30
			break
		}
	}

	if strings.Contains(resumeText, "master") || strings.Contains(resumeText, "msc") || strings.Contains(resumeText, "m.s.") {
		score += 15
	} else if strings.Contains(resumeText, "bachelor") || strings.Contains(resumeText, "bsc") || strings.Contains(resumeText, "b.s.") {
		score += 10
	}

	for _, kw := range []string{"certified", "certification", "aws", "azure", "google cloud", "oracle"} {
		if strings.Contains(resumeText, kw) {
			score += 5
			break
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// legacyKeywordsMatch: of the technical keywords the job description
// mentions, the fraction also present in the resume. Neutral 50 when the
// description mentions none.
func legacyKeywordsMatch(resumeText, jobDescription string) float64 {
	var jobKeywords []string
	for _, kw := range legacyTechnicalKeywords {
		if strings.Contains(jobDescription, kw) {
			jobKeywords = append(jobKeywords, kw)
		}
	}
	if len(jobKeywords) == 0 {
		return 50
	}

	matched := 0
	for _, kw := range jobKeywords {
		if strings.Contains(resumeText, kw) {
			matched++
		}
	}
	return float64(matched) / float64(len(jobKeywords)) * 100
}

// legacySkillAnalysis: 2+ mentions is a solid match, exactly one is
// underrepresented, zero is missing. Names are title-cased for display.
func legacySkillAnalysis(resumeText string, requiredSkills []string) (matched, missing, underrepresented []string) {
	matched = []string{}
	missing = []string{}
	underrepresented = []string{}
	for _, skill := range requiredSkills {
		display := textproc.TitleCase(skill)
		switch n := strings.Count(resumeText, skill); {
		case n >= 2:
			matched = append(matched, display)
		case n == 1:
			underrepresented = append(underrepresented, display)
		default:
			missing = append(missing, display)
		}
	}
	return matched, missing, underrepresented
}

func legacyRecommendations(missing, underrepresented []string, score int) []string {
	recs := []string{verdict(score)}

	if len(missing) > 0 {
		recs = append(recs, fmt.Sprintf("Add these missing skills to your resume: %s", strings.Join(top(missing, 3), ", ")))
	}
	if len(underrepresented) > 0 {
		recs = append(recs, fmt.Sprintf("Mention these skills more frequently: %s", strings.Join(top(underrepresented, 2), ", ")))
	}
	recs = append(recs,
		"Include specific examples and achievements for each skill mentioned.",
		"Use keywords from the job description throughout your resume.")

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}
