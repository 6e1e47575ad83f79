package matching

import (
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// maxRecommendations caps the advice list; entries are ordered by priority.
const maxRecommendations = 5

const (
	verdictPoor      = "Your resume needs significant improvement to match this job. Focus on the missing skills and keywords."
	verdictGood      = "Good match! Consider adding the missing skills to strengthen your application."
	verdictExcellent = "Excellent match! Your resume aligns well with the job requirements."
)

// genericAdvice closes out the list when fewer than maxRecommendations
// skill-specific call-outs were produced.
var genericAdvice = []string{
	"Include specific examples and achievements for each skill mentioned.",
	"Use keywords from the job description throughout your resume.",
}

// recommendations builds the ordered advice list: one verdict line first,
// then up to 3 missing-skill call-outs, up to 2 underrepresented call-outs,
// and generic advice until the cap.
func recommendations(score int, analysis *types.SkillAnalysis) []string {
	recs := []string{verdict(score)}

	for _, skill := range top(analysis.MissingSkills, 3) {
		recs = append(recs, fmt.Sprintf("Add %s to your technical skills section and provide specific examples of projects where you used it.", skill))
	}
	for _, skill := range top(analysis.UnderrepresentedSkills, 2) {
		recs = append(recs, fmt.Sprintf("Mention %s more prominently in your work experience and highlight specific achievements using this technology.", skill))
	}
	for _, advice := range genericAdvice {
		if len(recs) >= maxRecommendations {
			break
		}
		recs = append(recs, advice)
	}

	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	return recs
}

func verdict(score int) string {
	switch {
	case score < 60:
		return verdictPoor
	case score < 80:
		return verdictGood
	}
	return verdictExcellent
}

func top(skills []string, n int) []string {
	if len(skills) > n {
		return skills[:n]
	}
	return skills
}
