package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/resume"
	"github.com/jonathan/resume-matcher/internal/types"
)

const seniorFrontendResume = `Jane Developer
jane@example.com | 555-123-4567

Summary
Senior frontend engineer.

Experience
5 years of experience building React applications with Node.js backends.
Shipped features backed by MongoDB. Used React daily across three teams.

Education
Bachelor of Science in Computer Science

Skills
React, Node.js, MongoDB, HTML, CSS
`

func frontendJob() *types.JobRecord {
	return &types.JobRecord{
		Title:          "Senior Frontend Developer",
		Description:    "We need a senior frontend developer strong in React, TypeScript, Node.js, MongoDB, and AWS.",
		RequiredSkills: []string{"React", "TypeScript", "Node.js", "MongoDB", "AWS"},
	}
}

func TestAnalyze_NilInputs(t *testing.T) {
	m := NewMatcher(nil)

	_, err := m.Analyze(nil, frontendJob())
	assert.Error(t, err)

	_, err = m.Analyze(&types.ResumeRecord{}, nil)
	assert.Error(t, err)
}

func TestAnalyze_SeniorFrontendScenario(t *testing.T) {
	record := resume.NewParser(nil).ParseText(seniorFrontendResume)
	report, err := NewMatcher(nil).Analyze(record, frontendJob())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, report.ATSScore, 0)
	assert.LessOrEqual(t, report.ATSScore, 100)

	assert.Contains(t, report.SkillAnalysis.MatchedSkills, "React")
	assert.Contains(t, report.SkillAnalysis.MatchedSkills, "Node.js")
	assert.Contains(t, report.SkillAnalysis.MatchedSkills, "MongoDB")

	assert.Contains(t, report.SkillAnalysis.MissingSkills, "TypeScript")
	assert.Contains(t, report.SkillAnalysis.MissingSkills, "AWS")

	// "Senior" wording in the resume grades experience at the senior tier.
	assert.InDelta(t, 80.0, report.ScoreBreakdown.ExperienceMatch, 0.01)
	// CS degree grades education at the relevant-field tier.
	assert.InDelta(t, 80.0, report.ScoreBreakdown.EducationMatch, 0.01)
}

func TestAnalyze_RelatedJobOutscoresUnrelated(t *testing.T) {
	record := resume.NewParser(nil).ParseText(seniorFrontendResume)
	m := NewMatcher(nil)

	related, err := m.Analyze(record, frontendJob())
	require.NoError(t, err)

	unrelated, err := m.Analyze(record, &types.JobRecord{
		Title:          "Embedded Firmware Engineer",
		Description:    "Firmware development in c for microcontrollers. Strong c++ and rust required.",
		RequiredSkills: []string{"C++", "Rust", "Embedded"},
	})
	require.NoError(t, err)

	assert.Greater(t, related.ATSScore, unrelated.ATSScore)
}

func TestAnalyze_EmptyResumeNeutralFloor(t *testing.T) {
	report, err := NewMatcher(nil).Analyze(&types.ResumeRecord{}, frontendJob())
	require.NoError(t, err)

	// 0.3 experience and 0.5 education neutrals are all an empty resume earns.
	assert.Equal(t, 11, report.ATSScore)
	assert.Empty(t, report.SkillAnalysis.MatchedSkills)
	assert.Len(t, report.SkillAnalysis.MissingSkills, report.MatchDetails.TotalJobSkills)
}

func TestAnalyze_EmptyRequiredSkills(t *testing.T) {
	record := resume.NewParser(nil).ParseText(seniorFrontendResume)

	report, err := NewMatcher(nil).Analyze(record, &types.JobRecord{
		Description: "A role description that names no technologies at all.",
	})
	require.NoError(t, err)

	assert.Equal(t, 0, report.MatchDetails.TotalJobSkills)
	assert.Equal(t, 0.0, report.MatchDetails.MatchPercentage)
	assert.InDelta(t, 0.0, report.ScoreBreakdown.SkillMatch, 0.01)
	assert.GreaterOrEqual(t, report.ATSScore, 0)
}

func TestAnalyze_SkillListsInitialized(t *testing.T) {
	report, err := NewMatcher(nil).Analyze(&types.ResumeRecord{}, &types.JobRecord{Description: "anything"})
	require.NoError(t, err)

	assert.NotNil(t, report.SkillAnalysis.MatchedSkills)
	assert.NotNil(t, report.SkillAnalysis.MissingSkills)
	assert.NotNil(t, report.SkillAnalysis.UnderrepresentedSkills)
}

func TestAnalyze_ProcessingInfoPopulated(t *testing.T) {
	record := resume.NewParser(nil).ParseText(seniorFrontendResume)
	job := frontendJob()

	report, err := NewMatcher(nil).Analyze(record, job)
	require.NoError(t, err)

	info := report.ProcessingInfo
	assert.NotEmpty(t, info.AnalysisID)
	assert.Equal(t, len(seniorFrontendResume), info.ResumeLength)
	assert.Equal(t, len(job.Description), info.JobDescriptionLength)
	assert.Equal(t, 5, info.TotalRequiredSkills)
	assert.Greater(t, info.ResumeKeywordsCount, 0)
}

func TestAnalyze_UniqueAnalysisIDs(t *testing.T) {
	m := NewMatcher(nil)
	record := &types.ResumeRecord{}
	job := frontendJob()

	first, err := m.Analyze(record, job)
	require.NoError(t, err)
	second, err := m.Analyze(record, job)
	require.NoError(t, err)

	assert.NotEqual(t, first.ProcessingInfo.AnalysisID, second.ProcessingInfo.AnalysisID)
}

func TestNewSkillSet_DedupAndDisplayForm(t *testing.T) {
	s := newSkillSet([]string{"React", "react", "ReactJS", "Node.js", "node"})

	// All three React spellings normalize together; first spelling wins.
	assert.Contains(t, s.display, "React")
	assert.NotContains(t, s.display, "react")
	assert.NotContains(t, s.display, "ReactJS")
	assert.Equal(t, 3, s.counts["react"])

	assert.Contains(t, s.display, "Node.js")
	assert.Equal(t, 2, s.counts["node.js"])
	assert.Len(t, s.display, 2)
}

func TestAnalyzeSkills_Underrepresented(t *testing.T) {
	resumeSkills := newSkillSet([]string{"Python", "Docker", "Docker"})
	jobSkills := newSkillSet([]string{"Python", "Docker", "Kafka"})

	analysis := analyzeSkills(resumeSkills, jobSkills)

	assert.ElementsMatch(t, []string{"Python", "Docker"}, analysis.MatchedSkills)
	assert.Equal(t, []string{"Kafka"}, analysis.MissingSkills)
	// Python appears once in the resume; Docker twice.
	assert.Equal(t, []string{"Python"}, analysis.UnderrepresentedSkills)
	assert.Empty(t, analysis.AdditionalSkills)
}

func TestAnalyzeSkills_AdditionalSkills(t *testing.T) {
	resumeSkills := newSkillSet([]string{"Python", "Terraform"})
	jobSkills := newSkillSet([]string{"Python"})

	analysis := analyzeSkills(resumeSkills, jobSkills)
	assert.Equal(t, []string{"Terraform"}, analysis.AdditionalSkills)
}

func TestAnalyzeSkills_AliasedSpellingsMatch(t *testing.T) {
	resumeSkills := newSkillSet([]string{"NodeJS", "postgresql"})
	jobSkills := newSkillSet([]string{"Node.js", "Postgres"})

	analysis := analyzeSkills(resumeSkills, jobSkills)
	// Matched skills keep the job's spelling.
	assert.ElementsMatch(t, []string{"Node.js", "Postgres"}, analysis.MatchedSkills)
	assert.Empty(t, analysis.MissingSkills)
}
