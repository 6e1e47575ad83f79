package types

// SkillAnalysis breaks the job's skill requirements down against the resume.
// All four lists keep the first-seen display spelling of each skill.
type SkillAnalysis struct {
	MatchedSkills          []string `json:"matched_skills"`
	MissingSkills          []string `json:"missing_skills"`
	UnderrepresentedSkills []string `json:"underrepresented_skills"`
	AdditionalSkills       []string `json:"additional_skills,omitempty"`
}

// ScoreBreakdown holds the weighted component scores, each in [0,100].
// SkillFrequency and KeywordsTools are only produced by the legacy scorer;
// Keyword and Structure only by the canonical one.
type ScoreBreakdown struct {
	SkillMatch      float64 `json:"skill_match"`
	Keyword         float64 `json:"keyword,omitempty"`
	SkillFrequency  float64 `json:"skill_frequency,omitempty"`
	ExperienceMatch float64 `json:"experience_match"`
	EducationMatch  float64 `json:"education_match"`
	Structure       float64 `json:"structure,omitempty"`
	KeywordsTools   float64 `json:"keywords_tools,omitempty"`
}

// MatchDetails summarizes the skill overlap in absolute numbers.
type MatchDetails struct {
	TotalJobSkills  int     `json:"total_job_skills"`
	MatchedSkills   int     `json:"matched_skills"`
	MissingSkills   int     `json:"missing_skills"`
	MatchPercentage float64 `json:"match_percentage"`
}

// ProcessingInfo carries per-analysis bookkeeping the caller can relay or log.
type ProcessingInfo struct {
	AnalysisID           string `json:"analysis_id"`
	ResumeLength         int    `json:"resume_length"`
	JobDescriptionLength int    `json:"job_description_length"`
	TotalRequiredSkills  int    `json:"total_required_skills"`
	ResumeKeywordsCount  int    `json:"resume_keywords_count"`
}

// MatchReport is the full output of one scoring call, shaped for verbatim
// relay as a JSON response body.
type MatchReport struct {
	ATSScore        int            `json:"ats_score"`
	ScoreBreakdown  ScoreBreakdown `json:"score_breakdown"`
	SkillAnalysis   SkillAnalysis  `json:"skill_analysis"`
	Recommendations []string       `json:"recommendations"`
	MatchDetails    MatchDetails   `json:"match_details"`
	ProcessingInfo  ProcessingInfo `json:"processing_info"`
}
