package models

// ResumeAnalysis is the structured result of matching a resume against a job description
type ResumeAnalysis struct {
	OverallMatch    int             `json:"overallMatch"`
	SkillsMatch     SkillsMatch     `json:"skillsMatch"`
	ExperienceMatch ScoredFeedback  `json:"experienceMatch"`
	KeywordAnalysis KeywordAnalysis `json:"keywordAnalysis"`
	EducationMatch  ScoredFeedback  `json:"educationMatch"`
	Strengths       []string        `json:"strengths"`
	Improvements    []Improvement   `json:"improvements"`
	ATSScore        int             `json:"atsScore"`
	Summary         string          `json:"summary"`
}

// SkillsMatch reports skill overlap between resume and job description
type SkillsMatch struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage int      `json:"matchPercentage"`
}

// KeywordAnalysis reports keyword overlap between resume and job description
type KeywordAnalysis struct {
	Matched         []string `json:"matched"`
	Missing         []string `json:"missing"`
	MatchPercentage int      `json:"matchPercentage"`
}

// ScoredFeedback pairs a 0-100 score with human-readable feedback
type ScoredFeedback struct {
	Score    int    `json:"score"`
	Feedback string `json:"feedback"`
}

// Improvement is a single actionable resume suggestion
type Improvement struct {
	Area       string `json:"area"`
	Suggestion string `json:"suggestion"`
	Priority   string `json:"priority"` // high, medium, low
}
