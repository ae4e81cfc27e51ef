package models

// Question types and difficulties used by the practice test capabilities
const (
	QuestionTypeTechnical   = "technical"
	QuestionTypeBehavioral  = "behavioral"
	QuestionTypeSituational = "situational"

	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// InterviewQuestion is a single generated interview question
type InterviewQuestion struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Type       string `json:"type"`
	Difficulty string `json:"difficulty"`
}

// QuestionAnswer pairs a question with the candidate's answer for evaluation
type QuestionAnswer struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Type     string `json:"type"`
	Answer   string `json:"answer"`
}

// QuestionEvaluation is the per-question assessment of an answer
type QuestionEvaluation struct {
	ID           int      `json:"id"`
	Score        int      `json:"score"`
	Feedback     string   `json:"feedback"`
	IdealAnswer  string   `json:"idealAnswer"`
	Strengths    []string `json:"strengths"`
	Improvements []string `json:"improvements"`
}

// AnswerEvaluation is the full assessment of a practice interview session
type AnswerEvaluation struct {
	OverallScore int                  `json:"overallScore"`
	Questions    []QuestionEvaluation `json:"questions"`
	Summary      string               `json:"summary"`
	Tips         []string             `json:"tips"`
}
