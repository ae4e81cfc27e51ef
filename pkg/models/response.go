package models

import "time"

// AnalyzeResumeResponse wraps a successful match analysis with its provider attribution
type AnalyzeResumeResponse struct {
	Success  bool            `json:"success"`
	Analysis *ResumeAnalysis `json:"analysis"`
	Provider string          `json:"provider"`
}

// CoverLetterResponse wraps a successful cover letter generation
type CoverLetterResponse struct {
	Success     bool   `json:"success"`
	CoverLetter string `json:"coverLetter"`
	WordCount   int    `json:"wordCount"`
	CharCount   int    `json:"charCount"`
	Provider    string `json:"provider"`
}

// GenerateQuestionsResponse wraps a successful question generation
type GenerateQuestionsResponse struct {
	Success   bool                `json:"success"`
	Questions []InterviewQuestion `json:"questions"`
	Provider  string              `json:"provider"`
}

// EvaluateAnswersResponse wraps a successful answer evaluation
type EvaluateAnswersResponse struct {
	Success    bool              `json:"success"`
	Evaluation *AnswerEvaluation `json:"evaluation"`
	Provider   string            `json:"provider"`
}

// UsageResponse reports daily quota consumption for a feature
type UsageResponse struct {
	Success   bool   `json:"success"`
	Feature   string `json:"feature"`
	Used      int    `json:"used"`
	Limit     int    `json:"limit"`
	Remaining int    `json:"remaining"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}
