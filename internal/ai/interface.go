package ai

import (
	"context"

	"jobsphere-ai/pkg/models"
)

// Capability identifies one of the four AI-assisted operations
type Capability string

const (
	CapabilityMatchAnalysis      Capability = "match_analysis"
	CapabilityCoverLetterDraft   Capability = "cover_letter_draft"
	CapabilityQuestionGeneration Capability = "question_generation"
	CapabilityAnswerEvaluation   Capability = "answer_evaluation"
)

// Provider is the uniform capability contract implemented by every remote AI
// adapter and by the rule-based engine. Implementations must never panic:
// any internal fault is returned as an error. Oversized inputs are bounded
// internally, and remote replies that cannot be parsed into the exact output
// shape are reported as failures, never as partial data.
type Provider interface {
	// AnalyzeResume matches a resume against a job description
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeAnalysis, error)

	// GenerateCoverLetter drafts a cover letter from a resume, job description
	// and candidate contact details
	GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, companyName string, candidate models.CandidateDetails) (*models.CoverLetter, error)

	// GenerateQuestions produces exactly five interview questions for a job description
	GenerateQuestions(ctx context.Context, jobDescription string) ([]models.InterviewQuestion, error)

	// EvaluateAnswers scores a practice interview session, one entry per input
	// question, preserving ids and order
	EvaluateAnswers(ctx context.Context, jobDescription string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, error)

	// GetProviderName returns the short identifier used in configuration and logs
	GetProviderName() string

	// Label returns the human-readable attribution shown to users
	Label() string

	// IsHealthy checks if the provider is available
	IsHealthy(ctx context.Context) error
}

// Result wraps a capability outcome with its provider attribution
type Result struct {
	Success  bool
	Payload  interface{}
	Err      string
	Provider string
}
