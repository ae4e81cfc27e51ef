// Package ruleengine implements all four AI capabilities with deterministic
// heuristics over a bundled knowledge base. It needs no network access and is
// the terminal, always-available entry of every fallback chain.
package ruleengine

import (
	"context"

	"jobsphere-ai/pkg/models"
)

// Engine adapts the pure heuristic functions to the provider contract
type Engine struct{}

// New creates a rule-based engine instance
func New() *Engine {
	return &Engine{}
}

// AnalyzeResume implements the match analysis capability
func (e *Engine) AnalyzeResume(_ context.Context, resumeText, jobDescription string) (*models.ResumeAnalysis, error) {
	return AnalyzeResume(resumeText, jobDescription)
}

// GenerateCoverLetter implements the cover letter capability
func (e *Engine) GenerateCoverLetter(_ context.Context, resumeText, jobDescription, companyName string, candidate models.CandidateDetails) (*models.CoverLetter, error) {
	return GenerateCoverLetter(resumeText, jobDescription, companyName, candidate)
}

// GenerateQuestions implements the question generation capability
func (e *Engine) GenerateQuestions(_ context.Context, jobDescription string) ([]models.InterviewQuestion, error) {
	return GenerateQuestions(jobDescription)
}

// EvaluateAnswers implements the answer evaluation capability
func (e *Engine) EvaluateAnswers(_ context.Context, jobDescription string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, error) {
	return EvaluateAnswers(jobDescription, answers)
}

// GetProviderName returns the provider identifier
func (e *Engine) GetProviderName() string {
	return "rules"
}

// Label returns the user-facing attribution
func (e *Engine) Label() string {
	return "Rule-based Analysis"
}

// IsHealthy always succeeds; the engine has no external dependencies
func (e *Engine) IsHealthy(_ context.Context) error {
	return nil
}
