package providers

import (
	"context"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/logging"
	"jobsphere-ai/pkg/models"
)

// ClaudeProvider implements the AI provider interface using Anthropic's Claude
type ClaudeProvider struct {
	client anthropic.Client
	config *config.Config
	logger logging.Logger
}

// NewClaudeProvider creates a new Claude provider instance
func NewClaudeProvider(cfg *config.Config) *ClaudeProvider {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.AI.Claude.APIKey),
	)

	return &ClaudeProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

func (cp *ClaudeProvider) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeAnalysis, error) {
	raw, err := cp.complete(ctx, matchAnalysisPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw)
}

func (cp *ClaudeProvider) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, companyName string, candidate models.CandidateDetails) (*models.CoverLetter, error) {
	raw, err := cp.complete(ctx, coverLetterPrompt(resumeText, jobDescription, companyName, candidate))
	if err != nil {
		return nil, err
	}
	return buildCoverLetter(raw)
}

func (cp *ClaudeProvider) GenerateQuestions(ctx context.Context, jobDescription string) ([]models.InterviewQuestion, error) {
	raw, err := cp.complete(ctx, questionsPrompt(jobDescription))
	if err != nil {
		return nil, err
	}
	return parseQuestions(raw)
}

func (cp *ClaudeProvider) EvaluateAnswers(ctx context.Context, jobDescription string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, error) {
	raw, err := cp.complete(ctx, evaluationPrompt(jobDescription, answers))
	if err != nil {
		return nil, err
	}
	return parseEvaluation(raw, answers)
}

// complete sends a single-turn prompt to Claude and returns the text content
func (cp *ClaudeProvider) complete(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()

	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.config.AI.Claude.Model),
		MaxTokens:   int64(cp.config.AI.Claude.MaxTokens),
		Temperature: anthropic.Float(float64(cp.config.AI.Claude.Temperature)),
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: prompt},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return "", normalizeRemoteError("claude", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("empty response from Claude")
	}

	var responseText string
	for _, content := range response.Content {
		textContent := content.AsText()
		responseText = textContent.Text
		break
	}
	if responseText == "" {
		return "", fmt.Errorf("no text content in Claude response")
	}

	cp.logger.Debug("Claude completion finished", map[string]interface{}{
		"provider":        "claude",
		"processing_time": time.Since(startTime).String(),
		"response_length": len(responseText),
	})

	return responseText, nil
}

// IsHealthy checks if the Claude provider is healthy and available
func (cp *ClaudeProvider) IsHealthy(ctx context.Context) error {
	if cp.config.AI.Claude.APIKey == "" {
		return fmt.Errorf("Claude API key not configured - set CLAUDE_API_KEY environment variable")
	}

	_, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(cp.config.AI.Claude.Model),
		MaxTokens: 16,
		Messages: []anthropic.MessageParam{{
			Content: []anthropic.ContentBlockParamUnion{{
				OfText: &anthropic.TextBlockParam{Text: "Hello"},
			}},
			Role: anthropic.MessageParamRoleUser,
		}},
	})
	if err != nil {
		return fmt.Errorf("Claude API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the AI provider
func (cp *ClaudeProvider) GetProviderName() string {
	return "claude"
}

// Label returns the human-readable attribution for responses
func (cp *ClaudeProvider) Label() string {
	return "Claude AI"
}
