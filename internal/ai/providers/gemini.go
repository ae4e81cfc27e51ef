package providers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/logging"
	"jobsphere-ai/pkg/models"
)

// GeminiProvider implements the AI provider interface using Google's Gemini
type GeminiProvider struct {
	client *genai.Client
	config *config.Config
	logger logging.Logger
}

// NewGeminiProvider creates a new Gemini provider configured for the Gemini
// API backend. The returned provider is unhealthy until an API key is set.
func NewGeminiProvider(ctx context.Context, cfg *config.Config) (*GeminiProvider, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.AI.Gemini.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiProvider{
		client: client,
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}, nil
}

func (gp *GeminiProvider) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeAnalysis, error) {
	raw, err := gp.complete(ctx, matchAnalysisPrompt(resumeText, jobDescription))
	if err != nil {
		return nil, err
	}
	return parseAnalysis(raw)
}

func (gp *GeminiProvider) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, companyName string, candidate models.CandidateDetails) (*models.CoverLetter, error) {
	raw, err := gp.complete(ctx, coverLetterPrompt(resumeText, jobDescription, companyName, candidate))
	if err != nil {
		return nil, err
	}
	return buildCoverLetter(raw)
}

func (gp *GeminiProvider) GenerateQuestions(ctx context.Context, jobDescription string) ([]models.InterviewQuestion, error) {
	raw, err := gp.complete(ctx, questionsPrompt(jobDescription))
	if err != nil {
		return nil, err
	}
	return parseQuestions(raw)
}

func (gp *GeminiProvider) EvaluateAnswers(ctx context.Context, jobDescription string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, error) {
	raw, err := gp.complete(ctx, evaluationPrompt(jobDescription, answers))
	if err != nil {
		return nil, err
	}
	return parseEvaluation(raw, answers)
}

// complete sends a single prompt to Gemini and concatenates candidate text
func (gp *GeminiProvider) complete(ctx context.Context, prompt string) (string, error) {
	startTime := time.Now()

	resp, err := gp.client.Models.GenerateContent(ctx, gp.config.AI.Gemini.Model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(float32(gp.config.AI.Gemini.Temperature)),
		MaxOutputTokens: int32(gp.config.AI.Gemini.MaxTokens),
	})
	if err != nil {
		return "", normalizeRemoteError("gemini", err)
	}

	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}

	output := strings.TrimSpace(builder.String())
	if output == "" {
		return "", fmt.Errorf("gemini api returned empty response")
	}

	gp.logger.Debug("Gemini completion finished", map[string]interface{}{
		"provider":        "gemini",
		"processing_time": time.Since(startTime).String(),
		"response_length": len(output),
	})

	return output, nil
}

// IsHealthy checks if the Gemini provider is configured and reachable
func (gp *GeminiProvider) IsHealthy(ctx context.Context) error {
	if gp.config.AI.Gemini.APIKey == "" {
		return fmt.Errorf("Gemini API key not configured - set GEMINI_API_KEY environment variable")
	}

	_, err := gp.client.Models.GenerateContent(ctx, gp.config.AI.Gemini.Model, genai.Text("Hello"), nil)
	if err != nil {
		return fmt.Errorf("Gemini API health check failed: %w", err)
	}

	return nil
}

// GetProviderName returns the name of the AI provider
func (gp *GeminiProvider) GetProviderName() string {
	return "gemini"
}

// Label returns the human-readable attribution for responses
func (gp *GeminiProvider) Label() string {
	return "Gemini AI"
}
