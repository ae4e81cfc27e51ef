package ai

import (
	"context"
	"fmt"
	"sync"

	"jobsphere-ai/internal/ai/providers"
	"jobsphere-ai/internal/ai/ruleengine"
	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/logging"
	"jobsphere-ai/pkg/models"
)

// Manager owns the AI providers and their capability chains. Handlers talk to
// the manager through typed capability methods; the fallback mechanics stay
// internal.
type Manager struct {
	config       *config.Config
	guard        *Guard
	orchestrator *Orchestrator
	registry     map[string]Provider
	rules        Provider
	logger       logging.Logger
	mu           sync.RWMutex
	started      bool
}

// NewManager creates a new AI manager instance
func NewManager(cfg *config.Config) *Manager {
	guard := NewGuard(cfg)
	return &Manager{
		config:       cfg,
		guard:        guard,
		orchestrator: NewOrchestrator(guard, cfg.AI.Timeout),
		registry:     make(map[string]Provider),
		logger:       logging.GetGlobalLogger(),
	}
}

// Start builds the configured providers. Remote provider construction or
// health failures are logged but never fatal: the rule-based engine keeps
// every capability available.
func (m *Manager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting AI manager")

	m.registry["claude"] = providers.NewClaudeProvider(m.config)

	gemini, err := providers.NewGeminiProvider(ctx, m.config)
	if err != nil {
		m.logger.Warn("Gemini provider unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		m.registry["gemini"] = gemini
	}

	m.rules = ruleengine.New()
	m.registry[m.rules.GetProviderName()] = m.rules

	healthCtx, cancel := context.WithTimeout(ctx, m.config.AI.Timeout)
	defer cancel()
	for name, provider := range m.registry {
		if name == ruleProviderName {
			continue
		}
		if err := provider.IsHealthy(healthCtx); err != nil {
			m.logger.Warn("Provider health check failed at startup", map[string]interface{}{
				"provider": name,
				"error":    err.Error(),
			})
		} else {
			m.logger.Info("Provider healthy", map[string]interface{}{"provider": name})
		}
	}

	m.started = true
	return nil
}

// Stop shuts down the AI manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping AI manager")
	m.registry = make(map[string]Provider)
	m.rules = nil
	m.started = false
	return nil
}

// AnalyzeResume runs the match analysis capability through its fallback chain
func (m *Manager) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (*models.ResumeAnalysis, string, error) {
	result, err := m.execute(ctx, CapabilityMatchAnalysis, func(ctx context.Context, p Provider) (interface{}, error) {
		return p.AnalyzeResume(ctx, resumeText, jobDescription)
	})
	if err != nil {
		return nil, "", err
	}
	analysis, ok := result.Payload.(*models.ResumeAnalysis)
	if !ok {
		return nil, "", fmt.Errorf("unexpected analysis payload type")
	}
	return analysis, result.Provider, nil
}

// GenerateCoverLetter runs the cover letter capability through its fallback chain
func (m *Manager) GenerateCoverLetter(ctx context.Context, resumeText, jobDescription, companyName string, candidate models.CandidateDetails) (*models.CoverLetter, string, error) {
	result, err := m.execute(ctx, CapabilityCoverLetterDraft, func(ctx context.Context, p Provider) (interface{}, error) {
		return p.GenerateCoverLetter(ctx, resumeText, jobDescription, companyName, candidate)
	})
	if err != nil {
		return nil, "", err
	}
	letter, ok := result.Payload.(*models.CoverLetter)
	if !ok {
		return nil, "", fmt.Errorf("unexpected cover letter payload type")
	}
	return letter, result.Provider, nil
}

// GenerateQuestions runs the question generation capability through its fallback chain
func (m *Manager) GenerateQuestions(ctx context.Context, jobDescription string) ([]models.InterviewQuestion, string, error) {
	result, err := m.execute(ctx, CapabilityQuestionGeneration, func(ctx context.Context, p Provider) (interface{}, error) {
		return p.GenerateQuestions(ctx, jobDescription)
	})
	if err != nil {
		return nil, "", err
	}
	questions, ok := result.Payload.([]models.InterviewQuestion)
	if !ok {
		return nil, "", fmt.Errorf("unexpected questions payload type")
	}
	return questions, result.Provider, nil
}

// EvaluateAnswers runs the answer evaluation capability through its fallback chain
func (m *Manager) EvaluateAnswers(ctx context.Context, jobDescription string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, string, error) {
	result, err := m.execute(ctx, CapabilityAnswerEvaluation, func(ctx context.Context, p Provider) (interface{}, error) {
		return p.EvaluateAnswers(ctx, jobDescription, answers)
	})
	if err != nil {
		return nil, "", err
	}
	eval, ok := result.Payload.(*models.AnswerEvaluation)
	if !ok {
		return nil, "", fmt.Errorf("unexpected evaluation payload type")
	}
	return eval, result.Provider, nil
}

func (m *Manager) execute(ctx context.Context, capability Capability, invoke func(ctx context.Context, p Provider) (interface{}, error)) (*Result, error) {
	m.mu.RLock()
	started := m.started
	chain := m.chainFor(capability)
	m.mu.RUnlock()

	if !started {
		return nil, fmt.Errorf("AI manager not started")
	}
	return m.orchestrator.Execute(ctx, capability, chain, invoke)
}

// chainFor resolves the configured provider order for a capability and
// guarantees the rule-based engine terminates the chain. Caller holds m.mu.
func (m *Manager) chainFor(capability Capability) []Provider {
	names := m.config.ChainFor(string(capability))

	chain := make([]Provider, 0, len(names)+1)
	hasRules := false
	for _, name := range names {
		provider, exists := m.registry[name]
		if !exists {
			m.logger.Warn("Unknown provider in chain, skipping", map[string]interface{}{
				"capability": string(capability),
				"provider":   name,
			})
			continue
		}
		if name == ruleProviderName {
			hasRules = true
		}
		chain = append(chain, provider)
	}
	if !hasRules && m.rules != nil {
		chain = append(chain, m.rules)
	}
	return chain
}

// IsHealthy reports whether the manager has been started
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.started
}

// ProviderStatus describes one provider for status reporting
type ProviderStatus struct {
	Name    string `json:"name"`
	Label   string `json:"label"`
	Circuit string `json:"circuit"`
}

// Status returns the current provider roster with circuit states
func (m *Manager) Status() []ProviderStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()

	statuses := make([]ProviderStatus, 0, len(m.registry))
	for name, provider := range m.registry {
		circuit := "closed"
		if name != ruleProviderName {
			circuit = m.guard.State(name).String()
		}
		statuses = append(statuses, ProviderStatus{
			Name:    name,
			Label:   provider.Label(),
			Circuit: circuit,
		})
	}
	return statuses
}
