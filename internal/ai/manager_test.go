package ai

import (
	"context"
	"testing"
	"time"

	"jobsphere-ai/internal/config"
)

// testConfig returns a config with no remote providers in any chain so tests
// run entirely against the rule-based engine.
func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.AI.Timeout = 2 * time.Second
	cfg.AI.RateLimit = 600
	cfg.AI.MaxFailures = 5
	cfg.AI.Claude.Model = "claude-3-haiku-20240307"
	cfg.AI.Gemini.Model = "gemini-2.0-flash"
	return cfg
}

const managerTestJob = `We are hiring a backend developer with golang and sql experience
to build APIs and data pipelines for our analytics platform and reporting tools.`

func TestManagerFallsBackToRules(t *testing.T) {
	cfg := testConfig()
	m := NewManager(cfg)
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer m.Stop()

	analysis, provider, err := m.AnalyzeResume(context.Background(),
		"Engineer with 3+ years of golang and sql experience building APIs.", managerTestJob)
	if err != nil {
		t.Fatalf("AnalyzeResume returned error: %v", err)
	}
	if provider != "Rule-based Analysis" {
		t.Errorf("expected rule-based attribution with empty chains, got %q", provider)
	}
	if analysis.Summary == "" {
		t.Error("expected non-empty analysis summary")
	}
}

func TestManagerChainAlwaysTerminatesWithRules(t *testing.T) {
	cfg := testConfig()
	cfg.AI.Chains.MatchAnalysis = []string{"claude", "nonexistent"}

	m := NewManager(cfg)
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer m.Stop()

	m.mu.RLock()
	chain := m.chainFor(CapabilityMatchAnalysis)
	m.mu.RUnlock()

	if len(chain) == 0 {
		t.Fatal("expected non-empty chain")
	}
	last := chain[len(chain)-1]
	if last.GetProviderName() != "rules" {
		t.Errorf("expected rule engine as terminal provider, got %q", last.GetProviderName())
	}
	for _, p := range chain {
		if p.GetProviderName() == "nonexistent" {
			t.Error("unknown provider names must be dropped from the chain")
		}
	}
}

func TestManagerRequiresStart(t *testing.T) {
	m := NewManager(testConfig())
	if _, _, err := m.AnalyzeResume(context.Background(), "resume", "job"); err == nil {
		t.Error("expected error before Start")
	}
}

func TestManagerGenerateQuestionsViaRules(t *testing.T) {
	m := NewManager(testConfig())
	if err := m.Start(context.Background()); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}
	defer m.Stop()

	questions, provider, err := m.GenerateQuestions(context.Background(), managerTestJob)
	if err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if len(questions) != 5 {
		t.Errorf("expected 5 questions, got %d", len(questions))
	}
	if provider != "Rule-based Analysis" {
		t.Errorf("expected rule-based attribution, got %q", provider)
	}
}
