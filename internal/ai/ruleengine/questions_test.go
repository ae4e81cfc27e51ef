package ruleengine

import (
	"testing"

	"jobsphere-ai/pkg/models"
)

func TestGenerateQuestions(t *testing.T) {
	questions, err := GenerateQuestions(sampleJob)
	if err != nil {
		t.Fatalf("GenerateQuestions returned error: %v", err)
	}
	if len(questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(questions))
	}

	wantTypes := []string{
		models.QuestionTypeTechnical,
		models.QuestionTypeBehavioral,
		models.QuestionTypeSituational,
		models.QuestionTypeTechnical,
		models.QuestionTypeBehavioral,
	}
	wantDifficulties := []string{
		models.DifficultyMedium,
		models.DifficultyEasy,
		models.DifficultyMedium,
		models.DifficultyHard,
		models.DifficultyMedium,
	}

	seen := make(map[string]bool)
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has id %d", i, q.ID)
		}
		if q.Type != wantTypes[i] {
			t.Errorf("slot %d: expected type %s, got %s", i+1, wantTypes[i], q.Type)
		}
		if q.Difficulty != wantDifficulties[i] {
			t.Errorf("slot %d: expected difficulty %s, got %s", i+1, wantDifficulties[i], q.Difficulty)
		}
		if q.Question == "" {
			t.Errorf("slot %d: empty question text", i+1)
		}
		if seen[q.Question] {
			t.Errorf("duplicate question: %q", q.Question)
		}
		seen[q.Question] = true
	}
}

func TestGenerateQuestionsEmptyJob(t *testing.T) {
	if _, err := GenerateQuestions(" "); err == nil {
		t.Error("expected error for blank job description")
	}
}

func TestClassifyDomain(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"We need a react frontend engineer", "web development"},
		{"Analytics and machine learning role", "data"},
		{"Kubernetes and AWS infrastructure", "cloud"},
		{"Flutter mobile app developer", "mobile"},
		{"Office administration and filing", "general"},
	}
	for _, tc := range cases {
		if got := classifyDomain(tc.text); got != tc.want {
			t.Errorf("classifyDomain(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestTechnicalBanksCoverAllDomains(t *testing.T) {
	for _, domain := range []string{"web development", "data", "cloud", "mobile", "general"} {
		if len(technicalQuestions[domain]) < 2 {
			t.Errorf("domain %q has fewer than 2 technical questions", domain)
		}
	}
}
