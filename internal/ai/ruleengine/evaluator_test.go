package ruleengine

import (
	"strings"
	"testing"

	"jobsphere-ai/pkg/models"
)

func TestEvaluateAnswers(t *testing.T) {
	answers := []models.QuestionAnswer{
		{
			ID:       1,
			Question: "Tell me about a project you shipped.",
			Type:     models.QuestionTypeBehavioral,
			Answer: "In my experience leading the checkout rewrite, for example, I coordinated three " +
				"engineers over two months. Because we profiled the react frontend first, we found the " +
				"slowest queries early. As a result the conversion rate increased by twelve percent and " +
				"page load improved dramatically, an outcome the whole team was proud of. The project " +
				"also taught me how to communicate tradeoffs to stakeholders clearly and how to keep " +
				"scope under control while still delivering meaningful improvements on schedule.",
		},
		{
			ID:       2,
			Question: "How do you handle deadlines?",
			Type:     models.QuestionTypeBehavioral,
			Answer:   "I just work harder.",
		},
		{
			ID:       3,
			Question: "Describe a conflict you resolved.",
			Type:     models.QuestionTypeSituational,
			Answer:   "",
		},
	}

	eval, err := EvaluateAnswers(sampleJob, answers)
	if err != nil {
		t.Fatalf("EvaluateAnswers returned error: %v", err)
	}

	if len(eval.Questions) != len(answers) {
		t.Fatalf("expected %d evaluations, got %d", len(answers), len(eval.Questions))
	}
	for i, entry := range eval.Questions {
		if entry.ID != answers[i].ID {
			t.Errorf("entry %d: expected id %d, got %d", i, answers[i].ID, entry.ID)
		}
		if entry.Score < 0 || entry.Score > 100 {
			t.Errorf("entry %d: score out of range: %d", i, entry.Score)
		}
		if entry.Feedback == "" {
			t.Errorf("entry %d: empty feedback", i)
		}
		if len(entry.Strengths) == 0 || len(entry.Improvements) == 0 {
			t.Errorf("entry %d: strengths and improvements must be non-empty", i)
		}
	}

	detailed := eval.Questions[0].Score
	terse := eval.Questions[1].Score
	empty := eval.Questions[2].Score
	if detailed <= terse {
		t.Errorf("detailed answer (%d) should outscore terse answer (%d)", detailed, terse)
	}
	if terse <= empty {
		t.Errorf("terse answer (%d) should outscore empty answer (%d)", terse, empty)
	}

	sum := 0
	for _, entry := range eval.Questions {
		sum += entry.Score
	}
	want := round(float64(sum) / float64(len(eval.Questions)))
	if eval.OverallScore != want {
		t.Errorf("overall score %d, want rounded mean %d", eval.OverallScore, want)
	}

	if eval.Summary == "" {
		t.Error("expected non-empty summary")
	}
	if len(eval.Tips) == 0 {
		t.Error("expected interview tips")
	}
}

func TestEvaluateAnswersEmptyAnswerFeedback(t *testing.T) {
	eval, err := EvaluateAnswers(sampleJob, []models.QuestionAnswer{
		{ID: 1, Question: "Anything?", Type: models.QuestionTypeBehavioral, Answer: "   "},
	})
	if err != nil {
		t.Fatalf("EvaluateAnswers returned error: %v", err)
	}
	if !strings.Contains(eval.Questions[0].Feedback, "No answer provided") {
		t.Errorf("expected empty-answer feedback, got %q", eval.Questions[0].Feedback)
	}
}

func TestEvaluateAnswersZeroIDsFallBackToIndex(t *testing.T) {
	eval, err := EvaluateAnswers(sampleJob, []models.QuestionAnswer{
		{Question: "First?", Type: models.QuestionTypeTechnical, Answer: "Some answer."},
		{Question: "Second?", Type: models.QuestionTypeTechnical, Answer: "Another answer."},
	})
	if err != nil {
		t.Fatalf("EvaluateAnswers returned error: %v", err)
	}
	for i, entry := range eval.Questions {
		if entry.ID != i+1 {
			t.Errorf("entry %d: expected fallback id %d, got %d", i, i+1, entry.ID)
		}
	}
}

func TestEvaluateAnswersInvalidInputs(t *testing.T) {
	if _, err := EvaluateAnswers("", []models.QuestionAnswer{{Answer: "x"}}); err == nil {
		t.Error("expected error for empty job description")
	}
	if _, err := EvaluateAnswers(sampleJob, nil); err == nil {
		t.Error("expected error for empty answer list")
	}
}
