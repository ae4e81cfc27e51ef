package providers

import (
	"strings"
	"testing"

	"jobsphere-ai/pkg/models"
)

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"fenced", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"surrounded", "Here is the result:\n{\"a\":1}\nHope that helps!", `{"a":1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractJSON(tc.in)
			if err != nil {
				t.Fatalf("extractJSON returned error: %v", err)
			}
			if got != tc.want {
				t.Errorf("extractJSON = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestExtractJSONNoObject(t *testing.T) {
	if _, err := extractJSON("sorry, I cannot help with that"); err == nil {
		t.Error("expected error when no JSON object is present")
	}
}

func TestParseAnalysis(t *testing.T) {
	raw := "```json\n" + `{
		"overallMatch": 140,
		"skillsMatch": {"matched": ["react", "sql"], "missing": ["React", "aws"], "matchPercentage": 60},
		"experienceMatch": {"score": -5, "feedback": "fine"},
		"keywordAnalysis": {"matched": ["api"], "missing": ["cloud"], "matchPercentage": 50},
		"educationMatch": {"score": 70, "feedback": "ok"},
		"strengths": ["good"],
		"improvements": [],
		"atsScore": 55,
		"summary": "Decent match."
	}` + "\n```"

	analysis, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("parseAnalysis returned error: %v", err)
	}

	if analysis.OverallMatch != 100 {
		t.Errorf("overallMatch should clamp to 100, got %d", analysis.OverallMatch)
	}
	if analysis.ExperienceMatch.Score != 0 {
		t.Errorf("negative score should clamp to 0, got %d", analysis.ExperienceMatch.Score)
	}
	for _, m := range analysis.SkillsMatch.Missing {
		if strings.EqualFold(m, "react") {
			t.Errorf("missing skills must not overlap matched skills: %v", analysis.SkillsMatch.Missing)
		}
	}
}

func TestParseAnalysisRejectsMissingSummary(t *testing.T) {
	if _, err := parseAnalysis(`{"overallMatch": 50}`); err == nil {
		t.Error("expected error for response without summary")
	}
}

func TestParseQuestions(t *testing.T) {
	raw := `{"questions": [
		{"id": 9, "question": "Q1?", "type": "technical", "difficulty": "medium"},
		{"id": 9, "question": "Q2?", "type": "behavioral", "difficulty": "easy"},
		{"id": 9, "question": "Q3?", "type": "situational", "difficulty": "bogus"},
		{"id": 9, "question": "Q4?", "type": "technical", "difficulty": "hard"},
		{"id": 9, "question": "Q5?", "type": "behavioral", "difficulty": "medium"}
	]}`

	questions, err := parseQuestions(raw)
	if err != nil {
		t.Fatalf("parseQuestions returned error: %v", err)
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("ids must be renumbered 1..5, slot %d has %d", i, q.ID)
		}
	}
	if questions[2].Difficulty != models.DifficultyMedium {
		t.Errorf("invalid difficulty should normalize to medium, got %q", questions[2].Difficulty)
	}
}

func TestParseQuestionsWrongCount(t *testing.T) {
	raw := `{"questions": [{"id": 1, "question": "Only one?", "type": "technical", "difficulty": "easy"}]}`
	if _, err := parseQuestions(raw); err == nil {
		t.Error("expected error when the response does not contain exactly 5 questions")
	}
}

func TestParseQuestionsInvalidType(t *testing.T) {
	raw := `{"questions": [
		{"question": "Q1?", "type": "trivia", "difficulty": "easy"},
		{"question": "Q2?", "type": "technical", "difficulty": "easy"},
		{"question": "Q3?", "type": "technical", "difficulty": "easy"},
		{"question": "Q4?", "type": "technical", "difficulty": "easy"},
		{"question": "Q5?", "type": "technical", "difficulty": "easy"}
	]}`
	if _, err := parseQuestions(raw); err == nil {
		t.Error("expected error for invalid question type")
	}
}

func TestParseQuestionsHomogeneousTypes(t *testing.T) {
	raw := `{"questions": [
		{"question": "Q1?", "type": "situational", "difficulty": "easy"},
		{"question": "Q2?", "type": "situational", "difficulty": "easy"},
		{"question": "Q3?", "type": "situational", "difficulty": "easy"},
		{"question": "Q4?", "type": "situational", "difficulty": "easy"},
		{"question": "Q5?", "type": "situational", "difficulty": "easy"}
	]}`
	if _, err := parseQuestions(raw); err == nil {
		t.Error("expected error when no technical or behavioral question is present")
	}

	raw = strings.Replace(raw, `"Q1?", "type": "situational"`, `"Q1?", "type": "technical"`, 1)
	if _, err := parseQuestions(raw); err == nil {
		t.Error("expected error when behavioral questions are absent")
	}
}

func TestParseEvaluation(t *testing.T) {
	answers := []models.QuestionAnswer{
		{ID: 7, Question: "Q1?", Answer: "A1"},
		{Question: "Q2?", Answer: "A2"},
	}
	raw := `{
		"overallScore": 10,
		"questions": [
			{"id": 1, "score": 80, "feedback": "good"},
			{"id": 2, "score": 120, "feedback": "great"}
		],
		"summary": "Solid.",
		"tips": ["practice"]
	}`

	eval, err := parseEvaluation(raw, answers)
	if err != nil {
		t.Fatalf("parseEvaluation returned error: %v", err)
	}

	if eval.Questions[0].ID != 7 {
		t.Errorf("entry ids must come from the input, got %d", eval.Questions[0].ID)
	}
	if eval.Questions[1].ID != 2 {
		t.Errorf("zero input ids fall back to position, got %d", eval.Questions[1].ID)
	}
	if eval.Questions[1].Score != 100 {
		t.Errorf("scores should clamp to 100, got %d", eval.Questions[1].Score)
	}
	if eval.OverallScore != 90 {
		t.Errorf("overall must be recomputed from clamped entries, got %d", eval.OverallScore)
	}
}

func TestParseEvaluationCountMismatch(t *testing.T) {
	answers := []models.QuestionAnswer{{Question: "Q1?"}, {Question: "Q2?"}}
	raw := `{"overallScore": 50, "questions": [{"id": 1, "score": 50, "feedback": "ok"}], "summary": "x"}`
	if _, err := parseEvaluation(raw, answers); err == nil {
		t.Error("expected error when entry count does not match input")
	}
}

func TestBuildCoverLetterTruncation(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("word ", 600))
	letter, err := buildCoverLetter(long)
	if err != nil {
		t.Fatalf("buildCoverLetter returned error: %v", err)
	}
	if !letter.Truncated {
		t.Error("expected truncation flag for a 600-word body")
	}
	if letter.WordCount != 400 {
		t.Errorf("expected 400 words after truncation, got %d", letter.WordCount)
	}

	short, err := buildCoverLetter("A concise letter.")
	if err != nil {
		t.Fatalf("buildCoverLetter returned error: %v", err)
	}
	if short.Truncated {
		t.Error("short bodies must not be truncated")
	}
	if short.CharCount != len("A concise letter.") {
		t.Errorf("char count mismatch: %d", short.CharCount)
	}
}

func TestBuildCoverLetterEmpty(t *testing.T) {
	if _, err := buildCoverLetter("   \n"); err == nil {
		t.Error("expected error for empty body")
	}
}

func TestNormalizeRemoteError(t *testing.T) {
	err := normalizeRemoteError("gemini", errTest("googleapi: Error 429: RESOURCE_EXHAUSTED"))
	if !strings.Contains(err.Error(), "rate limit") {
		t.Errorf("throttling errors must surface a rate limit message, got %q", err.Error())
	}

	err = normalizeRemoteError("claude", errTest("connection reset"))
	if strings.Contains(strings.ToLower(err.Error()), "rate limit") {
		t.Errorf("ordinary errors must not read as throttling: %q", err.Error())
	}
}

type errTest string

func (e errTest) Error() string { return string(e) }
