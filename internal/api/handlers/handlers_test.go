package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"jobsphere-ai/internal/ai"
	"jobsphere-ai/internal/config"
	"jobsphere-ai/internal/quota"
	"jobsphere-ai/pkg/models"
)

const testJob = `We are looking for a React developer to join our frontend team and build
modern web interfaces with javascript and css in an agile environment with code reviews.`

const testResume = `Frontend engineer with 4+ years of experience building react applications.
Skilled in javascript, css and git. Bachelor of Science in Computer Science.
Developed and shipped several customer-facing projects.`

// newTestStack wires a manager with empty remote chains (rule engine only)
// and a memory-backed quota tracker.
func newTestStack(t *testing.T, dailyLimit int) (*ai.Manager, *quota.Tracker) {
	t.Helper()

	cfg := &config.Config{}
	cfg.AI.Timeout = 2 * time.Second
	cfg.AI.RateLimit = 600
	cfg.AI.MaxFailures = 5
	cfg.AI.Claude.Model = "claude-3-haiku-20240307"
	cfg.AI.Gemini.Model = "gemini-2.0-flash"

	manager := ai.NewManager(cfg)
	if err := manager.Start(context.Background()); err != nil {
		t.Fatalf("failed to start AI manager: %v", err)
	}
	t.Cleanup(func() { _ = manager.Stop() })

	return manager, quota.NewTracker(quota.NewMemoryStore(), dailyLimit)
}

func doJSON(handler echo.HandlerFunc, method, target, userID, body string) (*httptest.ResponseRecorder, error) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return rec, handler(c)
}

func analyzeBody() string {
	b, _ := json.Marshal(models.AnalyzeResumeRequest{
		ResumeText:     testResume,
		JobDescription: testJob,
	})
	return string(b)
}

func TestAnalyzeResumeHandler(t *testing.T) {
	manager, tracker := newTestStack(t, 5)
	handler := AnalyzeResumeHandler(manager, tracker)

	rec, err := doJSON(handler, http.MethodPost, "/api/v1/resume/analyze", "user-1", analyzeBody())
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.AnalyzeResumeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Success {
		t.Error("expected success=true")
	}
	if resp.Provider != "Rule-based Analysis" {
		t.Errorf("expected rule-based attribution, got %q", resp.Provider)
	}
	if resp.Analysis == nil || resp.Analysis.Summary == "" {
		t.Error("expected populated analysis")
	}
}

func TestAnalyzeResumeHandlerMissingUser(t *testing.T) {
	manager, tracker := newTestStack(t, 5)
	handler := AnalyzeResumeHandler(manager, tracker)

	rec, err := doJSON(handler, http.MethodPost, "/api/v1/resume/analyze", "", analyzeBody())
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 without X-User-ID, got %d", rec.Code)
	}
}

func TestAnalyzeResumeHandlerValidation(t *testing.T) {
	manager, tracker := newTestStack(t, 5)
	handler := AnalyzeResumeHandler(manager, tracker)

	short, _ := json.Marshal(models.AnalyzeResumeRequest{
		ResumeText:     testResume,
		JobDescription: "too short",
	})
	rec, err := doJSON(handler, http.MethodPost, "/api/v1/resume/analyze", "user-1", string(short))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for short job description, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "validation_failed" {
		t.Errorf("expected validation_failed, got %q", resp.Error)
	}

	// Validation failures must not consume quota.
	used, _, _, err := tracker.Usage(context.Background(), "user-1", quota.FeatureResumeAnalysis)
	if err != nil {
		t.Fatalf("Usage returned error: %v", err)
	}
	if used != 0 {
		t.Errorf("rejected request consumed quota: used=%d", used)
	}
}

func TestAnalyzeResumeHandlerQuotaExhaustion(t *testing.T) {
	manager, tracker := newTestStack(t, 2)
	handler := AnalyzeResumeHandler(manager, tracker)

	for i := 0; i < 2; i++ {
		rec, err := doJSON(handler, http.MethodPost, "/api/v1/resume/analyze", "user-1", analyzeBody())
		if err != nil {
			t.Fatalf("handler returned error: %v", err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("call %d: expected 200, got %d", i+1, rec.Code)
		}
	}

	rec, err := doJSON(handler, http.MethodPost, "/api/v1/resume/analyze", "user-1", analyzeBody())
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 over the cap, got %d", rec.Code)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "quota_exceeded" {
		t.Errorf("expected quota_exceeded, got %q", resp.Error)
	}
	if !strings.Contains(resp.Message, "Daily limit reached (2/2)") {
		t.Errorf("unexpected quota message: %q", resp.Message)
	}
}

func TestGenerateCoverLetterHandler(t *testing.T) {
	manager, tracker := newTestStack(t, 5)
	handler := GenerateCoverLetterHandler(manager, tracker)

	body, _ := json.Marshal(models.CoverLetterRequest{
		ResumeText:     testResume,
		JobDescription: testJob,
		CompanyName:    "Acme Corp",
		Candidate:      models.CandidateDetails{Name: "Jordan Smith", Email: "jordan@example.com"},
	})
	rec, err := doJSON(handler, http.MethodPost, "/api/v1/cover-letter/generate", "user-1", string(body))
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp models.CoverLetterResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.CoverLetter == "" {
		t.Error("expected non-empty cover letter")
	}
	if resp.WordCount == 0 || resp.CharCount == 0 {
		t.Errorf("expected size metadata, got words=%d chars=%d", resp.WordCount, resp.CharCount)
	}
}

func TestPracticeHandlers(t *testing.T) {
	manager, tracker := newTestStack(t, 5)

	qBody, _ := json.Marshal(models.GenerateQuestionsRequest{JobDescription: testJob})
	rec, err := doJSON(GenerateQuestionsHandler(manager, tracker), http.MethodPost, "/api/v1/practice/questions", "user-1", string(qBody))
	if err != nil {
		t.Fatalf("questions handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var qResp models.GenerateQuestionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &qResp); err != nil {
		t.Fatalf("failed to decode questions response: %v", err)
	}
	if len(qResp.Questions) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(qResp.Questions))
	}

	answers := make([]models.QuestionAnswer, 0, len(qResp.Questions))
	for _, q := range qResp.Questions {
		answers = append(answers, models.QuestionAnswer{
			ID:       q.ID,
			Question: q.Question,
			Type:     q.Type,
			Answer:   fmt.Sprintf("For example, in my experience with react projects this improved results because %s", q.Type),
		})
	}
	eBody, _ := json.Marshal(models.EvaluateAnswersRequest{
		JobDescription:      testJob,
		QuestionsAndAnswers: answers,
	})
	rec, err = doJSON(EvaluateAnswersHandler(manager, tracker), http.MethodPost, "/api/v1/practice/evaluate", "user-1", string(eBody))
	if err != nil {
		t.Fatalf("evaluate handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var eResp models.EvaluateAnswersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &eResp); err != nil {
		t.Fatalf("failed to decode evaluation response: %v", err)
	}
	if eResp.Evaluation == nil || len(eResp.Evaluation.Questions) != len(answers) {
		t.Fatal("expected one evaluation entry per answer")
	}
	for i, entry := range eResp.Evaluation.Questions {
		if entry.ID != answers[i].ID {
			t.Errorf("entry %d: id %d does not match input id %d", i, entry.ID, answers[i].ID)
		}
	}
}

func TestUsageHandler(t *testing.T) {
	manager, tracker := newTestStack(t, 5)

	// Consume twice, then read.
	handler := AnalyzeResumeHandler(manager, tracker)
	for i := 0; i < 2; i++ {
		if _, err := doJSON(handler, http.MethodPost, "/api/v1/resume/analyze", "user-1", analyzeBody()); err != nil {
			t.Fatalf("analyze call failed: %v", err)
		}
	}

	rec, err := doJSON(UsageHandler(tracker, quota.FeatureResumeAnalysis), http.MethodGet, "/api/v1/resume/usage", "user-1", "")
	if err != nil {
		t.Fatalf("usage handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp models.UsageResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode usage response: %v", err)
	}
	if resp.Used != 2 || resp.Limit != 5 || resp.Remaining != 3 {
		t.Errorf("expected 2/5 used, got used=%d limit=%d remaining=%d", resp.Used, resp.Limit, resp.Remaining)
	}
	if resp.Feature != quota.FeatureResumeAnalysis {
		t.Errorf("unexpected feature key %q", resp.Feature)
	}
}
