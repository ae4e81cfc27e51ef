package providers

import (
	"encoding/json"
	"fmt"
	"strings"

	"jobsphere-ai/pkg/models"
	"jobsphere-ai/pkg/utils"
)

const maxCoverLetterWords = 500

// extractJSON strips markdown code fences and slices the text between the
// first opening brace and the last closing brace. Models routinely wrap JSON
// in ```json fences or add commentary around it.
func extractJSON(raw string) (string, error) {
	text := strings.TrimSpace(raw)

	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		if idx := strings.LastIndex(text, "```"); idx >= 0 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < 0 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	return text[start : end+1], nil
}

func parseAnalysis(raw string) (*models.ResumeAnalysis, error) {
	text, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse analysis response: %w", err)
	}

	var analysis models.ResumeAnalysis
	if err := json.Unmarshal([]byte(text), &analysis); err != nil {
		return nil, fmt.Errorf("failed to decode analysis JSON: %w", err)
	}
	if analysis.Summary == "" {
		return nil, fmt.Errorf("analysis response missing summary")
	}

	analysis.OverallMatch = clampScore(analysis.OverallMatch)
	analysis.ATSScore = clampScore(analysis.ATSScore)
	analysis.SkillsMatch.MatchPercentage = clampScore(analysis.SkillsMatch.MatchPercentage)
	analysis.KeywordAnalysis.MatchPercentage = clampScore(analysis.KeywordAnalysis.MatchPercentage)
	analysis.ExperienceMatch.Score = clampScore(analysis.ExperienceMatch.Score)
	analysis.EducationMatch.Score = clampScore(analysis.EducationMatch.Score)

	// Matched and missing sets must not overlap.
	analysis.SkillsMatch.Missing = dropOverlap(analysis.SkillsMatch.Missing, analysis.SkillsMatch.Matched)
	analysis.KeywordAnalysis.Missing = dropOverlap(analysis.KeywordAnalysis.Missing, analysis.KeywordAnalysis.Matched)

	if analysis.Strengths == nil {
		analysis.Strengths = []string{}
	}
	if analysis.Improvements == nil {
		analysis.Improvements = []models.Improvement{}
	}
	return &analysis, nil
}

// buildCoverLetter wraps a generated body with word and character counts.
// Bodies over the word cap are cut back to 400 words and flagged.
func buildCoverLetter(body string) (*models.CoverLetter, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, fmt.Errorf("empty cover letter response")
	}

	truncated := false
	words := strings.Fields(body)
	if len(words) > maxCoverLetterWords {
		body = strings.Join(words[:400], " ")
		truncated = true
	}

	return &models.CoverLetter{
		Body:      body,
		WordCount: utils.WordCount(body),
		CharCount: len(body),
		Truncated: truncated,
	}, nil
}

func parseQuestions(raw string) ([]models.InterviewQuestion, error) {
	text, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse questions response: %w", err)
	}

	var payload struct {
		Questions []models.InterviewQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(text), &payload); err != nil {
		return nil, fmt.Errorf("failed to decode questions JSON: %w", err)
	}
	if len(payload.Questions) != 5 {
		return nil, fmt.Errorf("expected 5 questions, got %d", len(payload.Questions))
	}

	typeCounts := make(map[string]int, 3)
	for i := range payload.Questions {
		q := &payload.Questions[i]
		q.ID = i + 1
		if strings.TrimSpace(q.Question) == "" {
			return nil, fmt.Errorf("question %d is empty", q.ID)
		}
		if !validQuestionType(q.Type) {
			return nil, fmt.Errorf("question %d has invalid type %q", q.ID, q.Type)
		}
		typeCounts[q.Type]++
		if !validDifficulty(q.Difficulty) {
			q.Difficulty = models.DifficultyMedium
		}
	}

	// A usable set mixes question styles. Reject homogeneous replies so the
	// next provider in the chain gets a chance to produce a balanced one.
	if typeCounts[models.QuestionTypeTechnical] == 0 || typeCounts[models.QuestionTypeBehavioral] == 0 {
		return nil, fmt.Errorf("question set missing technical or behavioral coverage (%d technical, %d behavioral)",
			typeCounts[models.QuestionTypeTechnical], typeCounts[models.QuestionTypeBehavioral])
	}
	return payload.Questions, nil
}

func parseEvaluation(raw string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, error) {
	text, err := extractJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse evaluation response: %w", err)
	}

	var eval models.AnswerEvaluation
	if err := json.Unmarshal([]byte(text), &eval); err != nil {
		return nil, fmt.Errorf("failed to decode evaluation JSON: %w", err)
	}
	if len(eval.Questions) != len(answers) {
		return nil, fmt.Errorf("expected %d evaluations, got %d", len(answers), len(eval.Questions))
	}

	total := 0
	for i := range eval.Questions {
		entry := &eval.Questions[i]
		entry.ID = answers[i].ID
		if entry.ID == 0 {
			entry.ID = i + 1
		}
		entry.Score = clampScore(entry.Score)
		total += entry.Score
		if entry.Strengths == nil {
			entry.Strengths = []string{}
		}
		if entry.Improvements == nil {
			entry.Improvements = []string{}
		}
	}
	eval.OverallScore = roundDiv(total, len(eval.Questions))
	if eval.Tips == nil {
		eval.Tips = []string{}
	}
	return &eval, nil
}

func validQuestionType(t string) bool {
	switch t {
	case models.QuestionTypeTechnical, models.QuestionTypeBehavioral, models.QuestionTypeSituational:
		return true
	}
	return false
}

func validDifficulty(d string) bool {
	switch d {
	case models.DifficultyEasy, models.DifficultyMedium, models.DifficultyHard:
		return true
	}
	return false
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

func dropOverlap(missing, matched []string) []string {
	if len(missing) == 0 {
		return []string{}
	}
	seen := make(map[string]bool, len(matched))
	for _, m := range matched {
		seen[strings.ToLower(m)] = true
	}
	result := make([]string, 0, len(missing))
	for _, m := range missing {
		if !seen[strings.ToLower(m)] {
			result = append(result, m)
		}
	}
	return result
}

func roundDiv(total, count int) int {
	if count == 0 {
		return 0
	}
	return (total + count/2) / count
}
