package ruleengine

import (
	"errors"
	"regexp"
	"strings"

	"jobsphere-ai/pkg/models"
)

var (
	examplePattern    = regexp.MustCompile(`(?i)example|for instance|specifically|in my experience`)
	outcomePattern    = regexp.MustCompile(`(?i)result|outcome|achieved|improved|increased|decreased|reduced`)
	connectivePattern = regexp.MustCompile(`(?i)because|therefore|as a result|this led to`)
)

const idealAnswerHint = "Use the STAR method (Situation, Task, Action, Result) to structure your response with specific examples."

// EvaluateAnswers scores each answer on length, keyword relevance,
// specificity and completeness, then derives feedback from fixed thresholds.
// The result has one entry per input question, same ids, same order.
func EvaluateAnswers(jobDescription string, answers []models.QuestionAnswer) (*models.AnswerEvaluation, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is empty")
	}
	if len(answers) == 0 {
		return nil, errors.New("no answers to evaluate")
	}

	// Larger keyword universe than match analysis: up to 30 tokens
	jobKeywords := extractKeywords(strings.ToLower(jobDescription), 30)

	results := make([]models.QuestionEvaluation, 0, len(answers))
	total := 0

	for i, qa := range answers {
		entry := evaluateAnswer(qa, jobKeywords)
		if entry.ID == 0 {
			entry.ID = i + 1
		}
		total += entry.Score
		results = append(results, entry)
	}

	overall := round(float64(total) / float64(len(results)))

	return &models.AnswerEvaluation{
		OverallScore: overall,
		Questions:    results,
		Summary:      overallSummary(overall),
		Tips:         interviewTips,
	}, nil
}

func evaluateAnswer(qa models.QuestionAnswer, jobKeywords []string) models.QuestionEvaluation {
	answer := strings.TrimSpace(qa.Answer)
	answerLower := strings.ToLower(answer)
	wordCount := len(strings.Fields(answer))

	score := 0

	// Length bands: good answers are typically 50-200 words
	switch {
	case wordCount == 0:
	case wordCount < 20:
		score += 10
	case wordCount < 50:
		score += 20
	case wordCount <= 200:
		score += 30
	default:
		score += 25
	}

	matchedKeywords := 0
	for _, kw := range jobKeywords {
		if strings.Contains(answerLower, kw) {
			matchedKeywords++
		}
	}
	denom := len(jobKeywords)
	if denom < 1 {
		denom = 1
	}
	keywordScore := round(float64(matchedKeywords) / float64(denom) * 60)
	if keywordScore > 30 {
		keywordScore = 30
	}
	score += keywordScore

	hasExample := examplePattern.MatchString(answer)
	hasOutcome := outcomePattern.MatchString(answer)

	if hasExample {
		score += 10
	}
	if hasOutcome {
		score += 10
	}

	if wordCount >= 30 {
		score += 10
	}
	if connectivePattern.MatchString(answer) {
		score += 10
	}

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}

	var strengths []string
	if wordCount >= 50 {
		strengths = append(strengths, "Provided a detailed response")
	}
	if hasExample {
		strengths = append(strengths, "Included specific examples")
	}
	if hasOutcome {
		strengths = append(strengths, "Mentioned measurable outcomes")
	}
	if matchedKeywords >= 3 {
		strengths = append(strengths, "Used relevant terminology")
	}

	var improvements []string
	if wordCount < 30 {
		improvements = append(improvements, "Provide a more detailed response with specific examples")
	}
	if !hasExample {
		improvements = append(improvements, "Include concrete examples from your experience")
	}
	if !hasOutcome {
		improvements = append(improvements, "Quantify your impact with measurable results")
	}
	if matchedKeywords < 2 {
		improvements = append(improvements, "Use more industry-relevant terminology")
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Attempted to answer the question")
	}
	if len(improvements) == 0 {
		improvements = append(improvements, "Continue practicing to build confidence")
	}

	return models.QuestionEvaluation{
		ID:           qa.ID,
		Score:        score,
		Feedback:     answerFeedback(score, wordCount),
		IdealAnswer:  idealAnswerHint,
		Strengths:    strengths,
		Improvements: improvements,
	}
}

func answerFeedback(score, wordCount int) string {
	switch {
	case score >= 80:
		return "Excellent response! Well-structured with relevant details."
	case score >= 60:
		return "Good answer with room for improvement. Add more specifics."
	case score >= 40:
		return "Adequate response. Consider adding examples and quantifiable results."
	case wordCount == 0:
		return "No answer provided. Practice articulating your thoughts on this topic."
	default:
		return "Needs significant improvement. Focus on providing detailed, relevant examples."
	}
}

func overallSummary(score int) string {
	switch {
	case score >= 80:
		return "Strong performance overall. You demonstrated good knowledge and communication skills. Focus on maintaining consistency across all answers."
	case score >= 60:
		return "Decent performance with some strong answers. Work on providing more specific examples and quantifying your achievements to strengthen weaker areas."
	case score >= 40:
		return "Average performance. Focus on preparing structured responses using the STAR method and practicing with common interview questions."
	default:
		return "There is significant room for improvement. Practice answering interview questions aloud, prepare specific examples from your experience, and research the company and role thoroughly."
	}
}
