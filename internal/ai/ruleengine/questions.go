package ruleengine

import (
	"errors"
	"math/rand"
	"regexp"
	"strings"

	"jobsphere-ai/pkg/models"
)

var (
	webDomainPattern    = regexp.MustCompile(`(?i)react|angular|vue|frontend|front-end|html|css|javascript|web dev`)
	dataDomainPattern   = regexp.MustCompile(`(?i)data|analytics|machine learning|python|sql|database`)
	cloudDomainPattern  = regexp.MustCompile(`(?i)aws|cloud|devops|docker|kubernetes|azure`)
	mobileDomainPattern = regexp.MustCompile(`(?i)mobile|android|ios|react native|flutter|swift`)
)

// GenerateQuestions selects five interview questions for a job description:
// two technical from the job's domain bank, two behavioral, one situational.
// Selection within a bank is random without replacement; the slot layout
// (ids, types, difficulties) is assembled deterministically afterwards.
func GenerateQuestions(jobDescription string) ([]models.InterviewQuestion, error) {
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is empty")
	}

	techPool := technicalQuestions[classifyDomain(jobDescription)]

	tech := sample(techPool, 2)
	behavioral := sample(behavioralQuestions, 2)
	situational := sample(situationalQuestions, 1)

	return []models.InterviewQuestion{
		{ID: 1, Question: tech[0], Type: models.QuestionTypeTechnical, Difficulty: models.DifficultyMedium},
		{ID: 2, Question: behavioral[0], Type: models.QuestionTypeBehavioral, Difficulty: models.DifficultyEasy},
		{ID: 3, Question: situational[0], Type: models.QuestionTypeSituational, Difficulty: models.DifficultyMedium},
		{ID: 4, Question: tech[1], Type: models.QuestionTypeTechnical, Difficulty: models.DifficultyHard},
		{ID: 5, Question: behavioral[1], Type: models.QuestionTypeBehavioral, Difficulty: models.DifficultyMedium},
	}, nil
}

// classifyDomain sniffs the job text for domain keywords, defaulting to general
func classifyDomain(jobDescription string) string {
	switch {
	case webDomainPattern.MatchString(jobDescription):
		return "web development"
	case dataDomainPattern.MatchString(jobDescription):
		return "data"
	case cloudDomainPattern.MatchString(jobDescription):
		return "cloud"
	case mobileDomainPattern.MatchString(jobDescription):
		return "mobile"
	default:
		return "general"
	}
}

// sample picks n distinct entries from pool in random order
func sample(pool []string, n int) []string {
	picked := make([]string, len(pool))
	copy(picked, pool)
	rand.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if n > len(picked) {
		n = len(picked)
	}
	return picked[:n]
}
