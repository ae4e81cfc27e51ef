package ruleengine

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"jobsphere-ai/pkg/models"
)

var (
	wordPattern       = regexp.MustCompile(`\b[a-z]{4,}\b`)
	experiencePattern = regexp.MustCompile(`(?i)(\d+)\s*\+?\s*years?`)
	educationPattern  = regexp.MustCompile(`(?i)bachelor|master|phd|degree|university|college`)
	metricsPattern    = regexp.MustCompile(`(?i)quantif|metric|percent|increase|decrease|improve`)
	projectPattern    = regexp.MustCompile(`(?i)project|developed|built|created|designed`)
)

// AnalyzeResume matches resume text against a job description with keyword
// and vocabulary heuristics. It is deterministic and does no I/O.
func AnalyzeResume(resumeText, jobDescription string) (*models.ResumeAnalysis, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, errors.New("resume text is empty")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is empty")
	}

	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobDescription)

	resumeSkills := extractSkills(resumeLower)
	jobSkills := extractSkills(jobLower)

	matchedSkills := intersect(resumeSkills, jobSkills)
	missingSkills := subtract(jobSkills, resumeSkills)

	skillsPct := ratioPercent(len(matchedSkills), len(jobSkills))

	// Keyword universe: first 20 distinct words of length >= 4 from the job text
	jobKeywords := extractKeywords(jobLower, 20)

	var matchedKeywords, missingKeywords []string
	for _, kw := range jobKeywords {
		if strings.Contains(resumeLower, kw) {
			matchedKeywords = append(matchedKeywords, kw)
		} else {
			missingKeywords = append(missingKeywords, kw)
		}
	}
	if len(missingKeywords) > 10 {
		missingKeywords = missingKeywords[:10]
	}

	keywordPct := ratioPercent(len(matchedKeywords), len(jobKeywords))

	hasExperience := experiencePattern.MatchString(resumeText)
	experienceScore := 50
	if hasExperience {
		experienceScore = 75
	}

	hasEducation := educationPattern.MatchString(resumeText)
	educationScore := 40
	if hasEducation {
		educationScore = 80
	}

	overallMatch := round(0.4*float64(skillsPct) + 0.3*float64(keywordPct) + 0.2*float64(experienceScore) + 0.1*float64(educationScore))
	atsScore := round(0.5*float64(skillsPct) + 0.5*float64(keywordPct))

	var strengths []string
	if len(matchedSkills) >= 3 {
		strengths = append(strengths, fmt.Sprintf("Strong technical skills in %s", strings.Join(matchedSkills[:3], ", ")))
	}
	if hasEducation {
		strengths = append(strengths, "Solid educational background")
	}
	if hasExperience {
		strengths = append(strengths, "Relevant professional experience")
	}
	if len(strengths) == 0 {
		strengths = append(strengths, "Demonstrates interest in the field", "Shows potential for growth")
	}

	var improvements []models.Improvement
	if len(missingSkills) > 0 {
		improvements = append(improvements, models.Improvement{
			Area:       "Skills",
			Suggestion: fmt.Sprintf("Consider adding experience with: %s", strings.Join(firstN(missingSkills, 3), ", ")),
			Priority:   "high",
		})
	}
	if !metricsPattern.MatchString(resumeText) {
		improvements = append(improvements, models.Improvement{
			Area:       "Experience",
			Suggestion: "Add quantifiable achievements and metrics to demonstrate impact",
			Priority:   "high",
		})
	}
	if !projectPattern.MatchString(resumeText) {
		improvements = append(improvements, models.Improvement{
			Area:       "Projects",
			Suggestion: "Include specific projects that demonstrate your skills",
			Priority:   "medium",
		})
	}

	experienceFeedback := "Consider highlighting more specific work experience with dates and durations."
	if hasExperience {
		experienceFeedback = "Your experience aligns with the job requirements."
	}

	educationFeedback := "Consider adding your educational qualifications if applicable."
	if hasEducation {
		educationFeedback = "Your educational background is well-documented."
	}

	return &models.ResumeAnalysis{
		OverallMatch: overallMatch,
		SkillsMatch: models.SkillsMatch{
			Matched:         matchedSkills,
			Missing:         missingSkills,
			MatchPercentage: skillsPct,
		},
		ExperienceMatch: models.ScoredFeedback{
			Score:    experienceScore,
			Feedback: experienceFeedback,
		},
		KeywordAnalysis: models.KeywordAnalysis{
			Matched:         firstN(matchedKeywords, 10),
			Missing:         missingKeywords,
			MatchPercentage: keywordPct,
		},
		EducationMatch: models.ScoredFeedback{
			Score:    educationScore,
			Feedback: educationFeedback,
		},
		Strengths:    strengths,
		Improvements: improvements,
		ATSScore:     atsScore,
		Summary:      buildSummary(overallMatch, matchedSkills, missingSkills),
	}, nil
}

func buildSummary(overallMatch int, matchedSkills, missingSkills []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Your resume shows a %d%% match with this job. ", overallMatch)

	if len(matchedSkills) > 0 {
		fmt.Fprintf(&b, "Strong alignment in %s.", strings.Join(firstN(matchedSkills, 2), " and "))
	} else {
		b.WriteString("Focus on highlighting relevant skills.")
	}

	if len(missingSkills) > 0 {
		fmt.Fprintf(&b, " Consider developing skills in %s.", strings.Join(firstN(missingSkills, 2), " and "))
	}

	return b.String()
}

// extractSkills scans text for every vocabulary skill it contains
func extractSkills(lowerText string) []string {
	var found []string
	for _, skill := range commonSkills {
		if strings.Contains(lowerText, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// extractKeywords returns up to max distinct lowercase words of length >= 4,
// in first-occurrence order
func extractKeywords(lowerText string, max int) []string {
	seen := make(map[string]bool)
	var keywords []string
	for _, word := range wordPattern.FindAllString(lowerText, -1) {
		if seen[word] {
			continue
		}
		seen[word] = true
		keywords = append(keywords, word)
		if len(keywords) >= max {
			break
		}
	}
	return keywords
}

// ratioPercent computes round(100*matched/total), defaulting to 50 when the
// universe is empty
func ratioPercent(matched, total int) int {
	if total == 0 {
		return 50
	}
	return round(100 * float64(matched) / float64(total))
}

func intersect(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if inB[s] {
			out = append(out, s)
		}
	}
	return out
}

func subtract(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, s := range b {
		inB[s] = true
	}
	var out []string
	for _, s := range a {
		if !inB[s] {
			out = append(out, s)
		}
	}
	return out
}

func firstN(s []string, n int) []string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}

func round(f float64) int {
	return int(math.Round(f))
}
