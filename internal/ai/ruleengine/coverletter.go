package ruleengine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"jobsphere-ai/pkg/models"
	"jobsphere-ai/pkg/utils"
)

var (
	leadershipPattern = regexp.MustCompile(`(?i)lead|manage|team|mentor`)
	deliveryPattern   = regexp.MustCompile(`(?i)project|deliver|ship|deploy|launch`)
	titleLinePattern  = regexp.MustCompile(`(?i)(?:position|role|title|hiring|looking for)[:\s]+([^\n,.]+)`)
	shortLinePattern  = regexp.MustCompile(`(?m)^([^\n]{5,60})$`)
)

// GenerateCoverLetter assembles a four-paragraph cover letter from signals
// detected in the resume and job description. The template stays well-formed
// even when no signals are found.
func GenerateCoverLetter(resumeText, jobDescription, companyName string, candidate models.CandidateDetails) (*models.CoverLetter, error) {
	if strings.TrimSpace(resumeText) == "" {
		return nil, errors.New("resume text is empty")
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, errors.New("job description is empty")
	}

	resumeLower := strings.ToLower(resumeText)
	jobLower := strings.ToLower(jobDescription)

	recipient := utils.GetStringOrDefault(strings.TrimSpace(companyName), "Hiring Manager")
	candidateName := candidateSignature(candidate)

	// Skill categories shared by resume and job text
	var matchedCategories []string
	var matchedSkills []string
	for _, cat := range skillCategories {
		var found []string
		for _, kw := range cat.Keywords {
			if strings.Contains(resumeLower, kw) && strings.Contains(jobLower, kw) {
				found = append(found, kw)
			}
		}
		if len(found) > 0 {
			matchedCategories = append(matchedCategories, cat.Name)
			matchedSkills = append(matchedSkills, found...)
		}
	}

	experienceText := ""
	if m := experiencePattern.FindStringSubmatch(resumeText); m != nil {
		experienceText = m[1] + "+ years of"
	}

	jobTitle := extractJobTitle(jobDescription)

	skillsText := "various technical domains"
	if len(matchedSkills) > 0 {
		skillsText = strings.Join(firstN(matchedSkills, 5), ", ")
	} else if len(matchedCategories) > 0 {
		skillsText = strings.Join(firstN(matchedCategories, 3), ", ")
	}

	categoryText := "software development"
	if len(matchedCategories) > 0 {
		categoryText = strings.Join(firstN(matchedCategories, 2), " and ")
	}

	opening := "I am writing to express my strong interest in this position. After carefully reviewing the job description, I am confident that my background and skills align well with your requirements."
	if jobTitle != "" {
		opening = fmt.Sprintf("I am writing to express my strong interest in the %s position. After carefully reviewing the job description, I am confident that my background and skills make me an excellent fit for this role.", jobTitle)
	}

	experienceParagraph := fmt.Sprintf("Through my professional experience and projects in %s, I have built a solid foundation in %s. My background has equipped me with the technical expertise and problem-solving abilities needed to excel in this role and make meaningful contributions from day one.", categoryText, skillsText)
	if experienceText != "" {
		experienceParagraph = fmt.Sprintf("With %s professional experience in %s, I have developed strong expertise in %s. My hands-on experience has equipped me with the technical proficiency and problem-solving abilities needed to deliver impactful results and contribute meaningfully to your team.", experienceText, categoryText, skillsText)
	}

	var valueParts []string
	if len(matchedSkills) >= 3 {
		valueParts = append(valueParts, fmt.Sprintf("My proficiency in %s directly aligns with the technical requirements outlined in the job description.", strings.Join(matchedSkills[:3], ", ")))
	}
	if leadershipPattern.MatchString(resumeText) {
		valueParts = append(valueParts, "Beyond my technical abilities, I bring leadership experience and the ability to collaborate effectively within cross-functional teams.")
	}
	if deliveryPattern.MatchString(resumeText) {
		valueParts = append(valueParts, "I have a proven track record of delivering projects from concept to completion, ensuring quality and meeting deadlines.")
	}

	valueText := "I am a dedicated professional who takes pride in writing clean, maintainable code and continuously learning new technologies to stay current in the ever-evolving tech landscape."
	if len(valueParts) > 0 {
		valueText = strings.Join(valueParts, " ")
	}

	body := fmt.Sprintf(`Dear %s,

%s

%s

%s I am particularly excited about this opportunity because it aligns with my career goals and would allow me to leverage my existing skills while continuing to grow professionally.

Thank you for considering my application. I look forward to the opportunity to discuss how my skills and experience can contribute to your team's success.

Sincerely,
%s`, recipient, opening, experienceParagraph, valueText, candidateName)

	return &models.CoverLetter{
		Body:      body,
		WordCount: utils.WordCount(body),
		CharCount: len(body),
	}, nil
}

// candidateSignature derives the signature name from contact details, falling
// back to the email local part
func candidateSignature(candidate models.CandidateDetails) string {
	if name := strings.TrimSpace(candidate.Name); name != "" {
		return name
	}
	if at := strings.Index(candidate.Email, "@"); at > 0 {
		return candidate.Email[:at]
	}
	return "Your Name"
}

// extractJobTitle tries a labelled line first, then the first short line
func extractJobTitle(jobDescription string) string {
	if m := titleLinePattern.FindStringSubmatch(jobDescription); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := shortLinePattern.FindStringSubmatch(jobDescription); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
