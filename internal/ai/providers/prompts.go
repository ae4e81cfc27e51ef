package providers

import (
	"fmt"
	"strings"

	"jobsphere-ai/pkg/models"
	"jobsphere-ai/pkg/utils"
)

// Input bounds applied before prompting. The capability contract promises a
// well-shaped response regardless of input size, so adapters truncate here.
const (
	maxResumeChars     = 8000
	maxJobChars        = 8000
	maxEvaluationChars = 6000
)

// matchAnalysisPrompt asks for the exact ResumeAnalysis JSON shape
func matchAnalysisPrompt(resumeText, jobDescription string) string {
	return fmt.Sprintf(`You are an expert ATS (Applicant Tracking System) and HR recruiter. Analyze the following resume against the job description and provide detailed, actionable feedback.

JOB DESCRIPTION:
%s

RESUME:
%s

Provide your analysis in the following JSON format (ONLY JSON, no other text):
{
  "overallMatch": <number 0-100>,
  "skillsMatch": {
    "matched": ["skill1", "skill2"],
    "missing": ["skill3", "skill4"],
    "matchPercentage": <number 0-100>
  },
  "experienceMatch": {
    "score": <number 0-100>,
    "feedback": "detailed feedback about experience relevance"
  },
  "keywordAnalysis": {
    "matched": ["keyword1", "keyword2"],
    "missing": ["keyword3", "keyword4"],
    "matchPercentage": <number 0-100>
  },
  "educationMatch": {
    "score": <number 0-100>,
    "feedback": "feedback about education alignment"
  },
  "strengths": [
    "strength 1",
    "strength 2",
    "strength 3"
  ],
  "improvements": [
    {
      "area": "Skills",
      "suggestion": "Add experience with X technology mentioned in job description",
      "priority": "high"
    }
  ],
  "atsScore": <number 0-100>,
  "summary": "2-3 sentence summary of the match"
}

Be specific and actionable in your suggestions. Ensure strengths are positive and real, improvements are constructive.`,
		utils.TruncateText(jobDescription, maxJobChars),
		utils.TruncateText(resumeText, maxResumeChars))
}

// coverLetterPrompt asks for the cover letter body as plain text
func coverLetterPrompt(resumeText, jobDescription, companyName string, candidate models.CandidateDetails) string {
	return fmt.Sprintf(`You are a professional career coach and expert cover letter writer. Generate a compelling, professional cover letter based on the following information.

COMPANY NAME: %s

CANDIDATE INFORMATION:
Name: %s
Email: %s

JOB DESCRIPTION:
%s

CANDIDATE'S RESUME:
%s

INSTRUCTIONS:
1. Write a professional cover letter (300-400 words maximum)
2. Address it to "Hiring Manager" at %s
3. Highlight 3-4 most relevant qualifications from the resume that match the job requirements
4. Extract the job title from the description and reference it specifically in the opening paragraph
5. Show genuine enthusiasm for the role and company
6. Use confident, professional tone (not overly casual or generic)
7. End with a clear call to action
8. Format with clear paragraph breaks using double newlines
9. Do NOT include placeholder text like [Your Name], [Date], or address fields

Return ONLY the cover letter body text, no additional commentary, explanations, or metadata.`,
		companyName,
		utils.GetStringOrDefault(candidate.Name, "Candidate"),
		candidate.Email,
		utils.TruncateText(jobDescription, maxJobChars),
		utils.TruncateText(resumeText, maxResumeChars),
		companyName)
}

// questionsPrompt asks for exactly five questions in the fixed slot layout
func questionsPrompt(jobDescription string) string {
	return fmt.Sprintf(`You are an expert interviewer and hiring manager. Based on the following job description, generate exactly 5 interview questions that would help evaluate a candidate's fit for this role.

JOB DESCRIPTION:
%s

Generate a mix of technical, behavioral, and situational questions. Return ONLY valid JSON in this format (no other text):
{
  "questions": [
    { "id": 1, "question": "Your question here?", "type": "technical", "difficulty": "medium" },
    { "id": 2, "question": "Your question here?", "type": "behavioral", "difficulty": "easy" },
    { "id": 3, "question": "Your question here?", "type": "situational", "difficulty": "medium" },
    { "id": 4, "question": "Your question here?", "type": "technical", "difficulty": "hard" },
    { "id": 5, "question": "Your question here?", "type": "behavioral", "difficulty": "medium" }
  ]
}

Types must be one of: technical, behavioral, situational
Difficulty must be one of: easy, medium, hard
Make questions specific to the job description provided.`,
		utils.TruncateText(jobDescription, maxJobChars))
}

// evaluationPrompt asks for the AnswerEvaluation JSON shape
func evaluationPrompt(jobDescription string, answers []models.QuestionAnswer) string {
	var qa strings.Builder
	for i, a := range answers {
		if i > 0 {
			qa.WriteString("\n\n")
		}
		answer := a.Answer
		if strings.TrimSpace(answer) == "" {
			answer = "(No answer provided)"
		}
		fmt.Fprintf(&qa, "Question %d (%s): %s\nCandidate's Answer: %s", i+1, a.Type, a.Question, answer)
	}

	return fmt.Sprintf(`You are an expert interviewer evaluating a candidate's interview responses for a job position.

JOB DESCRIPTION:
%s

INTERVIEW QUESTIONS AND ANSWERS:
%s

Evaluate each answer and provide a detailed assessment. Return ONLY valid JSON in this format (no other text):
{
  "overallScore": <number 0-100>,
  "questions": [
    {
      "id": 1,
      "score": <number 0-100>,
      "feedback": "Specific feedback on this answer",
      "idealAnswer": "Brief ideal answer hint",
      "strengths": ["strength1"],
      "improvements": ["improvement1"]
    }
  ],
  "summary": "2-3 sentence overall assessment",
  "tips": ["tip1", "tip2", "tip3"]
}

Provide exactly one entry per question, in the same order as presented. Be constructive and specific. Score based on relevance, depth, clarity, and alignment with the job requirements.`,
		utils.TruncateText(jobDescription, maxEvaluationChars),
		qa.String())
}
