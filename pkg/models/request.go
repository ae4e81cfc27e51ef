package models

// AnalyzeResumeRequest is the request payload for resume-to-job match analysis
type AnalyzeResumeRequest struct {
	ResumeText     string `json:"resumeText" validate:"required,max=20000"`
	JobDescription string `json:"jobDescription" validate:"required,min=50,max=10000"`
}

// CoverLetterRequest is the request payload for cover letter generation
type CoverLetterRequest struct {
	ResumeText     string           `json:"resumeText" validate:"required,max=20000"`
	JobDescription string           `json:"jobDescription" validate:"required,min=50,max=10000"`
	CompanyName    string           `json:"companyName" validate:"required,min=2,max=100"`
	Candidate      CandidateDetails `json:"candidate"`
}

// GenerateQuestionsRequest is the request payload for interview question generation
type GenerateQuestionsRequest struct {
	JobDescription string `json:"jobDescription" validate:"required,min=50,max=10000"`
}

// EvaluateAnswersRequest is the request payload for practice answer evaluation
type EvaluateAnswersRequest struct {
	JobDescription      string           `json:"jobDescription" validate:"required,min=50,max=10000"`
	QuestionsAndAnswers []QuestionAnswer `json:"questionsAndAnswers" validate:"required,min=1"`
}
