package models

// CandidateDetails carries the contact information used to personalize a cover letter
type CandidateDetails struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// CoverLetter is a generated cover letter body with size metadata
type CoverLetter struct {
	Body      string `json:"coverLetter"`
	WordCount int    `json:"wordCount"`
	CharCount int    `json:"charCount"`
	Truncated bool   `json:"truncated,omitempty"`
}
