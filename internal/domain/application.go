package domain

import "time"

// JobApplication is an inbound submission, before validation.
type JobApplication struct {
	JobID             string   `json:"jobId"`
	ApplicantName     string   `json:"applicantName"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	CoverLetter       string   `json:"coverLetter"`
	LinkedIn          string   `json:"linkedIn,omitempty"`
	Portfolio         string   `json:"portfolio,omitempty"`
	YearsOfExperience *float64 `json:"yearsOfExperience,omitempty"`
}

// ApplicationRecord is an accepted submission. ID and SubmittedAt are
// assigned by the store; records are immutable once appended.
type ApplicationRecord struct {
	JobApplication
	ID          string    `json:"id"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// ApplicationSummary is the trimmed view returned by the admin query route.
type ApplicationSummary struct {
	ID            string    `json:"id"`
	ApplicantName string    `json:"applicantName"`
	Email         string    `json:"email"`
	SubmittedAt   time.Time `json:"submittedAt"`
}
