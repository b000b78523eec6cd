// Package apply validates and stores inbound job applications.
package apply

import (
	"net/url"
	"regexp"
	"strings"

	"jobboard-engine/internal/domain"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^[\d\s\-+()]+$`)
	nonDigitRe = regexp.MustCompile(`\D`)
)

// Validation is the outcome of checking one submission. Errors holds one
// human-readable entry per failed rule.
type Validation struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Validate runs every rule and collects every violation; rules never
// short-circuit each other. The cover letter has a minimum only: the
// client enforces a 1000-character cap that the server deliberately does
// not mirror.
func Validate(app domain.JobApplication) Validation {
	var errs []string

	if strings.TrimSpace(app.JobID) == "" {
		errs = append(errs, "jobId is required")
	}

	if len(strings.TrimSpace(app.ApplicantName)) < 2 {
		errs = append(errs, "applicantName must be at least 2 characters")
	}

	email := strings.TrimSpace(app.Email)
	switch {
	case email == "":
		errs = append(errs, "email is required")
	case !emailRe.MatchString(email):
		errs = append(errs, "email format is invalid")
	}

	phone := strings.TrimSpace(app.Phone)
	switch {
	case phone == "":
		errs = append(errs, "phone is required")
	case !phoneRe.MatchString(phone):
		errs = append(errs, "phone may only contain digits, spaces, and -+()")
	case len(nonDigitRe.ReplaceAllString(phone, "")) < 10:
		errs = append(errs, "phone must contain at least 10 digits")
	}

	if len(strings.TrimSpace(app.CoverLetter)) < 50 {
		errs = append(errs, "coverLetter must be at least 50 characters")
	}

	if app.YearsOfExperience != nil && *app.YearsOfExperience < 0 {
		errs = append(errs, "yearsOfExperience must be a non-negative number")
	}

	if li := strings.TrimSpace(app.LinkedIn); li != "" && !strings.Contains(li, "linkedin.com") {
		errs = append(errs, "linkedIn must be a linkedin.com URL")
	}

	if p := strings.TrimSpace(app.Portfolio); p != "" {
		u, err := url.Parse(p)
		if err != nil || !u.IsAbs() || u.Host == "" {
			errs = append(errs, "portfolio must be a valid URL")
		}
	}

	return Validation{Valid: len(errs) == 0, Errors: errs}
}
