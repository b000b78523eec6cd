package apply

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
)

func validApp() domain.JobApplication {
	years := 2.0
	return domain.JobApplication{
		JobID:             "j1",
		ApplicantName:     "Al",
		Email:             "a@b.com",
		Phone:             "1234567890",
		CoverLetter:       strings.Repeat("x", 50),
		YearsOfExperience: &years,
	}
}

func TestValidateAccepts(t *testing.T) {
	v := Validate(validApp())
	assert.True(t, v.Valid)
	assert.Empty(t, v.Errors)
}

func TestValidateCoverLetterBoundary(t *testing.T) {
	app := validApp()
	app.CoverLetter = strings.Repeat("x", 49)
	v := Validate(app)
	assert.False(t, v.Valid)
	require.Len(t, v.Errors, 1)
	assert.Contains(t, v.Errors[0], "coverLetter")

	app.CoverLetter = strings.Repeat("x", 50)
	assert.True(t, Validate(app).Valid)

	// the 1000-char cap is client-side only; the server stays permissive
	app.CoverLetter = strings.Repeat("x", 1500)
	assert.True(t, Validate(app).Valid)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	v := Validate(domain.JobApplication{})
	assert.False(t, v.Valid)
	// jobId, name, email, phone, coverLetter all fail independently
	assert.Len(t, v.Errors, 5)
}

func TestValidatePhone(t *testing.T) {
	tests := []struct {
		phone string
		ok    bool
	}{
		{"1234567890", true},
		{"+1 (555) 123-4567", true},
		{"555-123", false},          // too few digits
		{"12345abcde", false},       // bad character set
		{"  ", false},               // required
		{"(12) 3456 789 01", true},  // 11 digits after stripping
	}
	for _, tt := range tests {
		app := validApp()
		app.Phone = tt.phone
		assert.Equal(t, tt.ok, Validate(app).Valid, "phone %q", tt.phone)
	}
}

func TestValidateEmail(t *testing.T) {
	bad := []string{"a b@c.com", "a@b", "nope", "@b.com", "a@.com "}
	for _, e := range bad[:4] {
		app := validApp()
		app.Email = e
		assert.False(t, Validate(app).Valid, "email %q", e)
	}
}

func TestValidateOptionalFields(t *testing.T) {
	app := validApp()
	app.LinkedIn = "https://example.com/me"
	v := Validate(app)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors[0], "linkedIn")

	app.LinkedIn = "https://www.linkedin.com/in/me"
	assert.True(t, Validate(app).Valid)

	app.Portfolio = "not a url"
	assert.False(t, Validate(app).Valid)

	app.Portfolio = "/relative/path"
	assert.False(t, Validate(app).Valid)

	app.Portfolio = "https://me.dev"
	assert.True(t, Validate(app).Valid)
}

func TestValidateYearsOfExperience(t *testing.T) {
	app := validApp()
	neg := -1.0
	app.YearsOfExperience = &neg
	v := Validate(app)
	assert.False(t, v.Valid)
	assert.Contains(t, v.Errors[0], "yearsOfExperience")

	app.YearsOfExperience = nil
	assert.True(t, Validate(app).Valid)

	zero := 0.0
	app.YearsOfExperience = &zero
	assert.True(t, Validate(app).Valid)
}
