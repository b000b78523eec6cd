package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/upstream"
)

func record(mutate func(*upstream.Record)) upstream.Record {
	rec := upstream.Record{
		Slug:        "acme-backend-engineer",
		Position:    "Senior Backend Engineer",
		Company:     "Acme",
		Location:    "Worldwide",
		Tags:        []string{"golang", "backend"},
		Description: "Build APIs in Go. Own services in production. Work with a remote team.",
		SalaryMin:   90000,
		SalaryMax:   120000,
		Epoch:       1767225600,
	}
	if mutate != nil {
		mutate(&rec)
	}
	return rec
}

func TestFromUpstream(t *testing.T) {
	j := FromUpstream(record(nil))

	assert.Equal(t, "acme-backend-engineer", j.ID, "slug backs a missing id")
	assert.Equal(t, "Senior Backend Engineer", j.Title)
	assert.Equal(t, "Acme", j.Company)
	assert.Equal(t, "Worldwide", j.Location)
	assert.Equal(t, domain.CategoryDevelopment, j.Category)
	assert.Equal(t, domain.LevelSenior, j.ExperienceLevel)
	assert.Equal(t, domain.TypeFullTime, j.Type)
	require.NotNil(t, j.Salary)
	assert.Equal(t, 90000, j.Salary.Min)
	assert.Equal(t, 120000, j.Salary.Max)
	assert.Equal(t, time.Unix(1767225600, 0).UTC(), j.PostedDate)
	assert.True(t, j.Remote)
	assert.NotEmpty(t, j.Requirements)
	assert.Empty(t, j.Responsibilities)
	assert.NotNil(t, j.Responsibilities)
}

func TestFromUpstreamSalaryRequiresBothBounds(t *testing.T) {
	j := FromUpstream(record(func(r *upstream.Record) { r.SalaryMax = 0 }))
	assert.Nil(t, j.Salary)

	j = FromUpstream(record(func(r *upstream.Record) { r.SalaryMin = 0 }))
	assert.Nil(t, j.Salary)

	j = FromUpstream(record(func(r *upstream.Record) {
		r.SalaryMin = 0
		r.SalaryMax = 0
	}))
	assert.Nil(t, j.Salary)
}

func TestFromUpstreamDefaults(t *testing.T) {
	j := FromUpstream(record(func(r *upstream.Record) {
		r.Location = ""
		r.Description = ""
		r.Epoch = 0
	}))

	assert.Equal(t, "Remote", j.Location)
	assert.Equal(t, defaultDescription, j.Description)
	assert.WithinDuration(t, time.Now().UTC(), j.PostedDate, 5*time.Second)
	assert.Len(t, j.Requirements, 3, "placeholder description falls back to the generic triple")
}

func TestFromUpstreamSyntheticID(t *testing.T) {
	j := FromUpstream(record(func(r *upstream.Record) { r.Slug = "" }))
	assert.Regexp(t, `^job-\d+$`, j.ID)
}

func TestFromUpstreamStripsHTML(t *testing.T) {
	j := FromUpstream(record(func(r *upstream.Record) {
		r.Description = "<p>Build <b>APIs</b> in Go.</p><p>Ship often. Review carefully always.</p>"
	}))
	assert.NotContains(t, j.Description, "<")
	assert.Contains(t, j.Description, "Build APIs in Go")
}

func TestFromUpstreamClosedSets(t *testing.T) {
	weird := FromUpstream(record(func(r *upstream.Record) {
		r.Position = "Chief Vibes Officer ~~ ??"
		r.Tags = []string{"???", "unicorn"}
	}))
	assert.Contains(t, domain.Categories, weird.Category)
	assert.Contains(t, []string{
		domain.LevelEntry, domain.LevelMid, domain.LevelSenior, domain.LevelLead,
	}, weird.ExperienceLevel)
}
