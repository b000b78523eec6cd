package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
)

func TestCategory(t *testing.T) {
	tests := []struct {
		name  string
		parts []string
		want  string
	}{
		{"backend tag", []string{"backend", "api"}, domain.CategoryDevelopment},
		{"frontend title", []string{"Frontend Wizard"}, domain.CategoryDevelopment},
		{"engineer title", []string{"Platform Engineer"}, domain.CategoryDevelopment},
		{"data scientist", []string{"Data Scientist"}, domain.CategoryData},
		{"designer", []string{"Product Designer"}, domain.CategoryDesign},
		{"marketing", []string{"growth", "seo"}, domain.CategoryMarketing},
		{"product manager", []string{"Product Manager"}, domain.CategoryProduct},
		{"sales", []string{"Account Executive"}, domain.CategorySales},
		{"support", []string{"Customer Success Specialist"}, domain.CategorySupport},
		{"hr", []string{"Technical Recruiter"}, domain.CategoryHR},
		{"finance", []string{"Payroll Specialist"}, domain.CategoryFinance},
		{"devops without dev words", []string{"Kubernetes Administrator"}, domain.CategoryDevOps},
		{"qa without dev words", []string{"Manual Tester"}, domain.CategoryQA},
		{"security without dev words", []string{"InfoSec Consultant"}, domain.CategorySecurity},
		{"no match defaults to development", []string{"Office Wrangler"}, domain.CategoryDevelopment},
		{"empty input defaults", nil, domain.CategoryDevelopment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Category(tt.parts...))
		})
	}
}

// Group order is behavior: earlier groups win even when a later group also
// matches. "SRE Developer" carries devops and development indicators, and
// development is tested first.
func TestCategoryPriorityOrder(t *testing.T) {
	assert.Equal(t, domain.CategoryDevelopment, Category("SRE Developer"))
	assert.Equal(t, domain.CategoryData, Category("data", "design"))
}

func TestCategoryAlwaysClosedSet(t *testing.T) {
	inputs := []string{"", "züglich", "!!!", "remote ok", "Senior Something"}
	for _, in := range inputs {
		got := Category(in)
		assert.Contains(t, domain.Categories, got, "input %q", in)
	}
}

func TestExperienceLevel(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Senior Backend Engineer", domain.LevelSenior},
		{"Sr. Software Engineer", domain.LevelSenior},
		{"Staff Engineer", domain.LevelLead},
		{"Chief Architect", domain.LevelLead},
		{"Tech Lead", domain.LevelLead},
		{"Principal Engineer", domain.LevelLead},
		{"Junior Developer", domain.LevelEntry},
		{"Engineering Intern", domain.LevelEntry},
		{"Graduate Analyst", domain.LevelEntry},
		{"Backend Engineer", domain.LevelMid},
		{"", domain.LevelMid},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			assert.Equal(t, tt.want, ExperienceLevel(tt.title))
		})
	}
}

// Senior is tested before Lead; a title with both resolves to Senior.
func TestExperienceLevelTieBreak(t *testing.T) {
	assert.Equal(t, domain.LevelSenior, ExperienceLevel("Senior Staff Engineer"))
	assert.Equal(t, domain.LevelSenior, ExperienceLevel("Senior Tech Lead"))
}

func TestRequirementsFallback(t *testing.T) {
	got := Requirements("")
	require.Len(t, got, 3)
	assert.Equal(t, fallbackRequirements, got)

	// short fragments only
	got = Requirements("Go. Fast. Now!")
	assert.Equal(t, fallbackRequirements, got)
}

func TestRequirementsExtraction(t *testing.T) {
	got := Requirements("A. B. Valid sentence here.")
	require.Len(t, got, 1)
	assert.Equal(t, "Valid sentence here", got[0])

	desc := "You will build APIs in Go. Experience with Postgres required! " +
		"Comfort with remote work expected? Bonus: Kubernetes knowledge. And more."
	got = Requirements(desc)
	require.Len(t, got, 3)
	assert.Equal(t, "You will build APIs in Go", got[0])
	assert.Equal(t, "Experience with Postgres required", got[1])
	assert.Equal(t, "Comfort with remote work expected", got[2])
}

func TestRequirementsNeverEmpty(t *testing.T) {
	for _, desc := range []string{"", ".", "?!", strings.Repeat(".", 40)} {
		assert.NotEmpty(t, Requirements(desc))
	}
}
