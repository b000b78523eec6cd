package jobs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobboard-engine/internal/domain"
)

func sampleJobs() []domain.Job {
	return []domain.Job{
		{ID: "1", Title: "Senior Backend Engineer", Company: "Acme", Category: domain.CategoryDevelopment, ExperienceLevel: domain.LevelSenior, Type: domain.TypeFullTime, Description: "Go services", Remote: true},
		{ID: "2", Title: "Data Analyst", Company: "Brightside", Category: domain.CategoryData, ExperienceLevel: domain.LevelMid, Type: domain.TypeFullTime, Description: "SQL and dashboards", Remote: true},
		{ID: "3", Title: "Product Designer", Company: "Canopy", Category: domain.CategoryDesign, ExperienceLevel: domain.LevelEntry, Type: domain.TypeContract, Description: "Figma work", Remote: false},
	}
}

func TestFilterNoConstraints(t *testing.T) {
	got := Filter(sampleJobs(), ListQuery{})
	assert.Len(t, got, 3)
}

func TestFilterSentinelsAreInactive(t *testing.T) {
	got := Filter(sampleJobs(), ListQuery{
		Category:        domain.AllCategories,
		ExperienceLevel: domain.AllLevels,
		JobType:         domain.AllTypes,
	})
	assert.Len(t, got, 3)
}

func TestFilterQuerySubstring(t *testing.T) {
	// matches title case-insensitively
	got := Filter(sampleJobs(), ListQuery{Query: "backend"})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// matches company
	got = Filter(sampleJobs(), ListQuery{Query: "brightside"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// matches description
	got = Filter(sampleJobs(), ListQuery{Query: "figma"})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	// matches category text
	got = Filter(sampleJobs(), ListQuery{Query: "data science"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Empty(t, Filter(sampleJobs(), ListQuery{Query: "cobol"}))
}

func TestFilterExactMatches(t *testing.T) {
	got := Filter(sampleJobs(), ListQuery{ExperienceLevel: domain.LevelSenior})
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = Filter(sampleJobs(), ListQuery{Category: domain.CategoryDesign})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)

	got = Filter(sampleJobs(), ListQuery{JobType: domain.TypeContract})
	require.Len(t, got, 1)
	assert.Equal(t, "3", got[0].ID)
}

func TestFilterRemoteOnly(t *testing.T) {
	got := Filter(sampleJobs(), ListQuery{RemoteOnly: true})
	assert.Len(t, got, 2)
}

func TestFilterStacked(t *testing.T) {
	got := Filter(sampleJobs(), ListQuery{
		Query:           "a", // hits all three somewhere
		ExperienceLevel: domain.LevelMid,
		Category:        domain.CategoryData,
	})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestQueryFromFilterState(t *testing.T) {
	q := QueryFromFilterState(domain.FilterState{
		SearchQuery:     "go",
		Category:        domain.CategoryData,
		ExperienceLevel: domain.LevelMid,
		JobType:         domain.TypeFullTime,
		RemoteOnly:      true,
		Location:        "Berlin", // no server-side counterpart
	})
	assert.Equal(t, "go", q.Query)
	assert.Equal(t, domain.CategoryData, q.Category)
	assert.True(t, q.RemoteOnly)
}
