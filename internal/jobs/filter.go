package jobs

import (
	"strings"

	"jobboard-engine/internal/domain"
)

// ListQuery is the filter set applied after transformation. The upstream
// provider has no native filtering, so everything runs in-process.
type ListQuery struct {
	Query           string
	ExperienceLevel string
	Category        string
	JobType         string
	RemoteOnly      bool
	Page            int
}

// QueryFromFilterState maps the controller's filter selection onto the
// gateway's query parameters. Location has no server-side counterpart and
// stays client-side.
func QueryFromFilterState(f domain.FilterState) ListQuery {
	return ListQuery{
		Query:           f.SearchQuery,
		ExperienceLevel: f.ExperienceLevel,
		Category:        f.Category,
		JobType:         f.JobType,
		RemoteOnly:      f.RemoteOnly,
	}
}

func sentinel(v string) bool {
	switch v {
	case "", domain.AllCategories, domain.AllLevels, domain.AllTypes:
		return true
	}
	return false
}

// Filter applies, in order: free-text substring match over
// title|company|description|category, then exact-match level, category and
// type (each skipped when absent or on its sentinel), then the remote flag.
func Filter(in []domain.Job, q ListQuery) []domain.Job {
	out := make([]domain.Job, 0, len(in))

	needle := strings.ToLower(strings.TrimSpace(q.Query))
	for _, j := range in {
		if needle != "" {
			hay := strings.ToLower(j.Title + " " + j.Company + " " + j.Description + " " + j.Category)
			if !strings.Contains(hay, needle) {
				continue
			}
		}
		if !sentinel(q.ExperienceLevel) && j.ExperienceLevel != q.ExperienceLevel {
			continue
		}
		if !sentinel(q.Category) && j.Category != q.Category {
			continue
		}
		if !sentinel(q.JobType) && j.Type != q.JobType {
			continue
		}
		if q.RemoteOnly && !j.Remote {
			continue
		}
		out = append(out, j)
	}
	return out
}
