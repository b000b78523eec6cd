package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/jobs"
)

type JobsHandler struct {
	Deps
}

type jobsEnvelope struct {
	Data         []domain.Job  `json:"data"`
	Status       int           `json:"status"`
	Message      string        `json:"message"`
	TotalResults int           `json:"totalResults"`
	Source       string        `json:"source"`
	Query        jobsQueryEcho `json:"query"`
}

type jobsQueryEcho struct {
	Query           string `json:"query"`
	ExperienceLevel string `json:"experienceLevel"`
	Category        string `json:"category"`
	JobType         string `json:"jobType"`
	RemoteOnly      bool   `json:"remoteOnly"`
	Page            int    `json:"page"`
}

// queryFromRequest accepts both the short and the long parameter names;
// the short form wins when both are present.
func queryFromRequest(r *http.Request) jobs.ListQuery {
	get := func(names ...string) string {
		for _, n := range names {
			if v := r.URL.Query().Get(n); v != "" {
				return v
			}
		}
		return ""
	}

	page, _ := strconv.Atoi(get("page"))
	if page < 1 {
		page = 1
	}
	return jobs.ListQuery{
		Query:           get("q", "query"),
		ExperienceLevel: get("experience", "experienceLevel"),
		Category:        get("category"),
		JobType:         get("jobType"),
		RemoteOnly:      get("remote") == "true",
		Page:            page,
	}
}

// List fetches live from the provider and filters in-process. A provider
// failure surfaces as a 500 envelope here; the silent mock fallback
// belongs to the background snapshot, not this route.
func (h JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := queryFromRequest(r)

	list, err := h.Jobs.List(r.Context(), q)
	if err != nil {
		h.Log.Error().Err(err).Msg("jobs fetch failed")
		WriteJSON(w, http.StatusInternalServerError, map[string]any{
			"data":    []domain.Job{},
			"status":  http.StatusInternalServerError,
			"message": "Failed to fetch jobs from upstream provider",
		})
		return
	}

	cfg := h.cfg()
	w.Header().Set("Cache-Control", fmt.Sprintf(
		"public, s-maxage=%d, stale-while-revalidate=%d",
		cfg.Fetch.CacheMaxAgeSeconds, cfg.Fetch.CacheStaleSeconds))

	WriteJSON(w, http.StatusOK, jobsEnvelope{
		Data:         list,
		Status:       http.StatusOK,
		Message:      "Jobs fetched successfully",
		TotalResults: len(list),
		Source:       "upstream",
		Query: jobsQueryEcho{
			Query:           q.Query,
			ExperienceLevel: q.ExperienceLevel,
			Category:        q.Category,
			JobType:         q.JobType,
			RemoteOnly:      q.RemoteOnly,
			Page:            q.Page,
		},
	})
}

// Status reports the background refresher's latest outcome.
func (h JobsHandler) Status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.Snapshot.Status())
}
