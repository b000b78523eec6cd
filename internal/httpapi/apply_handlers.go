package httpapi

import (
	"net/http"

	"jobboard-engine/internal/apply"
	"jobboard-engine/internal/domain"
	"jobboard-engine/internal/events"
)

type ApplyHandler struct {
	Deps
}

func (h ApplyHandler) Submit(w http.ResponseWriter, r *http.Request) {
	// Lenient decode: submissions may carry extra client-side fields.
	app, v, err := apply.ParseAndValidate(r.Body)
	if err != nil {
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Invalid JSON data",
		})
		return
	}

	if !v.Valid {
		WriteJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"message": "Validation failed",
			"errors":  v.Errors,
		})
		return
	}

	rec := h.Apps.Append(app)
	h.Log.Info().
		Str("application_id", rec.ID).
		Str("job_id", rec.JobID).
		Msg("application received")
	h.Hub.Publish(events.Make(RequestIDFrom(r.Context()), events.TypeApplicationReceived, 1, map[string]any{
		"applicationId": rec.ID,
		"jobId":         rec.JobID,
	}))

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"message": "Application submitted successfully",
		"data": map[string]any{
			"applicationId": rec.ID,
			"submittedAt":   rec.SubmittedAt,
			"jobId":         rec.JobID,
		},
	})
}

// Query returns either the applications for one job or a global summary
// with the ten most recent submissions.
func (h ApplyHandler) Query(w http.ResponseWriter, r *http.Request) {
	if jobID := r.URL.Query().Get("jobId"); jobID != "" {
		recs := h.Apps.ByJob(jobID)
		summaries := make([]domain.ApplicationSummary, 0, len(recs))
		for _, rec := range recs {
			summaries = append(summaries, domain.ApplicationSummary{
				ID:            rec.ID,
				ApplicantName: rec.ApplicantName,
				Email:         rec.Email,
				SubmittedAt:   rec.SubmittedAt,
			})
		}
		writeJSON(w, map[string]any{
			"jobId":        jobID,
			"count":        len(recs),
			"applications": summaries,
		})
		return
	}

	writeJSON(w, map[string]any{
		"totalApplications":  h.Apps.Len(),
		"recentApplications": h.Apps.Recent(10),
	})
}
