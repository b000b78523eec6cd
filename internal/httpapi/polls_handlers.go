package httpapi

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"jobboard-engine/internal/events"
	"jobboard-engine/internal/polls"
)

type PollsHandler struct {
	Deps
}

// pollsStatus maps the store's sentinel errors onto HTTP statuses.
func pollsStatus(err error) (int, string) {
	switch {
	case errors.Is(err, polls.ErrNotFound):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, polls.ErrNotOwner):
		return http.StatusForbidden, "not_owner"
	case errors.Is(err, polls.ErrPollClosed):
		return http.StatusConflict, "poll_closed"
	case errors.Is(err, polls.ErrDuplicateVote):
		return http.StatusConflict, "duplicate_vote"
	case errors.Is(err, polls.ErrDuplicateOption):
		return http.StatusConflict, "duplicate_option"
	case errors.Is(err, polls.ErrOptionMismatch):
		return http.StatusBadRequest, "option_mismatch"
	case errors.Is(err, polls.ErrUserExists):
		return http.StatusConflict, "user_exists"
	}
	return http.StatusInternalServerError, "internal_error"
}

func writePollsError(log zerolog.Logger, w http.ResponseWriter, r *http.Request, err error) {
	status, code := pollsStatus(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Msg("polls store error")
		WriteError(w, r, status, code, "internal server error")
		return
	}
	WriteError(w, r, status, code, err.Error())
}

func (h PollsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req polls.CreatePollRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	p, err := h.Polls.CreatePoll(r.Context(), req)
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	h.Hub.Publish(events.Make(RequestIDFrom(r.Context()), events.TypePollCreated, 1, map[string]any{
		"pollId": p.ID,
		"title":  p.Title,
	}))
	WriteJSON(w, http.StatusCreated, p)
}

func (h PollsHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Polls.ListPolls(r.Context())
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	if list == nil {
		list = []polls.Poll{}
	}
	writeJSON(w, list)
}

func (h PollsHandler) Get(w http.ResponseWriter, r *http.Request) {
	p, err := h.Polls.GetPoll(r.Context(), r.PathValue("id"))
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	writeJSON(w, p)
}

// Delete requires the creator's id as the user_id query parameter; there
// is no authentication layer, only this ownership check.
func (h PollsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	requester := r.URL.Query().Get("user_id")
	if requester == "" {
		WriteError(w, r, http.StatusBadRequest, "missing_user", "user_id query parameter is required")
		return
	}
	if err := h.Polls.DeletePoll(r.Context(), r.PathValue("id"), requester); err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h PollsHandler) Results(w http.ResponseWriter, r *http.Request) {
	res, err := h.Polls.Results(r.Context(), r.PathValue("id"))
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	writeJSON(w, res)
}

func (h PollsHandler) AddOption(w http.ResponseWriter, r *http.Request) {
	var req polls.AddOptionRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	opt, err := h.Polls.AddOption(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, opt)
}

func (h PollsHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var req polls.CastVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	v, err := h.Polls.CastVote(r.Context(), r.PathValue("id"), req)
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	h.Hub.Publish(events.Make(RequestIDFrom(r.Context()), events.TypeVoteCast, 1, map[string]any{
		"pollId":   v.PollID,
		"optionId": v.OptionID,
	}))
	WriteJSON(w, http.StatusCreated, v)
}
