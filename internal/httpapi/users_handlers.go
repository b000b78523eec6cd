package httpapi

import (
	"net/http"

	"jobboard-engine/internal/polls"
)

type UsersHandler struct {
	Deps
}

func (h UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req polls.CreateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}
	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, r, http.StatusBadRequest, "validation_failed", err.Error())
		return
	}

	u, err := h.Polls.CreateUser(r.Context(), req)
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, u)
}

func (h UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Polls.ListUsers(r.Context())
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	if list == nil {
		list = []polls.User{}
	}
	writeJSON(w, list)
}

func (h UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.Polls.GetUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	writeJSON(w, u)
}

func (h UsersHandler) Votes(w http.ResponseWriter, r *http.Request) {
	if _, err := h.Polls.GetUser(r.Context(), r.PathValue("id")); err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	votes, err := h.Polls.VotesByUser(r.Context(), r.PathValue("id"))
	if err != nil {
		writePollsError(h.Log, w, r, err)
		return
	}
	if votes == nil {
		votes = []polls.Vote{}
	}
	writeJSON(w, votes)
}
