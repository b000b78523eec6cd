package httpapi

import "net/http"

// NewMux registers every route. Poll and user routes are registered only
// when the subsystem is enabled.
func NewMux(d Deps) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	jh := JobsHandler{Deps: d}
	mux.HandleFunc("GET /api/jobs", jh.List)
	mux.HandleFunc("GET /api/status", jh.Status)

	ah := ApplyHandler{Deps: d}
	mux.HandleFunc("POST /api/apply", ah.Submit)
	mux.HandleFunc("GET /api/apply", ah.Query)

	ch := ConfigHandler{Deps: d}
	mux.HandleFunc("GET /api/config", ch.Get)
	mux.HandleFunc("PUT /api/config", ch.Put)

	eh := EventsHandler{Hub: d.Hub}
	mux.HandleFunc("GET /events", eh.ServeSSE)

	if d.Polls != nil {
		ph := PollsHandler{Deps: d}
		mux.HandleFunc("POST /api/polls", ph.Create)
		mux.HandleFunc("GET /api/polls", ph.List)
		mux.HandleFunc("GET /api/polls/{id}", ph.Get)
		mux.HandleFunc("DELETE /api/polls/{id}", ph.Delete)
		mux.HandleFunc("GET /api/polls/{id}/results", ph.Results)
		mux.HandleFunc("POST /api/polls/{id}/options", ph.AddOption)
		mux.HandleFunc("POST /api/polls/{id}/vote", ph.Vote)

		uh := UsersHandler{Deps: d}
		mux.HandleFunc("POST /api/users", uh.Create)
		mux.HandleFunc("GET /api/users", uh.List)
		mux.HandleFunc("GET /api/users/{id}", uh.Get)
		mux.HandleFunc("GET /api/users/{id}/votes", uh.Votes)
	}

	return mux
}

// Handler wraps the mux in the standard middleware chain.
func Handler(d Deps) http.Handler {
	cfg := d.cfg()
	return Chain(NewMux(d),
		RequestID,
		AccessLog(d.Log),
		Recover(d.Log, cfg.Production()),
		Cors,
	)
}
