package httpapi

import (
	"net/http"

	"jobboard-engine/internal/config"
)

type ConfigHandler struct {
	Deps
}

func (h ConfigHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, h.cfg())
}

// Put validates, persists, reloads, and only then swaps the live value,
// so a write that fails halfway never changes what handlers see.
func (h ConfigHandler) Put(w http.ResponseWriter, r *http.Request) {
	var incoming config.Config
	if err := decodeJSON(r, &incoming); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_json", "invalid JSON: "+err.Error())
		return
	}

	normalized, vr := config.NormalizeAndValidate(incoming)
	if !vr.OK() {
		WriteJSON(w, http.StatusBadRequest, vr)
		return
	}

	if err := config.SaveAtomic(h.UserCfgPath, normalized); err != nil {
		WriteError(w, r, http.StatusBadRequest, "save_failed", err.Error())
		return
	}

	saved, err := h.LoadCfg()
	if err != nil {
		WriteError(w, r, http.StatusInternalServerError, "reload_failed", "saved but reload failed: "+err.Error())
		return
	}
	h.CfgVal.Store(saved)
	writeJSON(w, saved)
}
