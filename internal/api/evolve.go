package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/strategos/strategos/internal/evolution"
	"github.com/strategos/strategos/internal/exploration"
)

type evolveRequest struct {
	Mode       string `json:"mode"`
	Limit      int    `json:"limit,omitempty"`
	Background bool   `json:"background,omitempty"`
}

type evolveResponse struct {
	Exploration *exploration.Exploration `json:"exploration"`
	Seeds       []evolution.Seed         `json:"seeds"`
}

// handleEvolve seeds a new generation run from proven strategies.
func (h *Handler) handleEvolve(w http.ResponseWriter, r *http.Request) {
	req := evolveRequest{Mode: evolution.ModeMutate}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	ex, seeds, err := h.evolver.Evolve(r.Context(), req.Mode, req.Limit, req.Background)
	if err != nil {
		if !evolution.ValidMode(req.Mode) || strings.Contains(err.Error(), "no seed strategies") {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "evolve: "+err.Error())
		return
	}

	status := http.StatusCreated
	if req.Background {
		status = http.StatusAccepted
	}
	writeJSON(w, status, evolveResponse{Exploration: ex, Seeds: seeds})
}
