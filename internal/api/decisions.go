package api

import (
	"encoding/json"
	"net/http"

	"github.com/strategos/strategos/internal/decision"
)

// handleUpsertDecision records or overwrites a curator verdict. Invalid
// decision values surface synchronously as 400s.
func (h *Handler) handleUpsertDecision(w http.ResponseWriter, r *http.Request) {
	var d decision.Decision
	if err := json.NewDecoder(r.Body).Decode(&d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	stored, err := h.decisions.Upsert(r.Context(), &d)
	if err != nil {
		if err := d.Validate(); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "upsert decision: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stored)
}

func (h *Handler) handleGetDecision(w http.ResponseWriter, r *http.Request) {
	d, err := h.decisions.Get(r.Context(), r.PathValue("explorationID"), r.PathValue("name"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get decision: "+err.Error())
		return
	}
	if d == nil {
		writeError(w, http.StatusNotFound, "no decision recorded")
		return
	}
	writeJSON(w, http.StatusOK, d)
}
