package api

import (
	"encoding/json"
	"net/http"

	"github.com/strategos/strategos/pkg/scoring"
)

func (h *Handler) handleGetWeights(w http.ResponseWriter, r *http.Request) {
	weights, err := h.weights.Get(r.Context(), r.PathValue("userID"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get weights: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, weights)
}

func (h *Handler) handleSetWeights(w http.ResponseWriter, r *http.Request) {
	var weights scoring.Weights
	if err := json.NewDecoder(r.Body).Decode(&weights); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := weights.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.weights.Set(r.Context(), r.PathValue("userID"), weights); err != nil {
		writeError(w, http.StatusInternalServerError, "set weights: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, weights)
}
