package api

import (
	"encoding/json"
	"net/http"
)

type recordBaselineRequest struct {
	RunID string `json:"runId,omitempty"`
}

// handleRecordBaseline appends a baseline snapshot of the current
// population. An empty population is a no-content outcome, not an error.
func (h *Handler) handleRecordBaseline(w http.ResponseWriter, r *http.Request) {
	var req recordBaselineRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
	}

	var runID *string
	if req.RunID != "" {
		runID = &req.RunID
	}

	b, err := h.baselines.Record(r.Context(), runID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "record baseline: "+err.Error())
		return
	}
	if b == nil {
		writeJSON(w, http.StatusOK, map[string]any{"baseline": nil, "reason": "no strategies"})
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handler) handleCurrentBaseline(w http.ResponseWriter, r *http.Request) {
	b, err := h.baselines.Current(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "current baseline: "+err.Error())
		return
	}
	if b == nil {
		writeError(w, http.StatusNotFound, "no baseline recorded")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleBaselineHistory(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	list, err := h.baselines.History(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "baseline history: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"baselines": list})
}
