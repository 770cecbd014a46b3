package api

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/strategos/strategos/internal/generation"
)

type createExplorationRequest struct {
	Question   string `json:"question"`
	Context    string `json:"context,omitempty"`
	Background bool   `json:"background,omitempty"`
}

// handleCreateExploration starts a generation run. With background=true the
// response carries the processing row immediately and the run continues
// server-side; callers poll the exploration until it leaves processing.
func (h *Handler) handleCreateExploration(w http.ResponseWriter, r *http.Request) {
	var req createExplorationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	e, err := h.generator.Generate(r.Context(), generation.Request{
		Question:   req.Question,
		Context:    req.Context,
		Background: req.Background,
	})
	if err != nil {
		if e == nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		// The run failed after the row existed; the row records the failure.
		writeJSON(w, http.StatusBadGateway, e)
		return
	}

	status := http.StatusCreated
	if req.Background {
		status = http.StatusAccepted
	}
	writeJSON(w, status, e)
}

func (h *Handler) handleListExplorations(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", 50)
	list, err := h.explorations.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list explorations: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"explorations": list})
}

func (h *Handler) handleGetExploration(w http.ResponseWriter, r *http.Request) {
	e, err := h.explorations.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "exploration not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get exploration: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (h *Handler) handleGetExplorationResult(w http.ResponseWriter, r *http.Request) {
	res, err := h.explorations.GetResult(r.Context(), r.PathValue("id"))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "exploration not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "get result: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// queryInt parses an integer query parameter with a default.
func queryInt(r *http.Request, key string, def int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
