package api

import (
	"net/http"
	"strconv"

	"github.com/strategos/strategos/internal/ranking"
	"github.com/strategos/strategos/pkg/scoring"
)

// handleRanking recomputes the leaderboard under the caller's current
// weight vector. Scores stored at exploration time are never reused here.
func (h *Handler) handleRanking(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	weights, err := h.weights.Get(r.Context(), q.Get("userId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "load weights: "+err.Error())
		return
	}

	opts := ranking.Options{
		Limit:   queryInt(r, "limit", 0),
		Weights: weights,
	}
	if v := q.Get("minScore"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid minScore")
			return
		}
		opts.MinScore = min
	}
	if v := q.Get("judgment"); v != "" {
		j := scoring.Judgment(v)
		if !j.Valid() {
			writeError(w, http.StatusBadRequest, "invalid judgment filter")
			return
		}
		opts.Judgment = j
	}

	result, err := h.ranker.Rank(r.Context(), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "rank: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}
