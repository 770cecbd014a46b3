package api

import (
	"encoding/json"
	"net/http"

	"github.com/strategos/strategos/internal/archive"
)

type runArchiveRequest struct {
	MinScore float64 `json:"minScore,omitempty"`
}

// handleRunArchive runs one archival pass. Re-running is safe: strategies
// already archived are counted in total but never inserted again.
func (h *Handler) handleRunArchive(w http.ResponseWriter, r *http.Request) {
	req := runArchiveRequest{MinScore: h.archiveMinScore}
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			return
		}
		if req.MinScore <= 0 {
			req.MinScore = h.archiveMinScore
		}
	}

	res, err := h.archiver.Archive(r.Context(), req.MinScore)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "archive: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleListArchive(w http.ResponseWriter, r *http.Request) {
	entries, err := h.archiveStore.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list archive: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"strategies": entries})
}

func (h *Handler) handleDeleteArchiveEntry(w http.ResponseWriter, r *http.Request) {
	key := archive.Key{
		ExplorationID: r.PathValue("explorationID"),
		Name:          r.PathValue("name"),
	}
	if err := h.archiveStore.Delete(r.Context(), key); err != nil {
		writeError(w, http.StatusInternalServerError, "delete archive entry: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
