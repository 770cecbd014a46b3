package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/strategos/strategos/internal/archive"
	"github.com/strategos/strategos/internal/baseline"
	"github.com/strategos/strategos/internal/logging"
)

// Baselines records score baselines. Implemented by baseline.Tracker.
type Baselines interface {
	Record(ctx context.Context, runID *string) (*baseline.Baseline, error)
}

// Archiver runs archival passes. Implemented by archive.Curator.
type Archiver interface {
	Archive(ctx context.Context, minScore float64) (archive.Result, error)
}

// Event is the automation trigger payload. Both actions run when no
// explicit list is given; an unknown action is a bad request.
type Event struct {
	Actions []string `json:"actions,omitempty"`
	RunID   string   `json:"runId,omitempty"`
}

// Handler processes signed automation triggers. A scheduler posts here
// after each generation wave so the baseline history and archive stay
// current without manual curation.
type Handler struct {
	secret          []byte
	baselines       Baselines
	archiver        Archiver
	archiveMinScore float64
}

// NewHandler creates a webhook Handler.
func NewHandler(secret []byte, baselines Baselines, archiver Archiver, archiveMinScore float64) *Handler {
	return &Handler{
		secret:          secret,
		baselines:       baselines,
		archiver:        archiver,
		archiveMinScore: archiveMinScore,
	}
}

type runReport struct {
	RunID    string             `json:"runId"`
	Baseline *baseline.Baseline `json:"baseline,omitempty"`
	Archive  *archive.Result    `json:"archive,omitempty"`
}

// ServeHTTP handles incoming automation triggers.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	signature := r.Header.Get("X-Signature-256")
	if err := VerifySignature(body, signature, h.secret); err != nil {
		logging.Warn("webhook signature verification failed", "err", err)
		http.Error(w, "invalid signature", http.StatusUnauthorized)
		return
	}

	var event Event
	if len(body) > 0 {
		if err := json.Unmarshal(body, &event); err != nil {
			http.Error(w, "invalid payload", http.StatusBadRequest)
			return
		}
	}
	if len(event.Actions) == 0 {
		event.Actions = []string{"baseline", "archive"}
	}
	for _, a := range event.Actions {
		if a != "baseline" && a != "archive" {
			http.Error(w, "unsupported action: "+a, http.StatusBadRequest)
			return
		}
	}
	if event.RunID == "" {
		event.RunID = uuid.NewString()
	}

	ctx := r.Context()
	report := runReport{RunID: event.RunID}

	for _, a := range event.Actions {
		switch a {
		case "baseline":
			b, err := h.baselines.Record(ctx, &event.RunID)
			if err != nil {
				logging.Error("automation baseline failed", "run", event.RunID, "err", err)
				http.Error(w, "baseline failed", http.StatusInternalServerError)
				return
			}
			report.Baseline = b
		case "archive":
			res, err := h.archiver.Archive(ctx, h.archiveMinScore)
			if err != nil {
				logging.Error("automation archive failed", "run", event.RunID, "err", err)
				http.Error(w, "archive failed", http.StatusInternalServerError)
				return
			}
			report.Archive = &res
		}
	}

	logging.Info("automation run completed", "run", event.RunID, "actions", event.Actions)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(report)
}
