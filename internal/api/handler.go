// Package api implements the Strategos REST API.
// It provides exploration, ranking, baseline, archive, decision, weight,
// and evolution endpoints backed by Postgres and blob storage.
package api

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/strategos/strategos/internal/archive"
	"github.com/strategos/strategos/internal/baseline"
	"github.com/strategos/strategos/internal/decision"
	"github.com/strategos/strategos/internal/evolution"
	"github.com/strategos/strategos/internal/exploration"
	"github.com/strategos/strategos/internal/generation"
	"github.com/strategos/strategos/internal/ranking"
	"github.com/strategos/strategos/pkg/scoring"
)

// Generator runs strategy generation. Implemented by generation.Service.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (*exploration.Exploration, error)
}

// Explorations reads exploration rows and result payloads.
// Implemented by exploration.Service.
type Explorations interface {
	Get(ctx context.Context, id string) (*exploration.Exploration, error)
	GetResult(ctx context.Context, id string) (*exploration.Result, error)
	List(ctx context.Context, limit int) ([]exploration.Exploration, error)
}

// Ranker computes strategy rankings. Implemented by ranking.Service.
type Ranker interface {
	Rank(ctx context.Context, opts ranking.Options) (*ranking.Result, error)
}

// Weights reads and writes per-user weight vectors.
// Implemented by weights.Service.
type Weights interface {
	Get(ctx context.Context, userID string) (scoring.Weights, error)
	Set(ctx context.Context, userID string, w scoring.Weights) error
}

// Baselines records and reads score baselines. Implemented by baseline.Tracker.
type Baselines interface {
	Record(ctx context.Context, runID *string) (*baseline.Baseline, error)
	Current(ctx context.Context) (*baseline.Baseline, error)
	History(ctx context.Context, limit int) ([]baseline.Baseline, error)
}

// Archiver runs archival passes. Implemented by archive.Curator.
type Archiver interface {
	Archive(ctx context.Context, minScore float64) (archive.Result, error)
}

// ArchiveReader reads and deletes archive entries.
// Implemented by archive.PostgresStore.
type ArchiveReader interface {
	List(ctx context.Context) ([]archive.Entry, error)
	Delete(ctx context.Context, key archive.Key) error
}

// Decisions persists curator verdicts. Implemented by decision.Service.
type Decisions interface {
	Upsert(ctx context.Context, d *decision.Decision) (*decision.Decision, error)
	Get(ctx context.Context, explorationID, strategyName string) (*decision.Decision, error)
}

// Evolver runs evolution passes. Implemented by evolution.Engine.
type Evolver interface {
	Evolve(ctx context.Context, mode string, limit int, background bool) (*exploration.Exploration, []evolution.Seed, error)
}

// Handler is the top-level API handler for the Strategos service.
type Handler struct {
	generator       Generator
	explorations    Explorations
	ranker          Ranker
	weights         Weights
	baselines       Baselines
	archiver        Archiver
	archiveStore    ArchiveReader
	decisions       Decisions
	evolver         Evolver
	archiveMinScore float64
}

// NewHandler creates a new API handler.
func NewHandler(
	generator Generator,
	explorations Explorations,
	ranker Ranker,
	weights Weights,
	baselines Baselines,
	archiver Archiver,
	archiveStore ArchiveReader,
	decisions Decisions,
	evolver Evolver,
	archiveMinScore float64,
) *Handler {
	if archiveMinScore <= 0 {
		archiveMinScore = scoring.ArchiveMinScore
	}
	return &Handler{
		generator:       generator,
		explorations:    explorations,
		ranker:          ranker,
		weights:         weights,
		baselines:       baselines,
		archiver:        archiver,
		archiveStore:    archiveStore,
		decisions:       decisions,
		evolver:         evolver,
		archiveMinScore: archiveMinScore,
	}
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/explorations", h.handleCreateExploration)
	mux.HandleFunc("POST /api/v1/baselines", h.handleRecordBaseline)
	mux.HandleFunc("POST /api/v1/archive", h.handleRunArchive)
	mux.HandleFunc("DELETE /api/v1/archive/{explorationID}/{name}", h.handleDeleteArchiveEntry)
	mux.HandleFunc("PUT /api/v1/decisions", h.handleUpsertDecision)
	mux.HandleFunc("PUT /api/v1/weights/{userID}", h.handleSetWeights)
	mux.HandleFunc("POST /api/v1/evolve", h.handleEvolve)

	// Read endpoints
	mux.HandleFunc("GET /api/v1/explorations", h.handleListExplorations)
	mux.HandleFunc("GET /api/v1/explorations/{id}", h.handleGetExploration)
	mux.HandleFunc("GET /api/v1/explorations/{id}/result", h.handleGetExplorationResult)
	mux.HandleFunc("GET /api/v1/ranking", h.handleRanking)
	mux.HandleFunc("GET /api/v1/baselines", h.handleBaselineHistory)
	mux.HandleFunc("GET /api/v1/baselines/current", h.handleCurrentBaseline)
	mux.HandleFunc("GET /api/v1/archive", h.handleListArchive)
	mux.HandleFunc("GET /api/v1/decisions/{explorationID}/{name}", h.handleGetDecision)
	mux.HandleFunc("GET /api/v1/weights/{userID}", h.handleGetWeights)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
