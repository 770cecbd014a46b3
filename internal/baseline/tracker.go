// Package baseline records dated snapshots of aggregate score statistics so
// strategy quality can be tracked over time.
package baseline

import (
	"context"
	"time"

	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/pkg/scoring"
)

// Baseline is one dated snapshot of population-wide score statistics.
// Append-only; rows are never mutated or deleted by normal operation.
type Baseline struct {
	ID              string    `json:"id"`
	TopScore        float64   `json:"topScore"`
	AvgScore        float64   `json:"avgScore"`
	TotalStrategies int       `json:"totalStrategies"`
	HighScoreCount  int       `json:"highScoreCount"`
	Improvement     *float64  `json:"improvement"`
	RunID           *string   `json:"runId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// Store persists baselines. Implemented by PostgresStore.
type Store interface {
	// Latest returns the most recent baseline by date, or nil if none exists.
	Latest(ctx context.Context) (*Baseline, error)
	// Insert appends a baseline and returns it with its assigned ID and date.
	Insert(ctx context.Context, b *Baseline) (*Baseline, error)
	// History returns the most recent limit baselines, newest first.
	History(ctx context.Context, limit int) ([]Baseline, error)
}

// StrategySource yields the current enriched strategy population.
// Implemented by collect.Collector.
type StrategySource interface {
	CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error)
}

// Tracker computes and records baselines. Automated runs score the
// population under the default weight vector.
type Tracker struct {
	strategies StrategySource
	store      Store
}

// NewTracker creates a baseline Tracker.
func NewTracker(strategies StrategySource, store Store) *Tracker {
	return &Tracker{strategies: strategies, store: store}
}

// Record computes aggregate statistics over the current population and
// appends a new baseline. Returns nil without writing when no strategies
// exist; an empty population is a legitimate outcome, not an error.
// Improvement is the percentage delta of top score versus the prior
// baseline, nil when there is no prior baseline or its top score is 0.
func (t *Tracker) Record(ctx context.Context, runID *string) (*Baseline, error) {
	strategies, err := t.strategies.CollectAll(ctx, scoring.DefaultWeights())
	if err != nil {
		return nil, err
	}
	if len(strategies) == 0 {
		logging.Info("no strategies to baseline, skipping snapshot")
		return nil, nil
	}

	b := &Baseline{
		TotalStrategies: len(strategies),
		RunID:           runID,
	}
	var sum float64
	for _, s := range strategies {
		sum += s.TotalScore
		if s.TotalScore > b.TopScore {
			b.TopScore = s.TotalScore
		}
		if s.TotalScore >= scoring.HighScoreThreshold {
			b.HighScoreCount++
		}
	}
	b.AvgScore = sum / float64(len(strategies))

	prior, err := t.store.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if prior != nil && prior.TopScore > 0 {
		pct := (b.TopScore - prior.TopScore) / prior.TopScore * 100
		b.Improvement = &pct
	}

	return t.store.Insert(ctx, b)
}

// Current returns the most recent baseline, or nil if none exists.
func (t *Tracker) Current(ctx context.Context) (*Baseline, error) {
	return t.store.Latest(ctx)
}

// History returns the most recent limit baselines, newest first.
func (t *Tracker) History(ctx context.Context, limit int) ([]Baseline, error) {
	return t.store.History(ctx, limit)
}
