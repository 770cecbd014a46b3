// Package archive maintains the durable set of top strategies: candidates
// that cleared the archival score bar, deduplicated by origin and name.
package archive

import (
	"context"
	"time"

	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/pkg/scoring"
)

// Key identifies an archive entry. The (ExplorationID, Name) pair is the
// sole deduplication key; content changes never re-archive a pair.
type Key struct {
	ExplorationID string
	Name          string
}

// Entry is a denormalized archived strategy.
type Entry struct {
	ExplorationID string           `json:"explorationId"`
	Name          string           `json:"name"`
	Reason        string           `json:"reason"`
	HowToObtain   string           `json:"howToObtain"`
	TotalScore    float64          `json:"totalScore"`
	Scores        scoring.Scores   `json:"scores"`
	Question      string           `json:"question"`
	Judgment      scoring.Judgment `json:"judgment"`
	CreatedAt     time.Time        `json:"createdAt"`
}

// Store persists archive entries. Implemented by PostgresStore.
type Store interface {
	// ExistingKeys returns the set of keys already archived.
	ExistingKeys(ctx context.Context) (map[Key]bool, error)
	// InsertBatch inserts entries, ignoring any whose key already exists,
	// and returns the number actually inserted. The composite unique index
	// is the safety net under concurrent callers.
	InsertBatch(ctx context.Context, entries []Entry) (int, error)
	// TopByScore returns up to limit entries ordered by total score descending.
	TopByScore(ctx context.Context, limit int) ([]Entry, error)
	// List returns all entries, highest score first.
	List(ctx context.Context) ([]Entry, error)
	// Delete removes one entry by key (explicit user action only).
	Delete(ctx context.Context, key Key) error
}

// StrategySource yields the current enriched strategy population.
type StrategySource interface {
	CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error)
}

// Result reports one archival pass. Total counts every strategy matching
// the filter including previously archived ones; Archived counts only the
// rows newly inserted by this pass.
type Result struct {
	Archived int `json:"archived"`
	Total    int `json:"total"`
}

// Curator runs archival passes over the strategy population.
type Curator struct {
	strategies StrategySource
	store      Store
}

// NewCurator creates an archive Curator.
func NewCurator(strategies StrategySource, store Store) *Curator {
	return &Curator{strategies: strategies, store: store}
}

// Archive collects the population under default weights, keeps strategies
// with totalScore >= minScore that were not gated to decline, and inserts
// the ones whose (explorationID, name) key is not yet archived. Safe to
// call repeatedly: a second pass with no new data archives nothing.
func (c *Curator) Archive(ctx context.Context, minScore float64) (Result, error) {
	strategies, err := c.strategies.CollectAll(ctx, scoring.DefaultWeights())
	if err != nil {
		return Result{}, err
	}

	var qualified []collect.EnrichedStrategy
	for _, s := range strategies {
		if s.TotalScore >= minScore && s.Judgment != scoring.JudgmentDecline {
			qualified = append(qualified, s)
		}
	}

	existing, err := c.store.ExistingKeys(ctx)
	if err != nil {
		return Result{}, err
	}

	var fresh []Entry
	for _, s := range qualified {
		if existing[Key{s.ExplorationID, s.Name}] {
			continue
		}
		fresh = append(fresh, Entry{
			ExplorationID: s.ExplorationID,
			Name:          s.Name,
			Reason:        s.Reason,
			HowToObtain:   s.HowToObtain,
			TotalScore:    s.TotalScore,
			Scores:        s.Scores,
			Question:      s.Question,
			Judgment:      s.Judgment,
		})
	}

	inserted := 0
	if len(fresh) > 0 {
		inserted, err = c.store.InsertBatch(ctx, fresh)
		if err != nil {
			return Result{}, err
		}
	}

	logging.Info("archival pass complete",
		"qualified", len(qualified), "archived", inserted)
	return Result{Archived: inserted, Total: len(qualified)}, nil
}
