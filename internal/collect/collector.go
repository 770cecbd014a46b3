// Package collect gathers every generated strategy across completed
// explorations and enriches each with a freshly computed score and judgment.
package collect

import (
	"context"
	"time"

	"github.com/strategos/strategos/internal/exploration"
	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/pkg/scoring"
)

// Source provides completed explorations with their raw result payloads.
// Implemented by exploration.Service.
type Source interface {
	ListCompleted(ctx context.Context) ([]exploration.Completed, error)
}

// EnrichedStrategy is a strategy joined with its provenance and its score
// and judgment recomputed under the caller's weight vector. Never persisted;
// rebuilt on every collection pass.
type EnrichedStrategy struct {
	ExplorationID   string           `json:"explorationId"`
	Name            string           `json:"name"`
	Reason          string           `json:"reason"`
	HowToObtain     string           `json:"howToObtain"`
	Metrics         string           `json:"metrics"`
	Confidence      string           `json:"confidence"`
	Tags            []string         `json:"tags"`
	Scores          scoring.Scores   `json:"scores"`
	TotalScore      float64          `json:"totalScore"`
	Judgment        scoring.Judgment `json:"judgment"`
	Question        string           `json:"question"`
	ExplorationDate time.Time        `json:"explorationDate"`
}

// Collector builds the enriched strategy population.
type Collector struct {
	src Source
}

// NewCollector creates a Collector reading from the given source.
func NewCollector(src Source) *Collector {
	return &Collector{src: src}
}

// CollectAll returns every scoreable strategy across history, in stored
// order. Totals and judgments are computed under w at call time. A result
// payload that fails to decode is logged and its exploration skipped; one
// corrupt record never aborts collection. Strategies without a score block
// are skipped silently since they cannot be ranked.
func (c *Collector) CollectAll(ctx context.Context, w scoring.Weights) ([]EnrichedStrategy, error) {
	completed, err := c.src.ListCompleted(ctx)
	if err != nil {
		return nil, err
	}

	var out []EnrichedStrategy
	for _, e := range completed {
		res, err := exploration.DecodeResult(e.Payload)
		if err != nil {
			logging.Warn("skipping exploration with malformed result payload",
				"exploration", e.ID, "err", err)
			continue
		}
		for _, s := range res.Strategies {
			if s.Scores == nil {
				continue
			}
			out = append(out, EnrichedStrategy{
				ExplorationID:   e.ID,
				Name:            s.Name,
				Reason:          s.Reason,
				HowToObtain:     s.HowToObtain,
				Metrics:         s.Metrics,
				Confidence:      s.Confidence,
				Tags:            s.Tags,
				Scores:          *s.Scores,
				TotalScore:      scoring.TotalScore(*s.Scores, w),
				Judgment:        scoring.Classify(*s.Scores, w),
				Question:        e.Question,
				ExplorationDate: e.CreatedAt,
			})
		}
	}
	return out, nil
}
