// Package ranking derives the on-demand strategy leaderboard. It is a pure
// read path: every request recomputes scores and judgments fresh under the
// caller's current weight vector and never touches persisted state.
package ranking

import (
	"context"
	"sort"

	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/pkg/scoring"
)

// StrategySource yields the current enriched strategy population.
type StrategySource interface {
	CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error)
}

// RankedStrategy is a strategy with its 1-based leaderboard position.
type RankedStrategy struct {
	collect.EnrichedStrategy
	Rank int `json:"rank"`
}

// Stats summarizes the filtered population before truncation.
type Stats struct {
	TotalStrategies  int     `json:"totalStrategies"`
	PriorityCount    int     `json:"priorityCount"`
	ConditionalCount int     `json:"conditionalCount"`
	DeclineCount     int     `json:"declineCount"`
	AvgScore         float64 `json:"avgScore"`
	TopScore         float64 `json:"topScore"`
}

// Options controls one ranking request.
type Options struct {
	Limit    int
	MinScore float64
	// Judgment filters to a single verdict when non-empty.
	Judgment scoring.Judgment
	Weights  scoring.Weights
}

// Result is the ranked leaderboard plus aggregate statistics.
type Result struct {
	Strategies []RankedStrategy `json:"strategies"`
	Stats      Stats            `json:"stats"`
}

// Service computes rankings.
type Service struct {
	strategies StrategySource
}

// NewService creates a ranking Service.
func NewService(strategies StrategySource) *Service {
	return &Service{strategies: strategies}
}

// Rank filters, sorts, and ranks the strategy population. The sort is
// stable: equal totals keep their collection order. Ranks are consecutive
// starting at 1 and assigned after sorting, before truncation to limit.
func (s *Service) Rank(ctx context.Context, opts Options) (*Result, error) {
	all, err := s.strategies.CollectAll(ctx, opts.Weights)
	if err != nil {
		return nil, err
	}

	var filtered []collect.EnrichedStrategy
	for _, st := range all {
		if st.TotalScore < opts.MinScore {
			continue
		}
		if opts.Judgment != "" && st.Judgment != opts.Judgment {
			continue
		}
		filtered = append(filtered, st)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalScore > filtered[j].TotalScore
	})

	stats := Stats{TotalStrategies: len(filtered)}
	var sum float64
	for _, st := range filtered {
		sum += st.TotalScore
		if st.TotalScore > stats.TopScore {
			stats.TopScore = st.TotalScore
		}
		switch st.Judgment {
		case scoring.JudgmentPriority:
			stats.PriorityCount++
		case scoring.JudgmentConditional:
			stats.ConditionalCount++
		case scoring.JudgmentDecline:
			stats.DeclineCount++
		}
	}
	if len(filtered) > 0 {
		stats.AvgScore = sum / float64(len(filtered))
	}

	ranked := make([]RankedStrategy, 0, len(filtered))
	for i, st := range filtered {
		ranked = append(ranked, RankedStrategy{EnrichedStrategy: st, Rank: i + 1})
	}
	if opts.Limit > 0 && len(ranked) > opts.Limit {
		ranked = ranked[:opts.Limit]
	}

	return &Result{Strategies: ranked, Stats: stats}, nil
}
