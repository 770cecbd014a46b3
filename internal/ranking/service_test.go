package ranking

import (
	"context"
	"testing"

	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/pkg/scoring"
)

type fakeStrategies struct {
	list []collect.EnrichedStrategy
}

func (f *fakeStrategies) CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error) {
	// Recompute like the real collector so weight changes show up.
	out := make([]collect.EnrichedStrategy, len(f.list))
	for i, s := range f.list {
		s.TotalScore = scoring.TotalScore(s.Scores, w)
		s.Judgment = scoring.Classify(s.Scores, w)
		out[i] = s
	}
	return out, nil
}

func strat(name string, sc scoring.Scores) collect.EnrichedStrategy {
	return collect.EnrichedStrategy{ExplorationID: "e1", Name: name, Scores: sc}
}

func uniform(v int) scoring.Scores {
	return scoring.Scores{
		RevenuePotential:     v,
		TimeToRevenue:        v,
		CompetitiveAdvantage: v,
		ExecutionFeasibility: v,
		HQContribution:       v,
		MergerSynergy:        v,
	}
}

func TestRankStableTiesAndConsecutiveRanks(t *testing.T) {
	src := &fakeStrategies{list: []collect.EnrichedStrategy{
		strat("first", uniform(4)),
		strat("second", uniform(4)), // tie with first, must stay behind it
		strat("top", uniform(5)),
	}}
	svc := NewService(src)

	res, err := svc.Rank(context.Background(), Options{Limit: 10, Weights: scoring.DefaultWeights()})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	names := []string{}
	for _, s := range res.Strategies {
		names = append(names, s.Name)
	}
	want := []string{"top", "first", "second"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order = %v, want %v", names, want)
		}
	}
	for i, s := range res.Strategies {
		if s.Rank != i+1 {
			t.Errorf("rank[%d] = %d, want %d", i, s.Rank, i+1)
		}
	}
}

func TestRankFilters(t *testing.T) {
	gated := uniform(5)
	gated.RevenuePotential = 1 // declines via gate, total still high
	src := &fakeStrategies{list: []collect.EnrichedStrategy{
		strat("A", uniform(5)),
		strat("B", gated),
		strat("C", uniform(3)),
	}}
	svc := NewService(src)

	res, err := svc.Rank(context.Background(), Options{
		Limit:    10,
		MinScore: 3.5,
		Weights:  scoring.DefaultWeights(),
	})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	// uniform(3) has total 3.0 and is filtered; the gated strategy still
	// carries a high total so it passes the numeric filter.
	if res.Stats.TotalStrategies != 2 {
		t.Fatalf("TotalStrategies = %d, want 2", res.Stats.TotalStrategies)
	}

	res, err = svc.Rank(context.Background(), Options{
		Limit:    10,
		Judgment: scoring.JudgmentPriority,
		Weights:  scoring.DefaultWeights(),
	})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(res.Strategies) != 1 || res.Strategies[0].Name != "A" {
		t.Errorf("judgment filter kept %v, want only A", res.Strategies)
	}
}

func TestRankStatsAndTruncation(t *testing.T) {
	src := &fakeStrategies{list: []collect.EnrichedStrategy{
		strat("A", uniform(5)),
		strat("B", uniform(4)),
		strat("C", uniform(3)),
	}}
	svc := NewService(src)

	res, err := svc.Rank(context.Background(), Options{Limit: 2, Weights: scoring.DefaultWeights()})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(res.Strategies) != 2 {
		t.Errorf("truncated length = %d, want 2", len(res.Strategies))
	}
	// Stats reflect the full filtered population, not the truncation.
	if res.Stats.TotalStrategies != 3 {
		t.Errorf("TotalStrategies = %d, want 3", res.Stats.TotalStrategies)
	}
	if res.Stats.TopScore != 5.0 {
		t.Errorf("TopScore = %v, want 5.0", res.Stats.TopScore)
	}
	if want := (5.0 + 4.0 + 3.0) / 3; res.Stats.AvgScore != want {
		t.Errorf("AvgScore = %v, want %v", res.Stats.AvgScore, want)
	}
}

func TestRankEmpty(t *testing.T) {
	res, err := NewService(&fakeStrategies{}).Rank(context.Background(),
		Options{Limit: 10, Weights: scoring.DefaultWeights()})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if res.Stats.TopScore != 0 || res.Stats.AvgScore != 0 {
		t.Errorf("empty stats = %+v, want zeros", res.Stats)
	}
	if len(res.Strategies) != 0 {
		t.Errorf("expected no strategies")
	}
}

func TestRankEndToEndScenario(t *testing.T) {
	gated := scoring.Scores{
		RevenuePotential:     1,
		TimeToRevenue:        3,
		CompetitiveAdvantage: 3,
		ExecutionFeasibility: 3,
		HQContribution:       3,
		MergerSynergy:        3,
	}
	src := &fakeStrategies{list: []collect.EnrichedStrategy{
		strat("A", uniform(5)),
		strat("B", gated),
	}}
	res, err := NewService(src).Rank(context.Background(),
		Options{Limit: 10, Weights: scoring.DefaultWeights()})
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(res.Strategies) != 2 {
		t.Fatalf("got %d strategies, want 2", len(res.Strategies))
	}
	a, b := res.Strategies[0], res.Strategies[1]
	if a.Name != "A" || a.Rank != 1 || a.Judgment != scoring.JudgmentPriority {
		t.Errorf("A = rank %d judgment %q, want rank 1 priority", a.Rank, a.Judgment)
	}
	if b.Name != "B" || b.Rank != 2 || b.Judgment != scoring.JudgmentDecline {
		t.Errorf("B = rank %d judgment %q, want rank 2 decline", b.Rank, b.Judgment)
	}
	if res.Stats.TopScore != 5.0 {
		t.Errorf("TopScore = %v, want 5.0", res.Stats.TopScore)
	}
	if res.Stats.DeclineCount != 1 {
		t.Errorf("DeclineCount = %d, want 1", res.Stats.DeclineCount)
	}
}
