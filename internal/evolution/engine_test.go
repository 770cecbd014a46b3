package evolution

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/strategos/strategos/internal/archive"
	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/internal/decision"
	"github.com/strategos/strategos/internal/exploration"
	"github.com/strategos/strategos/internal/generation"
	"github.com/strategos/strategos/pkg/scoring"
)

type fakeAdopted struct {
	decisions []decision.Decision
}

func (f *fakeAdopted) ListAdopted(ctx context.Context, limit int) ([]decision.Decision, error) {
	return f.decisions, nil
}

type fakeArchive struct {
	entries []archive.Entry
}

func (f *fakeArchive) TopByScore(ctx context.Context, limit int) ([]archive.Entry, error) {
	if limit < len(f.entries) {
		return f.entries[:limit], nil
	}
	return f.entries, nil
}

type fakePopulation struct {
	strategies []collect.EnrichedStrategy
}

func (f *fakePopulation) CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error) {
	return f.strategies, nil
}

type fakeGenerator struct {
	req generation.Request
}

func (f *fakeGenerator) Generate(ctx context.Context, req generation.Request) (*exploration.Exploration, error) {
	f.req = req
	return &exploration.Exploration{ID: "evo1", Question: req.Question, Status: exploration.StatusProcessing}, nil
}

func enriched(expID, name string, total float64) collect.EnrichedStrategy {
	return collect.EnrichedStrategy{
		ExplorationID: expID,
		Name:          name,
		Reason:        "reason for " + name,
		HowToObtain:   "how for " + name,
		TotalScore:    total,
	}
}

func adoptedAt(expID, name string, at time.Time) decision.Decision {
	return decision.Decision{
		ExplorationID: expID,
		StrategyName:  name,
		Decision:      decision.Adopt,
		UpdatedAt:     at,
	}
}

func TestSelectSeedsPrefersAdopted(t *testing.T) {
	now := time.Now()
	// ListAdopted returns most recent first.
	adopted := &fakeAdopted{decisions: []decision.Decision{
		adoptedAt("e2", "Platform Play", now),
		adoptedAt("e1", "Expand APAC", now.Add(-time.Hour)),
	}}
	pop := &fakePopulation{strategies: []collect.EnrichedStrategy{
		enriched("e1", "Expand APAC", 4.2),
		enriched("e2", "Platform Play", 3.8),
		enriched("e2", "Unadopted", 4.9),
	}}
	arch := &fakeArchive{entries: []archive.Entry{{ExplorationID: "e9", Name: "Archived", TotalScore: 5.0}}}

	e := NewEngine(adopted, arch, pop, &fakeGenerator{})
	seeds, err := e.SelectSeeds(context.Background(), 5)
	if err != nil {
		t.Fatalf("SelectSeeds: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("got %d seeds, want 2", len(seeds))
	}
	if seeds[0].Name != "Platform Play" || seeds[1].Name != "Expand APAC" {
		t.Errorf("seed order = %q, %q; want most recent adoption first", seeds[0].Name, seeds[1].Name)
	}
	if seeds[1].TotalScore != 4.2 || seeds[1].Reason != "reason for Expand APAC" {
		t.Errorf("seed content not resolved from population: %+v", seeds[1])
	}
}

func TestSelectSeedsDedupesByNameAndCaps(t *testing.T) {
	now := time.Now()
	adopted := &fakeAdopted{decisions: []decision.Decision{
		adoptedAt("e3", "Expand APAC", now),
		adoptedAt("e1", "Expand APAC", now.Add(-time.Hour)),
		adoptedAt("e2", "Platform Play", now.Add(-2 * time.Hour)),
		adoptedAt("e1", "Acquire Rival", now.Add(-3 * time.Hour)),
	}}
	pop := &fakePopulation{strategies: []collect.EnrichedStrategy{
		enriched("e1", "Expand APAC", 4.0),
		enriched("e3", "Expand APAC", 4.5),
		enriched("e2", "Platform Play", 3.5),
		enriched("e1", "Acquire Rival", 3.2),
	}}

	e := NewEngine(adopted, &fakeArchive{}, pop, &fakeGenerator{})
	seeds, err := e.SelectSeeds(context.Background(), 2)
	if err != nil {
		t.Fatalf("SelectSeeds: %v", err)
	}
	if len(seeds) != 2 {
		t.Fatalf("got %d seeds, want cap of 2", len(seeds))
	}
	if seeds[0].Name != "Expand APAC" || seeds[0].ExplorationID != "e3" {
		t.Errorf("seed[0] = %+v, want most recent Expand APAC adoption", seeds[0])
	}
	if seeds[1].Name != "Platform Play" {
		t.Errorf("seed[1] = %q, want next distinct name", seeds[1].Name)
	}
}

func TestSelectSeedsFallsBackToArchive(t *testing.T) {
	arch := &fakeArchive{entries: []archive.Entry{
		{ExplorationID: "e1", Name: "Top", TotalScore: 4.9, Reason: "r", HowToObtain: "h"},
		{ExplorationID: "e2", Name: "Second", TotalScore: 4.1},
	}}
	e := NewEngine(&fakeAdopted{}, arch, &fakePopulation{}, &fakeGenerator{})

	seeds, err := e.SelectSeeds(context.Background(), 5)
	if err != nil {
		t.Fatalf("SelectSeeds: %v", err)
	}
	if len(seeds) != 2 || seeds[0].Name != "Top" || seeds[0].TotalScore != 4.9 {
		t.Errorf("fallback seeds = %+v", seeds)
	}
}

func TestSelectSeedsSkipsMissingContent(t *testing.T) {
	adopted := &fakeAdopted{decisions: []decision.Decision{
		adoptedAt("e1", "Gone", time.Now()),
		adoptedAt("e1", "Present", time.Now().Add(-time.Hour)),
	}}
	pop := &fakePopulation{strategies: []collect.EnrichedStrategy{
		enriched("e1", "Present", 3.9),
	}}
	e := NewEngine(adopted, &fakeArchive{}, pop, &fakeGenerator{})

	seeds, err := e.SelectSeeds(context.Background(), 5)
	if err != nil {
		t.Fatalf("SelectSeeds: %v", err)
	}
	if len(seeds) != 1 || seeds[0].Name != "Present" {
		t.Errorf("seeds = %+v, want only the resolvable strategy", seeds)
	}
}

func TestEvolveBuildsSeededRequest(t *testing.T) {
	adopted := &fakeAdopted{decisions: []decision.Decision{
		adoptedAt("e1", "Expand APAC", time.Now()),
	}}
	pop := &fakePopulation{strategies: []collect.EnrichedStrategy{
		enriched("e1", "Expand APAC", 4.2),
	}}
	gen := &fakeGenerator{}
	e := NewEngine(adopted, &fakeArchive{}, pop, gen)

	ex, seeds, err := e.Evolve(context.Background(), ModeCrossover, 5, false)
	if err != nil {
		t.Fatalf("Evolve: %v", err)
	}
	if ex == nil || ex.ID != "evo1" {
		t.Fatalf("unexpected exploration %+v", ex)
	}
	if len(seeds) != 1 {
		t.Fatalf("got %d seeds", len(seeds))
	}
	if !strings.Contains(gen.req.Question, "Combine") {
		t.Errorf("crossover question = %q", gen.req.Question)
	}
	if !strings.Contains(gen.req.Context, "Expand APAC") || !strings.Contains(gen.req.Context, "4.20") {
		t.Errorf("seed context missing detail: %q", gen.req.Context)
	}
}

func TestEvolveRejectsUnknownModeAndEmptySeeds(t *testing.T) {
	e := NewEngine(&fakeAdopted{}, &fakeArchive{}, &fakePopulation{}, &fakeGenerator{})

	if _, _, err := e.Evolve(context.Background(), "invert", 5, false); err == nil {
		t.Error("expected invalid mode error")
	}
	if _, _, err := e.Evolve(context.Background(), ModeMutate, 5, false); err == nil {
		t.Error("expected no-seeds error")
	}
}
