// Package evolution seeds new generation runs from strategies that have
// already proven themselves, either by an explicit adopt decision or by a
// place in the top-strategy archive.
package evolution

import (
	"context"
	"fmt"
	"strings"

	"github.com/strategos/strategos/internal/archive"
	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/internal/decision"
	"github.com/strategos/strategos/internal/exploration"
	"github.com/strategos/strategos/internal/generation"
	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/pkg/scoring"
)

// Evolution modes. Mutate varies single seeds, crossover combines pairs,
// refute attacks the seeds' weakest assumptions to surface alternatives.
const (
	ModeMutate    = "mutate"
	ModeCrossover = "crossover"
	ModeRefute    = "refute"
)

// DefaultSeedLimit caps how many seeds feed one evolution run.
const DefaultSeedLimit = 5

// ValidMode reports whether mode names a supported evolution mode.
func ValidMode(mode string) bool {
	switch mode {
	case ModeMutate, ModeCrossover, ModeRefute:
		return true
	}
	return false
}

// Seed is one parent strategy feeding an evolution run.
type Seed struct {
	ExplorationID string         `json:"explorationId"`
	Name          string         `json:"name"`
	Reason        string         `json:"reason"`
	HowToObtain   string         `json:"howToObtain"`
	TotalScore    float64        `json:"totalScore"`
	Scores        scoring.Scores `json:"scores"`
}

// AdoptedSource lists adopt decisions, most recent first.
// Implemented by decision.Service.
type AdoptedSource interface {
	ListAdopted(ctx context.Context, limit int) ([]decision.Decision, error)
}

// ArchiveSource reads the top of the strategy archive.
// Implemented by archive.PostgresStore.
type ArchiveSource interface {
	TopByScore(ctx context.Context, limit int) ([]archive.Entry, error)
}

// StrategySource yields the current enriched strategy population.
type StrategySource interface {
	CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error)
}

// Generator runs a generation request. Implemented by generation.Service.
type Generator interface {
	Generate(ctx context.Context, req generation.Request) (*exploration.Exploration, error)
}

// Engine turns proven strategies into seeds for new exploration runs.
type Engine struct {
	adopted    AdoptedSource
	archived   ArchiveSource
	strategies StrategySource
	generator  Generator
}

// NewEngine creates an evolution Engine.
func NewEngine(adopted AdoptedSource, archived ArchiveSource, strategies StrategySource, generator Generator) *Engine {
	return &Engine{adopted: adopted, archived: archived, strategies: strategies, generator: generator}
}

// SelectSeeds picks up to limit parent strategies. Adopt decisions rank
// above everything else: they are taken most recent first and deduplicated
// by strategy name so one idea adopted across several explorations counts
// once. Only when no adopt decisions exist does the engine fall back to the
// archive, highest total score first.
func (e *Engine) SelectSeeds(ctx context.Context, limit int) ([]Seed, error) {
	if limit <= 0 {
		limit = DefaultSeedLimit
	}

	decisions, err := e.adopted.ListAdopted(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("list adopted decisions: %w", err)
	}

	if len(decisions) == 0 {
		entries, err := e.archived.TopByScore(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("read archive: %w", err)
		}
		seeds := make([]Seed, 0, len(entries))
		for _, en := range entries {
			seeds = append(seeds, Seed{
				ExplorationID: en.ExplorationID,
				Name:          en.Name,
				Reason:        en.Reason,
				HowToObtain:   en.HowToObtain,
				TotalScore:    en.TotalScore,
				Scores:        en.Scores,
			})
		}
		return seeds, nil
	}

	population, err := e.strategies.CollectAll(ctx, scoring.DefaultWeights())
	if err != nil {
		return nil, fmt.Errorf("collect strategies: %w", err)
	}
	byKey := make(map[[2]string]collect.EnrichedStrategy, len(population))
	for _, s := range population {
		byKey[[2]string{s.ExplorationID, s.Name}] = s
	}

	seen := make(map[string]bool)
	var seeds []Seed
	for _, d := range decisions {
		if len(seeds) >= limit {
			break
		}
		if seen[d.StrategyName] {
			continue
		}
		s, ok := byKey[[2]string{d.ExplorationID, d.StrategyName}]
		if !ok {
			// The exploration payload may be gone; the decision row alone
			// carries no content to evolve from.
			logging.Warn("adopted strategy missing from population, skipping seed",
				"exploration", d.ExplorationID, "strategy", d.StrategyName)
			continue
		}
		seen[d.StrategyName] = true
		seeds = append(seeds, Seed{
			ExplorationID: s.ExplorationID,
			Name:          s.Name,
			Reason:        s.Reason,
			HowToObtain:   s.HowToObtain,
			TotalScore:    s.TotalScore,
			Scores:        s.Scores,
		})
	}
	return seeds, nil
}

// Evolve selects seeds and launches a generation run whose question and
// context are derived from them. Background semantics follow the generation
// service: with background set the exploration row is returned immediately.
func (e *Engine) Evolve(ctx context.Context, mode string, limit int, background bool) (*exploration.Exploration, []Seed, error) {
	if !ValidMode(mode) {
		return nil, nil, fmt.Errorf("invalid evolution mode %q", mode)
	}

	seeds, err := e.SelectSeeds(ctx, limit)
	if err != nil {
		return nil, nil, err
	}
	if len(seeds) == 0 {
		return nil, nil, fmt.Errorf("no seed strategies available: adopt a strategy or run an archive pass first")
	}

	ex, err := e.generator.Generate(ctx, generation.Request{
		Question:   evolutionQuestion(mode),
		Context:    renderSeeds(mode, seeds),
		Background: background,
	})
	if err != nil {
		return ex, seeds, err
	}
	logging.Info("evolution run started", "mode", mode, "seeds", len(seeds), "exploration", ex.ID)
	return ex, seeds, nil
}

func evolutionQuestion(mode string) string {
	switch mode {
	case ModeCrossover:
		return "Combine the strengths of the proven strategies below into new hybrid strategies."
	case ModeRefute:
		return "Challenge the core assumptions of the proven strategies below and propose stronger alternatives."
	default:
		return "Propose improved variations of the proven strategies below."
	}
}

func renderSeeds(mode string, seeds []Seed) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Evolution mode: %s\n\nProven strategies:\n", mode)
	for i, s := range seeds {
		fmt.Fprintf(&b, "%d. %s (score %.2f)\n   Reason: %s\n   How: %s\n",
			i+1, s.Name, s.TotalScore, s.Reason, s.HowToObtain)
	}
	return b.String()
}
