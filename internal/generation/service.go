// Package generation orchestrates exploration runs: it assembles the
// generation prompt from the question, user context, and concurrently
// fetched reference context, invokes the oracle, and drives the
// exploration through its single status transition.
package generation

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/strategos/strategos/internal/exploration"
	"github.com/strategos/strategos/internal/logging"
	"github.com/strategos/strategos/internal/oracle"
)

// ContextProvider contributes one section of reference context to the
// prompt: known services, company assets, constraints, retrieved reference
// documents. Providers are independent reads and are fetched concurrently.
type ContextProvider interface {
	Name() string
	Fetch(ctx context.Context, question string) (string, error)
}

// Explorations is the exploration lifecycle surface the service needs.
// Implemented by exploration.Service.
type Explorations interface {
	Create(ctx context.Context, question, userContext string) (*exploration.Exploration, error)
	Complete(ctx context.Context, id string, res *exploration.Result) error
	Fail(ctx context.Context, id, errMsg string) error
}

// Request describes one generation run. With Background set, Generate
// returns as soon as the exploration row exists and the run continues
// detached, writing its terminal status itself.
type Request struct {
	Question   string
	Context    string
	Background bool
}

// Service runs explorations against an injected oracle provider.
type Service struct {
	explorations Explorations
	provider     oracle.Provider
	contexts     []ContextProvider
}

// NewService creates a generation Service.
func NewService(explorations Explorations, provider oracle.Provider, contexts []ContextProvider) *Service {
	return &Service{explorations: explorations, provider: provider, contexts: contexts}
}

// Generate creates an exploration and runs it. In foreground mode the
// returned error reflects the run; the exploration row carries the same
// outcome either way, so a failed run is never propagated as a half-written
// record.
func (s *Service) Generate(ctx context.Context, req Request) (*exploration.Exploration, error) {
	if strings.TrimSpace(req.Question) == "" {
		return nil, fmt.Errorf("question is required")
	}

	e, err := s.explorations.Create(ctx, req.Question, req.Context)
	if err != nil {
		return nil, err
	}

	if req.Background {
		// Detached from the request context on purpose: there is no
		// cancellation of an in-flight oracle call.
		go func() {
			if err := s.run(context.Background(), e.ID, req); err != nil {
				logging.Error("background generation failed", "exploration", e.ID, "err", err)
			}
		}()
		return e, nil
	}

	if err := s.run(ctx, e.ID, req); err != nil {
		return e, err
	}
	return e, nil
}

// run executes the pipeline and records the terminal status on the
// exploration row. Any failure past Create ends in status=failed with the
// error string, never an ambiguous half-written state.
func (s *Service) run(ctx context.Context, id string, req Request) error {
	fail := func(cause error) error {
		if err := s.explorations.Fail(ctx, id, cause.Error()); err != nil {
			logging.Error("failed to record exploration failure", "exploration", id, "err", err)
		}
		return cause
	}

	sections := s.gatherContext(ctx, req.Question)
	prompt := buildPrompt(req, sections)

	resp, err := s.provider.Generate(ctx, oracle.Request{
		SystemPrompt: systemPrompt,
		UserPrompt:   prompt,
	})
	if err != nil {
		return fail(fmt.Errorf("oracle generate: %w", err))
	}

	var res exploration.Result
	if err := oracle.DecodeJSON(resp.Content, &res); err != nil {
		return fail(fmt.Errorf("oracle response: %w", err))
	}
	if len(res.Strategies) == 0 {
		return fail(fmt.Errorf("oracle returned no strategies"))
	}
	res.Normalize()

	if err := s.explorations.Complete(ctx, id, &res); err != nil {
		return fail(fmt.Errorf("complete exploration: %w", err))
	}
	logging.Info("exploration completed",
		"exploration", id, "strategies", len(res.Strategies), "model", resp.Model)
	return nil
}

// gatherContext fetches all context sections concurrently. The reads are
// mutually independent; a failing provider is logged and its section
// dropped rather than failing the run.
func (s *Service) gatherContext(ctx context.Context, question string) []string {
	sections := make([]string, len(s.contexts))
	var wg sync.WaitGroup
	for i, p := range s.contexts {
		wg.Add(1)
		go func(i int, p ContextProvider) {
			defer wg.Done()
			text, err := p.Fetch(ctx, question)
			if err != nil {
				logging.Warn("context provider failed, omitting section",
					"provider", p.Name(), "err", err)
				return
			}
			if text != "" {
				sections[i] = fmt.Sprintf("## %s\n%s", p.Name(), text)
			}
		}(i, p)
	}
	wg.Wait()

	var out []string
	for _, sec := range sections {
		if sec != "" {
			out = append(out, sec)
		}
	}
	return out
}
