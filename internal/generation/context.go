package generation

import (
	"context"
	"fmt"
	"strings"

	"github.com/strategos/strategos/internal/archive"
)

// ArchiveReader reads the top of the strategy archive.
type ArchiveReader interface {
	TopByScore(ctx context.Context, limit int) ([]archive.Entry, error)
}

// ArchiveContext feeds the highest-scoring archived strategies into the
// prompt so new runs build on what already works instead of repeating it.
type ArchiveContext struct {
	store ArchiveReader
	limit int
}

// NewArchiveContext creates an archive-backed context provider.
func NewArchiveContext(store ArchiveReader, limit int) *ArchiveContext {
	if limit <= 0 {
		limit = 5
	}
	return &ArchiveContext{store: store, limit: limit}
}

func (a *ArchiveContext) Name() string { return "proven strategies" }

func (a *ArchiveContext) Fetch(ctx context.Context, question string) (string, error) {
	entries, err := a.store.TopByScore(ctx, a.limit)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("Strategies that already scored well; propose different or stronger ones:\n")
	for _, e := range entries {
		fmt.Fprintf(&b, "- %s (%.2f): %s\n", e.Name, e.TotalScore, e.Reason)
	}
	return b.String(), nil
}
