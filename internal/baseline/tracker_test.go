package baseline

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/strategos/strategos/internal/collect"
	"github.com/strategos/strategos/pkg/scoring"
)

type fakeStrategies struct {
	totals []float64
}

func (f *fakeStrategies) CollectAll(ctx context.Context, w scoring.Weights) ([]collect.EnrichedStrategy, error) {
	var out []collect.EnrichedStrategy
	for i, total := range f.totals {
		out = append(out, collect.EnrichedStrategy{
			ExplorationID: "e1",
			Name:          fmt.Sprintf("S%d", i),
			TotalScore:    total,
		})
	}
	return out, nil
}

type memStore struct {
	rows []Baseline
}

func (m *memStore) Latest(ctx context.Context) (*Baseline, error) {
	if len(m.rows) == 0 {
		return nil, nil
	}
	b := m.rows[len(m.rows)-1]
	return &b, nil
}

func (m *memStore) Insert(ctx context.Context, b *Baseline) (*Baseline, error) {
	out := *b
	out.ID = fmt.Sprintf("b%d", len(m.rows)+1)
	out.CreatedAt = time.Now()
	m.rows = append(m.rows, out)
	return &out, nil
}

func (m *memStore) History(ctx context.Context, limit int) ([]Baseline, error) {
	var out []Baseline
	for i := len(m.rows) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.rows[i])
	}
	return out, nil
}

func TestRecordEmptyPopulation(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(&fakeStrategies{}, store)

	b, err := tr.Record(context.Background(), nil)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if b != nil {
		t.Errorf("expected nil baseline for empty population, got %+v", b)
	}
	if len(store.rows) != 0 {
		t.Errorf("no row should be written for empty population")
	}
}

func TestRecordAggregates(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(&fakeStrategies{totals: []float64{2.0, 3.5, 4.2, 3.0}}, store)

	b, err := tr.Record(context.Background(), nil)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if b.TopScore != 4.2 {
		t.Errorf("TopScore = %v, want 4.2", b.TopScore)
	}
	if want := (2.0 + 3.5 + 4.2 + 3.0) / 4; b.AvgScore != want {
		t.Errorf("AvgScore = %v, want %v", b.AvgScore, want)
	}
	if b.TotalStrategies != 4 {
		t.Errorf("TotalStrategies = %d, want 4", b.TotalStrategies)
	}
	if b.HighScoreCount != 2 { // 3.5 and 4.2 clear the 3.5 bar
		t.Errorf("HighScoreCount = %d, want 2", b.HighScoreCount)
	}
	if b.Improvement != nil {
		t.Errorf("first baseline should have nil improvement, got %v", *b.Improvement)
	}
}

func TestRecordImprovement(t *testing.T) {
	store := &memStore{}
	src := &fakeStrategies{totals: []float64{3.0}}
	tr := NewTracker(src, store)

	if _, err := tr.Record(context.Background(), nil); err != nil {
		t.Fatalf("first Record: %v", err)
	}

	src.totals = []float64{3.6}
	b, err := tr.Record(context.Background(), nil)
	if err != nil {
		t.Fatalf("second Record: %v", err)
	}
	if b.Improvement == nil {
		t.Fatal("expected improvement vs prior baseline")
	}
	if got := *b.Improvement; got < 19.999999 || got > 20.000001 {
		t.Errorf("Improvement = %v, want 20.0", got)
	}
}

func TestRecordImprovementNilWhenPriorTopZero(t *testing.T) {
	store := &memStore{}
	store.rows = append(store.rows, Baseline{ID: "b0", TopScore: 0})
	tr := NewTracker(&fakeStrategies{totals: []float64{4.0}}, store)

	b, err := tr.Record(context.Background(), nil)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if b.Improvement != nil {
		t.Errorf("improvement must be nil when prior top score is 0, got %v", *b.Improvement)
	}
}

func TestRecordCarriesRunID(t *testing.T) {
	store := &memStore{}
	tr := NewTracker(&fakeStrategies{totals: []float64{4.0}}, store)

	runID := "run-42"
	b, err := tr.Record(context.Background(), &runID)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if b.RunID == nil || *b.RunID != "run-42" {
		t.Errorf("RunID not carried: %v", b.RunID)
	}
}
