package scoring_test

import (
	"testing"

	"github.com/strategos/strategos/pkg/scoring"
)

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

func TestTotalScoreDefaultWeightsUniform(t *testing.T) {
	// A uniform vector under any positive weights is exactly that value.
	w := scoring.DefaultWeights()
	if got := scoring.TotalScore(uniform(3), w); got != 3.0 {
		t.Errorf("TotalScore(uniform 3) = %v, want 3.0", got)
	}
	if got := scoring.TotalScore(uniform(5), w); got != 5.0 {
		t.Errorf("TotalScore(uniform 5) = %v, want 5.0", got)
	}
}

func TestTotalScoreDeterministic(t *testing.T) {
	s := scoring.Scores{
		RevenuePotential:     4,
		TimeToRevenue:        2,
		CompetitiveAdvantage: 5,
		ExecutionFeasibility: 3,
		HQContribution:       1,
		MergerSynergy:        5,
	}
	w := scoring.Weights{
		RevenuePotential:     17,
		TimeToRevenue:        3,
		CompetitiveAdvantage: 41,
		ExecutionFeasibility: 9,
		HQContribution:       0,
		MergerSynergy:        30,
	}
	a := scoring.TotalScore(s, w)
	b := scoring.TotalScore(s, w)
	if a != b {
		t.Errorf("TotalScore not deterministic: %v vs %v", a, b)
	}
	if a < 1 || a > 5 {
		t.Errorf("TotalScore = %v, want within [1,5]", a)
	}
}

func TestTotalScoreZeroWeightSum(t *testing.T) {
	if got := scoring.TotalScore(uniform(5), scoring.Weights{}); got != 0 {
		t.Errorf("TotalScore with zero weights = %v, want 0", got)
	}
}

func TestTotalScoreBounded(t *testing.T) {
	w := scoring.DefaultWeights()
	for rp := 1; rp <= 5; rp++ {
		for ef := 1; ef <= 5; ef++ {
			s := uniform(3)
			s.RevenuePotential = rp
			s.ExecutionFeasibility = ef
			got := scoring.TotalScore(s, w)
			if got < 1 || got > 5 {
				t.Errorf("TotalScore(%+v) = %v, outside [1,5]", s, got)
			}
		}
	}
}

func TestClassifyGatePrecedence(t *testing.T) {
	w := scoring.DefaultWeights()

	// Revenue potential gate overrides otherwise perfect axes.
	s := uniform(5)
	s.RevenuePotential = 2
	if got := scoring.Classify(s, w); got != scoring.JudgmentDecline {
		t.Errorf("revenue gate: Classify = %q, want decline", got)
	}

	// Competitive advantage gate.
	s = uniform(5)
	s.CompetitiveAdvantage = 2
	if got := scoring.Classify(s, w); got != scoring.JudgmentDecline {
		t.Errorf("advantage gate: Classify = %q, want decline", got)
	}

	// Execution feasibility gate triggers only at 1.
	s = uniform(5)
	s.ExecutionFeasibility = 1
	if got := scoring.Classify(s, w); got != scoring.JudgmentDecline {
		t.Errorf("feasibility gate: Classify = %q, want decline", got)
	}
	s.ExecutionFeasibility = 2
	if got := scoring.Classify(s, w); got != scoring.JudgmentPriority {
		t.Errorf("feasibility 2 should not gate: Classify = %q, want priority", got)
	}
}

func TestClassifyThresholds(t *testing.T) {
	// Single-axis weights make the total equal to one chosen axis, so the
	// threshold boundaries can be hit exactly without gate interference.
	w := scoring.Weights{HQContribution: 100}
	base := scoring.Scores{
		RevenuePotential:     5,
		TimeToRevenue:        5,
		CompetitiveAdvantage: 5,
		ExecutionFeasibility: 5,
		MergerSynergy:        5,
	}

	tests := []struct {
		hq   int
		want scoring.Judgment
	}{
		{4, scoring.JudgmentPriority},    // total = 4.0 exactly
		{3, scoring.JudgmentConditional}, // total = 3.0 exactly
		{2, scoring.JudgmentDecline},     // total below conditional
	}
	for _, tt := range tests {
		s := base
		s.HQContribution = tt.hq
		if got := scoring.Classify(s, w); got != tt.want {
			t.Errorf("Classify(total=%d.0) = %q, want %q", tt.hq, got, tt.want)
		}
	}

	// Just below the boundaries.
	w2 := scoring.Weights{HQContribution: 9999, RevenuePotential: 1}
	s := base
	s.HQContribution = 4
	s.RevenuePotential = 3 // total slightly under 4.0
	if got := scoring.Classify(s, w2); got != scoring.JudgmentConditional {
		t.Errorf("Classify(just under 4.0) = %q, want conditional", got)
	}
	s.HQContribution = 3
	s.RevenuePotential = 3 // equals 3.0, stays conditional
	if got := scoring.Classify(s, w2); got != scoring.JudgmentConditional {
		t.Errorf("Classify(3.0) = %q, want conditional", got)
	}
	w3 := scoring.Weights{HQContribution: 9999, MergerSynergy: 1}
	s.HQContribution = 3
	s.MergerSynergy = 1 // total slightly under 3.0
	if got := scoring.Classify(s, w3); got != scoring.JudgmentDecline {
		t.Errorf("Classify(just under 3.0) = %q, want decline", got)
	}
}

func TestWeightsValidate(t *testing.T) {
	if err := scoring.DefaultWeights().Validate(); err != nil {
		t.Errorf("default weights invalid: %v", err)
	}
	bad := scoring.DefaultWeights()
	bad.MergerSynergy = 101
	if err := bad.Validate(); err == nil {
		t.Error("expected error for weight > 100")
	}
	bad = scoring.DefaultWeights()
	bad.RevenuePotential = -1
	if err := bad.Validate(); err == nil {
		t.Error("expected error for negative weight")
	}
}

func TestJudgmentValid(t *testing.T) {
	for _, j := range []scoring.Judgment{
		scoring.JudgmentPriority, scoring.JudgmentConditional, scoring.JudgmentDecline,
	} {
		if !j.Valid() {
			t.Errorf("%q should be valid", j)
		}
	}
	if scoring.Judgment("maybe").Valid() {
		t.Error("unknown judgment should be invalid")
	}
}
