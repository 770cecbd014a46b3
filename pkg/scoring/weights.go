package scoring

import "fmt"

// Weights is a per-axis weight vector. Weights are non-negative and are
// normalized by their sum inside TotalScore, so any positive total works.
// One vector exists per user identity; absent configuration falls back to
// DefaultWeights.
type Weights struct {
	RevenuePotential     float64 `json:"revenuePotential" yaml:"revenue_potential"`
	TimeToRevenue        float64 `json:"timeToRevenue" yaml:"time_to_revenue"`
	CompetitiveAdvantage float64 `json:"competitiveAdvantage" yaml:"competitive_advantage"`
	ExecutionFeasibility float64 `json:"executionFeasibility" yaml:"execution_feasibility"`
	HQContribution       float64 `json:"hqContribution" yaml:"hq_contribution"`
	MergerSynergy        float64 `json:"mergerSynergy" yaml:"merger_synergy"`
}

// DefaultWeights returns the documented default weight vector (sum 100).
func DefaultWeights() Weights {
	return Weights{
		RevenuePotential:     30,
		TimeToRevenue:        20,
		CompetitiveAdvantage: 20,
		ExecutionFeasibility: 15,
		HQContribution:       10,
		MergerSynergy:        5,
	}
}

// Sum returns the total of all six weights.
func (w Weights) Sum() float64 {
	return w.RevenuePotential + w.TimeToRevenue + w.CompetitiveAdvantage +
		w.ExecutionFeasibility + w.HQContribution + w.MergerSynergy
}

// Validate checks that every weight lies in [0,100].
func (w Weights) Validate() error {
	axes := []struct {
		name  string
		value float64
	}{
		{"revenuePotential", w.RevenuePotential},
		{"timeToRevenue", w.TimeToRevenue},
		{"competitiveAdvantage", w.CompetitiveAdvantage},
		{"executionFeasibility", w.ExecutionFeasibility},
		{"hqContribution", w.HQContribution},
		{"mergerSynergy", w.MergerSynergy},
	}
	for _, a := range axes {
		if a.value < 0 || a.value > 100 {
			return fmt.Errorf("weight %s out of range [0,100]: %g", a.name, a.value)
		}
	}
	return nil
}
