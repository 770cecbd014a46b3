package scoring

// TotalScore computes the weighted arithmetic mean of the six axes:
// sum(score*weight) / sum(weight). A zero weight sum is a degenerate
// configuration, not an error, and yields 0.
func TotalScore(s Scores, w Weights) float64 {
	sum := w.Sum()
	if sum == 0 {
		return 0
	}
	weighted := float64(s.RevenuePotential)*w.RevenuePotential +
		float64(s.TimeToRevenue)*w.TimeToRevenue +
		float64(s.CompetitiveAdvantage)*w.CompetitiveAdvantage +
		float64(s.ExecutionFeasibility)*w.ExecutionFeasibility +
		float64(s.HQContribution)*w.HQContribution +
		float64(s.MergerSynergy)*w.MergerSynergy
	return weighted / sum
}

// Classify derives the investment judgment for a score vector.
// Gates run before the threshold ladder, first match wins: a weak
// revenue-potential, competitive-advantage, or execution-feasibility axis
// declines the strategy no matter how high its weighted total is.
func Classify(s Scores, w Weights) Judgment {
	if s.RevenuePotential <= 2 {
		return JudgmentDecline
	}
	if s.CompetitiveAdvantage <= 2 {
		return JudgmentDecline
	}
	if s.ExecutionFeasibility == 1 {
		return JudgmentDecline
	}

	total := TotalScore(s, w)
	switch {
	case total >= PriorityThreshold:
		return JudgmentPriority
	case total >= ConditionalThreshold:
		return JudgmentConditional
	default:
		return JudgmentDecline
	}
}
