// Package scoring implements the Strategos strategy scoring engine.
// It maps six-axis score vectors to weighted totals and categorical
// investment judgments. All functions are pure: identical inputs always
// produce identical outputs, and nothing here touches storage.
package scoring

// Scores is the six-axis evaluation of a single strategy.
// Each axis is an integer in [1,5]. Immutable once generated.
type Scores struct {
	RevenuePotential     int `json:"revenuePotential"`
	TimeToRevenue        int `json:"timeToRevenue"`
	CompetitiveAdvantage int `json:"competitiveAdvantage"`
	ExecutionFeasibility int `json:"executionFeasibility"`
	HQContribution       int `json:"hqContribution"`
	MergerSynergy        int `json:"mergerSynergy"`
}

// Judgment is the categorical investment verdict for a strategy.
type Judgment string

const (
	JudgmentPriority    Judgment = "priority"
	JudgmentConditional Judgment = "conditional"
	JudgmentDecline     Judgment = "decline"
)

// Valid reports whether j is one of the three known judgments.
func (j Judgment) Valid() bool {
	switch j {
	case JudgmentPriority, JudgmentConditional, JudgmentDecline:
		return true
	}
	return false
}

// Score thresholds. ArchiveMinScore and HighScoreThreshold are distinct
// values and must stay distinct: archival gates on 4.0 while baseline
// high-score counting uses 3.5.
const (
	// PriorityThreshold is the weighted total at or above which an ungated
	// strategy is judged a priority investment.
	PriorityThreshold = 4.0

	// ConditionalThreshold is the weighted total at or above which an
	// ungated strategy is judged worth pursuing with conditions.
	ConditionalThreshold = 3.0

	// ArchiveMinScore is the default weighted-total bar a strategy must
	// clear to enter the top-strategy archive.
	ArchiveMinScore = 4.0

	// HighScoreThreshold is the weighted-total bar used when counting
	// high-scoring strategies for a baseline snapshot.
	HighScoreThreshold = 3.5
)
