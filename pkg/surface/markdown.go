package surface

import (
	"fmt"
	"io"
	"strings"

	"github.com/strategos/strategos/internal/ranking"
	"github.com/strategos/strategos/pkg/scoring"
)

// MarkdownRenderer produces a Markdown report suitable for posting into
// chat tools or pull requests from automation runs.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, result *ranking.Result) error {
	_, err := io.WriteString(w, buildMarkdownReport(result))
	return err
}

func buildMarkdownReport(result *ranking.Result) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("## Strategos: %d strategies — top %.2f\n\n",
		result.Stats.TotalStrategies, result.Stats.TopScore))

	sb.WriteString("### Verdicts\n\n")
	sb.WriteString("| Verdict | Count |\n|---------|-------|\n")
	sb.WriteString(fmt.Sprintf("| Priority | %d |\n", result.Stats.PriorityCount))
	sb.WriteString(fmt.Sprintf("| Conditional | %d |\n", result.Stats.ConditionalCount))
	sb.WriteString(fmt.Sprintf("| Decline | %d |\n", result.Stats.DeclineCount))
	sb.WriteString("\n")

	if len(result.Strategies) == 0 {
		sb.WriteString("_No strategies._\n")
		return sb.String()
	}

	sb.WriteString("### Ranking\n\n")
	for _, s := range result.Strategies {
		sb.WriteString(fmt.Sprintf("- %s **%s** (%.2f, rank %d)",
			judgmentIcon(s.Judgment), s.Name, s.TotalScore, s.Rank))
		if s.Reason != "" {
			sb.WriteString(" — " + s.Reason)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func judgmentIcon(j scoring.Judgment) string {
	switch j {
	case scoring.JudgmentPriority:
		return ":green_circle:"
	case scoring.JudgmentConditional:
		return ":yellow_circle:"
	case scoring.JudgmentDecline:
		return ":red_circle:"
	default:
		return ":blue_circle:"
	}
}
