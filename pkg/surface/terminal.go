package surface

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strategos/strategos/internal/ranking"
	"github.com/strategos/strategos/pkg/scoring"
)

// TerminalRenderer renders the ranking as colored terminal output.
type TerminalRenderer struct{}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
)

func judgmentColor(j scoring.Judgment) string {
	if noColor() {
		return ""
	}
	switch j {
	case scoring.JudgmentPriority:
		return colorGreen
	case scoring.JudgmentConditional:
		return colorYellow
	case scoring.JudgmentDecline:
		return colorRed
	default:
		return ""
	}
}

func noColor() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}

func bold(s string) string {
	if noColor() {
		return s
	}
	return colorBold + s + colorReset
}

func dim(s string) string {
	if noColor() {
		return s
	}
	return colorDim + s + colorReset
}

func colored(s, color string) string {
	if noColor() || color == "" {
		return s
	}
	return color + s + colorReset
}

func (r *TerminalRenderer) Render(w io.Writer, result *ranking.Result) error {
	// Header
	fmt.Fprintf(w, "%s\n\n",
		bold(fmt.Sprintf("Strategos: %d strategies — top %.2f avg %.2f",
			result.Stats.TotalStrategies, result.Stats.TopScore, result.Stats.AvgScore)))

	fmt.Fprintf(w, "Verdicts: %d priority / %d conditional / %d decline\n\n",
		result.Stats.PriorityCount, result.Stats.ConditionalCount, result.Stats.DeclineCount)

	if len(result.Strategies) == 0 {
		fmt.Fprintln(w, "No strategies.")
		fmt.Fprintln(w)
		return nil
	}

	for _, s := range result.Strategies {
		jc := judgmentColor(s.Judgment)
		fmt.Fprintf(w, "  %2d. %s %.2f %s\n",
			s.Rank, bold(s.Name), s.TotalScore, colored(string(s.Judgment), jc))

		if s.Reason != "" {
			for _, line := range wrapText(s.Reason, 70) {
				fmt.Fprintf(w, "      %s\n", dim(line))
			}
		}
		if len(s.Tags) > 0 {
			fmt.Fprintf(w, "      %s\n", dim("["+strings.Join(s.Tags, ", ")+"]"))
		}
		fmt.Fprintln(w)
	}

	return nil
}

// wrapText wraps a string at the given width, returning lines.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
		} else {
			current += " " + word
		}
	}
	lines = append(lines, current)
	return lines
}
