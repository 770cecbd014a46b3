package generation

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a strategy consultant generating winning-strategy
candidates for a corporate strategy team. Always respond with a single JSON
object and no other text.`

// buildPrompt assembles the user prompt: question, user-supplied context,
// gathered reference sections, and the required response schema.
func buildPrompt(req Request, sections []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Question\n%s\n\n", req.Question)
	if strings.TrimSpace(req.Context) != "" {
		fmt.Fprintf(&b, "# Context\n%s\n\n", req.Context)
	}
	if len(sections) > 0 {
		b.WriteString("# Reference\n")
		for _, s := range sections {
			b.WriteString(s)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(`# Instructions
Propose 3 to 5 distinct strategy candidates. Score every strategy on six
axes, each an integer from 1 (weak) to 5 (strong): revenuePotential,
timeToRevenue, competitiveAdvantage, executionFeasibility, hqContribution,
mergerSynergy.

Respond with exactly this JSON shape:
{
  "strategies": [
    {
      "name": "short unique name",
      "reason": "why this could win",
      "howToObtain": "concrete steps to realize it",
      "metrics": "how success would be measured",
      "confidence": "high | medium | low",
      "tags": ["free-text labels"],
      "scores": {
        "revenuePotential": 1,
        "timeToRevenue": 1,
        "competitiveAdvantage": 1,
        "executionFeasibility": 1,
        "hqContribution": 1,
        "mergerSynergy": 1
      }
    }
  ],
  "thinkingProcess": "brief narrative of how you reasoned"
}`)

	return b.String()
}
