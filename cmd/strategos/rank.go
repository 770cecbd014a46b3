package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strategos/strategos/internal/ranking"
	"github.com/strategos/strategos/pkg/scoring"
	"github.com/strategos/strategos/pkg/surface"
)

func newRankCmd() *cobra.Command {
	var (
		cfgPath   string
		limit     int
		minScore  float64
		judgment  string
		userID    string
		outputFmt string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank all strategies under the current weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if judgment != "" && !scoring.Judgment(judgment).Valid() {
				return fmt.Errorf("invalid judgment %q", judgment)
			}

			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			weights, err := app.Weights.Get(ctx, userID)
			if err != nil {
				return err
			}

			result, err := app.Ranking.Rank(ctx, ranking.Options{
				Limit:    limit,
				MinScore: minScore,
				Judgment: scoring.Judgment(judgment),
				Weights:  weights,
			})
			if err != nil {
				return err
			}

			return surface.ForFormat(outputFmt).Render(os.Stdout, result)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum strategies to show (0 = all)")
	cmd.Flags().Float64Var(&minScore, "min-score", 0, "Minimum total score filter")
	cmd.Flags().StringVar(&judgment, "judgment", "", "Filter by judgment: priority, conditional, or decline")
	cmd.Flags().StringVar(&userID, "user", "", "User whose weight vector to apply")
	cmd.Flags().StringVar(&outputFmt, "output", "text", "Output format: text, json, or markdown")

	return cmd
}
