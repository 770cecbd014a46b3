package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/strategos/strategos/internal/baseline"
)

func newBaselineCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "baseline",
		Short: "Record and inspect score baselines",
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file")

	record := &cobra.Command{
		Use:   "record",
		Short: "Append a baseline snapshot of the current population",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			b, err := app.Baselines.Record(ctx, nil)
			if err != nil {
				return err
			}
			if b == nil {
				fmt.Println("No strategies yet; nothing recorded.")
				return nil
			}
			printBaseline(b)
			return nil
		},
	}

	current := &cobra.Command{
		Use:   "current",
		Short: "Show the most recent baseline",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			b, err := app.Baselines.Current(ctx)
			if err != nil {
				return err
			}
			if b == nil {
				fmt.Println("No baseline recorded yet.")
				return nil
			}
			printBaseline(b)
			return nil
		},
	}

	var historyLimit int
	history := &cobra.Command{
		Use:   "history",
		Short: "Show baseline history, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			list, err := app.Baselines.History(ctx, historyLimit)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(list)
		},
	}
	history.Flags().IntVar(&historyLimit, "limit", 20, "Number of baselines to show")

	cmd.AddCommand(record, current, history)
	return cmd
}

func printBaseline(b *baseline.Baseline) {
	fmt.Printf("Baseline %s (%s)\n", b.ID, b.CreatedAt.Format("2006-01-02 15:04"))
	fmt.Printf("  top %.2f  avg %.2f  strategies %d  high scorers %d\n",
		b.TopScore, b.AvgScore, b.TotalStrategies, b.HighScoreCount)
	if b.Improvement != nil {
		fmt.Printf("  improvement %+.1f%%\n", *b.Improvement)
	}
}
