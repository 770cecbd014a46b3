package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newArchiveCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Curate the top-strategy archive",
	}
	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file")

	var minScore float64
	run := &cobra.Command{
		Use:   "run",
		Short: "Archive strategies above the score bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			bar := minScore
			if bar <= 0 {
				bar = app.Config.Scoring.ArchiveMinScore
			}
			res, err := app.Curator.Archive(ctx, bar)
			if err != nil {
				return err
			}
			fmt.Printf("Archived %d new strategies (%d qualify at >= %.1f).\n",
				res.Archived, res.Total, bar)
			return nil
		},
	}
	run.Flags().Float64Var(&minScore, "min-score", 0, "Score bar (default from config)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List archived strategies, highest score first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			entries, err := app.ArchiveStore.List(ctx)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("Archive is empty.")
				return nil
			}
			for i, e := range entries {
				fmt.Printf("%2d. %.2f %s  (%s, %s)\n",
					i+1, e.TotalScore, e.Name, e.Judgment, e.ExplorationID)
			}
			return nil
		},
	}

	cmd.AddCommand(run, list)
	return cmd
}
