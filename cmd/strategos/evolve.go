package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/strategos/strategos/internal/evolution"
)

func newEvolveCmd() *cobra.Command {
	var (
		cfgPath string
		mode    string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Generate new strategies seeded from proven ones",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			ex, seeds, err := app.Evolution.Evolve(ctx, mode, limit, false)
			if err != nil {
				return err
			}

			fmt.Printf("Seeded %s run from %d strategies:\n", mode, len(seeds))
			for _, s := range seeds {
				fmt.Printf("  - %s (%.2f)\n", s.Name, s.TotalScore)
			}
			fmt.Printf("\nExploration %s completed.\n", ex.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&mode, "mode", evolution.ModeMutate, "Evolution mode: mutate, crossover, or refute")
	cmd.Flags().IntVar(&limit, "limit", evolution.DefaultSeedLimit, "Maximum seed strategies")

	return cmd
}
