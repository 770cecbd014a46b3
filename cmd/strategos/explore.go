package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/strategos/strategos/internal/generation"
)

func newExploreCmd() *cobra.Command {
	var (
		cfgPath     string
		userContext string
	)

	cmd := &cobra.Command{
		Use:   "explore [question]",
		Short: "Generate and score strategy candidates for a question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			app, err := openApp(ctx, cfgPath)
			if err != nil {
				return err
			}
			defer app.Close()

			question := strings.Join(args, " ")
			e, err := app.Generation.Generate(ctx, generation.Request{
				Question: question,
				Context:  userContext,
			})
			if err != nil {
				return err
			}

			res, err := app.Explorations.GetResult(ctx, e.ID)
			if err != nil {
				return fmt.Errorf("load result: %w", err)
			}

			fmt.Printf("Exploration %s: %d strategies\n\n", e.ID, len(res.Strategies))
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(res)
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&userContext, "context", "", "Extra context for the oracle")

	return cmd
}
