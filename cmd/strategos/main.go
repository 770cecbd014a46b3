// Package main provides the strategos CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "strategos",
		Short: "Winning-strategy exploration and scoring",
		Long: `Strategos generates strategy candidates with an LLM oracle, scores them
on six weighted axes, and tracks how the population improves over time.`,
		Version: version,
	}

	rootCmd.AddCommand(
		newExploreCmd(),
		newRankCmd(),
		newBaselineCmd(),
		newArchiveCmd(),
		newEvolveCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
