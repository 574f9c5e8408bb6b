package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"envguard-hq/envguard/pkg/cli"
	"envguard-hq/envguard/pkg/history"
)

var historyFlags struct {
	limit  int
	format string
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded check runs",
	Long: `List past check runs recorded in the history database.

Recording must be enabled in the config file:

  history:
    enabled: true
    path: .envguard/history.db

Examples:
  # Show the 20 most recent runs
  envguard history --limit 20

  # JSON output
  envguard history --format json`,
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(&historyFlags.limit, "limit", 20, "maximum number of runs to show")
	historyCmd.Flags().StringVar(&historyFlags.format, "format", "text", "output format: text, json")
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	if !cfg.History.Enabled || cfg.History.Path == "" {
		return cli.NewConfigError("history", "run recording is not enabled (set history.enabled and history.path)")
	}

	store, err := history.NewSQLiteStore(cfg.History.Path)
	if err != nil {
		return cli.NewCommandError("history", fmt.Errorf("cannot open history store: %w", err))
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), historyFlags.limit)
	if err != nil {
		return cli.NewCommandError("history", err)
	}

	if historyFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(runs); err != nil {
			return cli.NewCommandError("history", err)
		}
		return nil
	}

	if len(runs) == 0 {
		fmt.Println("No check runs recorded.")
		return nil
	}

	for _, run := range runs {
		marker := "✓"
		if !run.Valid {
			marker = "✗"
		}
		fmt.Printf("%s  %s  %s vs %s", marker,
			run.CreatedAt.Format(time.RFC3339), run.Target, run.Reference)
		if len(run.Problems) > 0 {
			fmt.Printf("  (%d problem(s))", len(run.Problems))
		}
		fmt.Println()
		if verbose {
			for _, p := range run.Problems {
				fmt.Printf("     %s\n", p)
			}
		}
	}

	return nil
}
