package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"envguard-hq/envguard/pkg/cli"
	"envguard-hq/envguard/pkg/config"
	"envguard-hq/envguard/pkg/envfile/parser"
	"envguard-hq/envguard/pkg/envfile/validator"
	"envguard-hq/envguard/pkg/history"
)

var checkFlags struct {
	format string
}

var checkCmd = &cobra.Command{
	Use:   "check [target] [sample]",
	Short: "Validate an env file against its sample",
	Long: `Validate a target dotenv file against a reference sample file.

The check passes only when both files parse, neither contains duplicate
keys, and both define exactly the same key set. Values are ignored.

When target and sample are omitted they are taken from the config file,
defaulting to .env and .env.sample.

Examples:
  # Validate .env against .env.sample
  envguard check

  # Validate explicit files
  envguard check deploy/.env deploy/.env.example

  # JSON output for CI/CD
  envguard check --format json`,
	Args: cobra.MaximumNArgs(2),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&checkFlags.format, "format", "text", "output format: text, json")
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	target := cfg.Files.Target
	sample := cfg.Files.Sample
	if len(args) > 0 {
		target = args[0]
	}
	if len(args) > 1 {
		sample = args[1]
	}

	result, err := executeCheck(target, sample)
	if err != nil {
		fmt.Printf("✗ %v\n", err)
		return cli.NewCommandError("check", err)
	}

	if checkFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return cli.NewCommandError("check", err)
		}
	} else {
		validator.NewReporter(os.Stdout).Report(result)
	}

	recordRun(cfg, result)

	if !result.Valid {
		return cli.NewCommandError("check", fmt.Errorf("validation failed"))
	}
	return nil
}

// executeCheck parses both files and validates the target against the
// sample. It returns an error when either file is missing or fails to
// parse; validation problems are reported through the Result, not the
// error.
func executeCheck(target, sample string) (*validator.Result, error) {
	for _, path := range []string{target, sample} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("file not found: %s", path)
		}
	}

	p := parser.NewParser()

	targetFile, err := p.Parse(target)
	if err != nil {
		return nil, err
	}
	sampleFile, err := p.Parse(sample)
	if err != nil {
		return nil, err
	}

	return validator.NewEngine().Check(targetFile, sampleFile), nil
}

// recordRun saves the result to the history store when recording is
// enabled. Recording failures never fail the check itself.
func recordRun(cfg *config.Config, result *validator.Result) {
	if !cfg.History.Enabled {
		return
	}

	store, err := history.NewSQLiteStore(cfg.History.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open history store: %v\n", err)
		return
	}
	defer store.Close()

	run := history.NewRun(result.Target, result.Reference, result.Valid, result.Diagnostics())
	if err := store.Save(context.Background(), run); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot record check run: %v\n", err)
	}
}
