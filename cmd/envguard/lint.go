package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"envguard-hq/envguard/pkg/cli"
	"envguard-hq/envguard/pkg/envfile/parser"
	"envguard-hq/envguard/pkg/envfile/validator"
)

var lintFlags struct {
	format string
}

var lintCmd = &cobra.Command{
	Use:   "lint [file]",
	Short: "Parse a single env file and report problems",
	Long: `Parse one dotenv file and report parse errors and duplicate keys.

Unlike check, lint needs no sample file; it only verifies that the file
itself is well-formed. When the file argument is omitted it is taken from
the config file, defaulting to .env.

Examples:
  # Lint the default target
  envguard lint

  # Lint an explicit file
  envguard lint deploy/.env

  # JSON output for CI/CD
  envguard lint .env --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLint,
}

func init() {
	rootCmd.AddCommand(lintCmd)

	lintCmd.Flags().StringVar(&lintFlags.format, "format", "text", "output format: text, json")
}

// LintResult is the lint outcome for a single file.
type LintResult struct {
	File     string   `json:"file"`
	Valid    bool     `json:"valid"`
	Problems []string `json:"problems,omitempty"`
}

func runLint(cmd *cobra.Command, args []string) error {
	cfg, err := loadToolConfig()
	if err != nil {
		return err
	}

	file := cfg.Files.Target
	if len(args) > 0 {
		file = args[0]
	}

	result := lintFile(file)

	if lintFlags.format == "json" {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return cli.NewCommandError("lint", err)
		}
	} else {
		fmt.Printf("Linting %s...\n", result.File)
		if result.Valid {
			fmt.Println("✓ File parses cleanly")
			fmt.Println("✓ No duplicate keys")
		}
		for _, p := range result.Problems {
			fmt.Printf("✗ %s\n", p)
		}
	}

	if !result.Valid {
		return cli.NewCommandError("lint", fmt.Errorf("lint failed"))
	}
	return nil
}

// lintFile parses one file and collects its problems.
func lintFile(path string) LintResult {
	result := LintResult{File: path, Valid: true}

	parsed, err := parser.NewParser().Parse(path)
	if err != nil {
		result.Valid = false
		result.Problems = append(result.Problems, err.Error())
		return result
	}

	for _, key := range validator.Duplicates(parsed.Keys()) {
		result.Valid = false
		result.Problems = append(result.Problems,
			fmt.Sprintf("duplicate key %q in %s", key, path))
	}

	return result
}
