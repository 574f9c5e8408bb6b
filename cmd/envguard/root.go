package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"envguard-hq/envguard/pkg/cli"
	"envguard-hq/envguard/pkg/config"
)

var (
	// Global flags
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "envguard",
	Short: "Envguard - dotenv file validation against a reference sample",
	Long: `Envguard keeps .env files honest. It parses dotenv-style files
(KEY=VALUE lines, comments, quoted and multi-line values) and validates a
target file against a reference sample:

  - every key defined in the sample must be present in the target
  - the target must not define keys the sample doesn't know
  - neither file may define the same key twice

Values are never compared, so secrets never leave the machine.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global persistent flags (available to all subcommands)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "envguard.yaml", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadToolConfig loads the tool configuration, falling back to defaults
// when no config file exists.
func loadToolConfig() (*config.Config, error) {
	cfg, err := config.LoadOrDefault(cfgFile)
	if err != nil {
		return nil, cli.NewConfigError("", err.Error())
	}
	return cfg, nil
}
