// Package cli implements the fitgauge command-line evaluator. Commands read
// JSON inputs from files, run the engine and print JSON to stdout.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var compact bool

// NewRootCmd builds the top-level command with every subcommand attached
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "fitgauge",
		Short:         "Evaluate goal progress, strength tiers and catalog search",
		Long:          "Offline access to the fitgauge engine. Inputs are JSON files, output is JSON on stdout.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&compact, "compact", false, "Print JSON without indentation")

	root.AddCommand(
		newProgressCmd(),
		newTiersCmd(),
		newSearchCmd(),
		newTokenCmd(),
	)
	return root
}

// Execute runs the CLI and exits non-zero on failure
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		exitErr(err)
	}
}

func exitErr(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	var (
		b   []byte
		err error
	)
	if compact {
		b, err = json.Marshal(v)
	} else {
		b, err = json.MarshalIndent(v, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return err
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}
