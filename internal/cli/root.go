// Package cli defines the Cobra command for the ansisnap CLI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/kstenerud/ansisnap/internal/config"
	"github.com/spf13/cobra"
)

// Execute runs the root command and returns the exit code.
func Execute(ctx context.Context, version, commit, date string) int {
	rootCmd := newRootCmd(version, commit, date)

	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "ansisnap: %s\n", err) //nolint:errcheck // best-effort stderr write
	return exitCode(err)
}

// exitCode maps an error from the root command to a process exit code.
func exitCode(err error) int {
	var usageErr *config.UsageError
	if errors.As(err, &usageErr) {
		return 2
	}
	return 1
}

// newRootCmd creates the root Cobra command. There are no subcommands; the
// single positional argument is the capture file.
func newRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ansisnap [flags] [file]",
		Short: "Render captured terminal output as plain text or SVG",
		Long: `Decode a captured terminal byte stream, replay it on a virtual screen,
and print the final screen as plain text or as a themed SVG image.

Input is read from the named file, or from stdin when no file is given.
Unrecognized escape sequences are errors: nothing is printed unless the
whole capture decodes and replays cleanly.`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		Args:          maxOneFile,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runRoot,
	}
	rootCmd.SetVersionTemplate("ansisnap version {{.Version}}\n")
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &config.UsageError{Err: err}
	})

	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (-v for debug)")
	rootCmd.PersistentFlags().CountP("quiet", "q", "Suppress warnings (errors only)")

	flags := rootCmd.Flags()
	flags.Bool("decode-only", false, "Print the decoded token stream instead of rendering")
	flags.Bool("json", false, "With --decode-only, print tokens as a JSON array")
	flags.Bool("svg", false, "Render the screen as SVG instead of plain text")
	flags.String("theme", "", "Color theme for SVG output (default from config, else dracula)")
	flags.Bool("list-themes", false, "List available color themes")

	return rootCmd
}

func maxOneFile(_ *cobra.Command, args []string) error {
	if len(args) > 1 {
		return config.NewUsageError("accepts at most one input file, received %d", len(args))
	}
	return nil
}
