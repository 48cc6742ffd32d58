package cli

import (
	"log/slog"

	"github.com/spf13/cobra"
)

// logLevel maps -v/-q counts to a level. Warnings show by default.
func logLevel(verbose, quiet int) slog.Level {
	switch {
	case verbose > 0:
		return slog.LevelDebug
	case quiet > 0:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// setupLogging installs a text handler on the command's stderr as the
// default logger and returns it.
func setupLogging(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetCount("verbose")
	quiet, _ := cmd.Flags().GetCount("quiet")

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: logLevel(verbose, quiet),
	}))
	slog.SetDefault(logger)
	return logger
}
