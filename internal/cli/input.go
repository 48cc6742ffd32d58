package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

const stdinName = "<stdin>"

// readInput returns the whole capture and a name for it in messages.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0]) //nolint:gosec // G304: path is the user's input file
		if err != nil {
			return nil, args[0], fmt.Errorf("read input: %w", err)
		}
		return data, args[0], nil
	}

	in := cmd.InOrStdin()
	if isTerminal(in) {
		slog.Warn("reading capture from the terminal, end input with Ctrl-D")
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, stdinName, fmt.Errorf("read stdin: %w", err)
	}
	return data, stdinName, nil
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd())) //nolint:gosec // fd conversion is safe on all supported platforms
}
