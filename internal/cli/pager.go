package cli

import (
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

// runPager pipes content through $PAGER (or "less -R" fallback) when w is a
// terminal. Otherwise content is copied to w unchanged.
func runPager(w io.Writer, r io.Reader) error {
	if !isTerminal(w) {
		_, err := io.Copy(w, r)
		return err
	}

	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less"
	}

	var args []string
	if strings.HasSuffix(pager, "less") {
		args = []string{"-R"}
	}

	cmd := exec.Command(pager, args...) //nolint:gosec // G204: pager is from $PAGER env or "less" default
	cmd.Stdin = r
	cmd.Stdout = w
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		// pager missing, print directly
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			_, copyErr := io.Copy(w, r)
			return copyErr
		}
		return err
	}
	return nil
}
