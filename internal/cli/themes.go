package cli

// ABOUTME: Theme listing and --theme validation, with close-match
// ABOUTME: suggestions for misspelled theme names.

import (
	"fmt"
	"io"
	"strings"

	"github.com/kstenerud/ansisnap/internal/config"
	"github.com/kstenerud/ansisnap/internal/theme"
)

func listThemes(w io.Writer, reg *theme.Registry) error {
	var sb strings.Builder
	sb.WriteString("Available color themes:\n")
	for _, name := range reg.Names() {
		fmt.Fprintf(&sb, "  %s\n", name)
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

// lookupTheme resolves a theme name for output. Unlike theme.Registry.Get it
// does not fall back: an unknown name is a ConfigError.
func lookupTheme(reg *theme.Registry, name string) (theme.Theme, error) {
	if t, ok := reg.Lookup(name); ok {
		return t, nil
	}
	return theme.Theme{}, unknownThemeError(reg, name)
}

func unknownThemeError(reg *theme.Registry, name string) error {
	var suggestions []string
	for _, candidate := range reg.Names() {
		if levenshtein(strings.ToLower(name), candidate) <= 3 {
			suggestions = append(suggestions, candidate)
		}
	}

	if len(suggestions) > 0 {
		return config.NewConfigError("unknown theme %q\n\nDid you mean: %s?\n\nRun 'ansisnap --list-themes' to list all themes.",
			name, strings.Join(suggestions, ", "))
	}
	return config.NewConfigError("unknown theme %q\n\nAvailable themes: %s\nRun 'ansisnap --list-themes' to list all themes.",
		name, strings.Join(reg.Names(), ", "))
}

// levenshtein computes the Levenshtein distance between two strings.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
