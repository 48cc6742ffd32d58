// Package theme maps unresolved terminal colors to display colors.
package theme

import (
	"fmt"
	"sort"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Keys a theme may define: the two defaults plus the 8 base color names.
const (
	KeyBackground = "background"
	KeyForeground = "foreground"
)

// Theme is a named palette. Colors maps a key (background, foreground or a
// base color name) to a display color such as "#ff5555".
type Theme struct {
	Name   string
	Colors map[string]string
}

// Background returns the canvas color.
func (t Theme) Background() string { return t.lookup(KeyBackground) }

// Foreground returns the color for text with no explicit foreground.
func (t Theme) Foreground() string { return t.lookup(KeyForeground) }

// lookup returns the theme color for key, or key itself when the theme does
// not define it.
func (t Theme) lookup(key string) string {
	if v, ok := t.Colors[strings.ToLower(key)]; ok {
		return v
	}
	return key
}

var builtins = []Theme{
	{Name: "dracula", Colors: map[string]string{
		"background": "#282a36",
		"foreground": "#f8f8f2",
		"black":      "#21222c",
		"red":        "#ff5555",
		"green":      "#50fa7b",
		"yellow":     "#f1fa8c",
		"blue":       "#bd93f9",
		"magenta":    "#ff79c6",
		"cyan":       "#8be9fd",
		"white":      "#f8f8f2",
	}},
	{Name: "nord", Colors: map[string]string{
		"background": "#2e3440",
		"foreground": "#d8dee9",
		"black":      "#3b4252",
		"red":        "#bf616a",
		"green":      "#a3be8c",
		"yellow":     "#ebcb8b",
		"blue":       "#81a1c1",
		"magenta":    "#b48ead",
		"cyan":       "#88c0d0",
		"white":      "#e5e9f0",
	}},
	{Name: "github-dark", Colors: map[string]string{
		"background": "#0d1117",
		"foreground": "#c9d1d9",
		"black":      "#21262d",
		"red":        "#f85149",
		"green":      "#7ee787",
		"yellow":     "#f2cc60",
		"blue":       "#79c0ff",
		"magenta":    "#d2a8ff",
		"cyan":       "#39d0d6",
		"white":      "#f0f6fc",
	}},
	{Name: "catppuccin-mocha", Colors: map[string]string{
		"background": "#1e1e2e",
		"foreground": "#cdd6f4",
		"black":      "#45475a",
		"red":        "#f38ba8",
		"green":      "#a6e3a1",
		"yellow":     "#f9e2af",
		"blue":       "#89b4fa",
		"magenta":    "#cba6f7",
		"cyan":       "#94e2d5",
		"white":      "#f5e0dc",
	}},
}

// Builtin returns the built-in themes in order; the first is the default.
func Builtin() []Theme {
	out := make([]Theme, len(builtins))
	copy(out, builtins)
	return out
}

// Default returns the first built-in theme.
func Default() Theme { return builtins[0] }

// IsBuiltin reports whether name is a built-in theme.
func IsBuiltin(name string) bool {
	for _, t := range builtins {
		if t.Name == name {
			return true
		}
	}
	return false
}

var validKeys = map[string]bool{
	KeyBackground: true, KeyForeground: true,
	"black": true, "red": true, "green": true, "yellow": true,
	"blue": true, "magenta": true, "cyan": true, "white": true,
}

// New builds a custom theme. Keys are case-insensitive; values must be hex
// colors and are normalized to lower-case "#rrggbb". background and
// foreground are required; missing base colors resolve to their own name.
func New(name string, colors map[string]string) (Theme, error) {
	if name == "" {
		return Theme{}, fmt.Errorf("theme name is empty")
	}
	t := Theme{Name: name, Colors: make(map[string]string, len(colors))}

	keys := make([]string, 0, len(colors))
	for k := range colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		key := strings.ToLower(k)
		if !validKeys[key] {
			return Theme{}, fmt.Errorf("theme %q: unknown color key %q", name, k)
		}
		c, err := colorful.Hex(colors[k])
		if err != nil {
			return Theme{}, fmt.Errorf("theme %q: %s: invalid color %q: %w", name, k, colors[k], err)
		}
		t.Colors[key] = c.Hex()
	}
	for _, key := range []string{KeyBackground, KeyForeground} {
		if _, ok := t.Colors[key]; !ok {
			return Theme{}, fmt.Errorf("theme %q: missing %s color", name, key)
		}
	}
	return t, nil
}
