// Package config loads ~/.ansisnap/config.yaml: the default theme name and
// any custom themes.
package config

// ABOUTME: Reads config.yaml through a yaml.Node tree so custom themes keep
// ABOUTME: their declaration order and errors can name the offending line.

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/kstenerud/ansisnap/internal/theme"
	"gopkg.in/yaml.v3"
)

// Config is the validated contents of config.yaml.
type Config struct {
	// Theme is the theme used when --theme is not given.
	Theme string
	// Custom holds the themes declared under "themes", in file order.
	Custom []theme.Theme
	// Themes is the built-in themes followed by Custom.
	Themes *theme.Registry
}

// Path returns the location of config.yaml under the user's home directory.
func Path() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ansisnap", "config.yaml"), nil
}

// Load reads config.yaml. A missing file yields the defaults.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath) //nolint:gosec // G304: path is ~/.ansisnap/config.yaml
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("no config file", "path", configPath)
			return Parse(nil)
		}
		return nil, NewConfigError("read config.yaml: %w", err)
	}

	slog.Debug("loading config", "path", configPath)
	return Parse(data)
}

// Parse validates config.yaml contents. Empty data yields the defaults.
func Parse(data []byte) (*Config, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, NewConfigError("parse config.yaml: %w", err)
	}

	cfg := &Config{}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root := doc.Content[0]
		switch {
		case root.Kind == yaml.ScalarNode && root.Tag == "!!null":
			// comments only
		case root.Kind != yaml.MappingNode:
			return nil, NewConfigError("config.yaml line %d: top level must be a mapping", root.Line)
		default:
			if err := cfg.readRoot(root); err != nil {
				return nil, err
			}
		}
	}

	reg, err := theme.NewRegistry(cfg.Custom...)
	if err != nil {
		return nil, NewConfigError("config.yaml: %w", err)
	}
	cfg.Themes = reg

	if cfg.Theme == "" {
		cfg.Theme = theme.Default().Name
	} else if _, ok := reg.Lookup(cfg.Theme); !ok {
		return nil, NewConfigError("config.yaml: unknown default theme %q", cfg.Theme)
	}
	return cfg, nil
}

func (c *Config) readRoot(root *yaml.Node) error {
	for i := 0; i < len(root.Content)-1; i += 2 {
		key := root.Content[i]
		val := root.Content[i+1]

		switch key.Value {
		case "theme":
			if val.Kind != yaml.ScalarNode {
				return NewConfigError("config.yaml line %d: theme must be a string", val.Line)
			}
			c.Theme = val.Value
		case "themes":
			if err := c.readThemes(val); err != nil {
				return err
			}
		default:
			slog.Debug("ignoring unknown config key", "key", key.Value, "line", key.Line)
		}
	}
	return nil
}

func (c *Config) readThemes(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return NewConfigError("config.yaml line %d: themes must be a mapping", node.Line)
	}
	for i := 0; i < len(node.Content)-1; i += 2 {
		name := node.Content[i]
		body := node.Content[i+1]
		if body.Kind != yaml.MappingNode {
			return NewConfigError("config.yaml line %d: theme %q must be a mapping of colors", body.Line, name.Value)
		}

		colors := make(map[string]string, len(body.Content)/2)
		for j := 0; j < len(body.Content)-1; j += 2 {
			k, v := body.Content[j], body.Content[j+1]
			if v.Kind != yaml.ScalarNode {
				return NewConfigError("config.yaml line %d: color %q of theme %q must be a string", v.Line, k.Value, name.Value)
			}
			colors[k.Value] = v.Value
		}

		t, err := theme.New(name.Value, colors)
		if err != nil {
			return NewConfigError("config.yaml line %d: %w", name.Line, err)
		}
		c.Custom = append(c.Custom, t)
	}
	return nil
}
