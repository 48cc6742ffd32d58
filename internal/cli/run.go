package cli

// ABOUTME: The root command's pipeline: load config, pick a theme, read the
// ABOUTME: capture, decode, replay, render, and only then write output.

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"

	"github.com/kstenerud/ansisnap/internal/ansi"
	"github.com/kstenerud/ansisnap/internal/config"
	"github.com/kstenerud/ansisnap/internal/render"
	"github.com/kstenerud/ansisnap/internal/screen"
	"github.com/kstenerud/ansisnap/internal/theme"
	"github.com/spf13/cobra"
)

// options mirrors the root command's flags.
type options struct {
	decodeOnly bool
	json       bool
	svg        bool
	listThemes bool
	theme      string
	themeSet   bool
}

func readOptions(cmd *cobra.Command) (options, error) {
	var o options
	flags := cmd.Flags()
	o.decodeOnly, _ = flags.GetBool("decode-only")
	o.json, _ = flags.GetBool("json")
	o.svg, _ = flags.GetBool("svg")
	o.listThemes, _ = flags.GetBool("list-themes")
	o.theme, _ = flags.GetString("theme")
	o.themeSet = flags.Changed("theme")

	if o.json && !o.decodeOnly {
		return o, config.NewUsageError("--json requires --decode-only")
	}
	if o.svg && o.decodeOnly {
		return o, config.NewUsageError("--svg and --decode-only cannot be used together")
	}
	return o, nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	logger := setupLogging(cmd)

	opts, err := readOptions(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if opts.listThemes {
		return listThemes(cmd.OutOrStdout(), cfg.Themes)
	}

	name := cfg.Theme
	if opts.themeSet {
		name = opts.theme
	}
	th, err := lookupTheme(cfg.Themes, name)
	if err != nil {
		return err
	}
	logger.Debug("theme selected", "theme", th.Name)

	data, source, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	logger.Debug("input read", "source", source, "bytes", len(data))

	out, err := convert(data, opts, th, logger)
	if err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	if opts.decodeOnly && !opts.json {
		return runPager(cmd.OutOrStdout(), strings.NewReader(out))
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// convert runs the whole pipeline in memory and returns the text to print.
func convert(data []byte, opts options, th theme.Theme, logger *slog.Logger) (string, error) {
	tokens, err := ansi.NewDecoder(logger).Decode(data)
	if err != nil {
		return "", err
	}
	logger.Debug("decoded", "tokens", len(tokens))

	if opts.decodeOnly {
		if opts.json {
			var buf bytes.Buffer
			if err := writeJSON(&buf, tokenObjects(tokens)); err != nil {
				return "", err
			}
			return buf.String(), nil
		}
		var sb strings.Builder
		for _, tok := range tokens {
			sb.WriteString(tok.String())
			sb.WriteByte('\n')
		}
		return sb.String(), nil
	}

	s, err := screen.Run(tokens)
	if err != nil {
		return "", err
	}
	logger.Debug("screen built", "rows", s.Height(), "cols", s.Width())

	if opts.svg {
		return render.SVG(s, th) + "\n", nil
	}
	return render.Text(s), nil
}
