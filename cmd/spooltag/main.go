// spooltag decodes RFID/NFC memory dumps captured from 3D-printer filament
// spools into named fields: color, weight, diameter, temperatures, dates.
//
// Usage:
//
//	spooltag spool.nfc
//	spooltag --format proxmark --colors-json colors.json dump.bin
//	spooltag spool.nfc --output json
//
// Accepts three dump encodings:
//   - Flipper NFC text dumps
//   - Proxmark JSON dumps
//   - raw binary dumps (16-byte blocks)
//
// Output modes (auto-detected):
//
//	terminal  styled output with color swatches (default when TTY)
//	plain     one "Block N - Field: value" line per field (default when piped)
//	json      structured JSON for automation
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"

	"golang.org/x/term"

	"github.com/dkoosis/spooltag/internal/config"
	"github.com/dkoosis/spooltag/internal/detect"
	"github.com/dkoosis/spooltag/internal/version"
	"github.com/dkoosis/spooltag/pkg/colors"
	"github.com/dkoosis/spooltag/pkg/dump"
	"github.com/dkoosis/spooltag/pkg/mapper"
	"github.com/dkoosis/spooltag/pkg/pattern"
	"github.com/dkoosis/spooltag/pkg/render"
	"github.com/dkoosis/spooltag/pkg/spool"
	"github.com/dkoosis/spooltag/pkg/viewer"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type options struct {
	format      string
	interactive bool
	version     bool
	flags       config.CliFlags
	paths       []string
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if opts.version {
		fmt.Fprintln(stdout, version.String())
		return 0
	}
	if len(opts.paths) != 1 {
		fmt.Fprintf(stderr, "spooltag: expected exactly one dump path, got %d\n", len(opts.paths))
		fmt.Fprintf(stderr, "Usage: spooltag [flags] <dump>\n")
		return 2
	}
	path := opts.paths[0]

	override, err := dump.ParseFormat(opts.format)
	if err != nil {
		fmt.Fprintf(stderr, "spooltag: %v\n", err)
		return 2
	}

	cfg, err := config.Resolve(opts.flags)
	if err != nil {
		fmt.Fprintf(stderr, "spooltag: %v\n", err)
		return 2
	}
	for _, w := range cfg.Warnings {
		fmt.Fprintf(stderr, "spooltag: warning: %s\n", w)
	}
	debugf := func(format string, args ...any) {
		if cfg.Debug {
			fmt.Fprintf(stderr, "[debug] "+format+"\n", args...)
		}
	}
	if cfg.ConfigPath != "" {
		debugf("config: %s", cfg.ConfigPath)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "spooltag: file not found: %s\n", path)
		} else {
			fmt.Fprintf(stderr, "spooltag: reading dump: %v\n", err)
		}
		return 1
	}

	table, err := colors.LoadFile(cfg.ColorsJSON)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintf(stderr, "spooltag: colors JSON not found: %s\n", cfg.ColorsJSON)
		} else {
			fmt.Fprintf(stderr, "spooltag: %v\n", err)
		}
		return 1
	}
	debugf("colors: %s (%s, %d filament types)", cfg.ColorsJSON, cfg.ColorsJSONSource, len(table))

	format := dump.Select(path, data, override)
	if override == dump.FormatAuto && detect.Sniff(data) == detect.Unknown && detect.ByExtension(path) == detect.Unknown {
		debugf("no capture marker or known extension on %s, assuming %s", path, format)
	}
	d, err := dump.Parse(path, data, format)
	if err != nil {
		fmt.Fprintf(stderr, "spooltag: %v\n", err)
		return 1
	}
	debugf("format: %s, raw: %t, blocks: %d", d.Format, d.Raw, len(d.Blocks))
	if d.Malformed > 0 {
		fmt.Fprintf(stderr, "spooltag: warning: %d malformed entries skipped\n", d.Malformed)
	}

	decoder := spool.NewDecoder(spool.Config{
		SpoolWidthDivisor: cfg.SpoolWidthDivisor,
		LengthDivisor:     cfg.LengthDivisor,
	}, colors.NewResolver(table))
	patterns := mapper.FromTag(decoder.Decode(d))

	theme := render.ThemeByName(cfg.ThemeName())
	if opts.interactive {
		if !isTTYWriter(stdout) {
			fmt.Fprintf(stderr, "spooltag: --interactive requires a terminal\n")
			return 2
		}
		return runViewer(patterns, theme, stderr)
	}

	mode := resolveMode(cfg.Output, stdout)
	debugf("output: %s (%s), theme: %s", mode, cfg.OutputSource, theme.Name)
	fmt.Fprint(stdout, selectRenderer(mode, theme, stdout).Render(patterns))
	return 0
}

// parseArgs parses flags that may appear before or after the positional dump
// path. flag.FlagSet stops at the first non-flag argument, so parsing resumes
// after each positional.
func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	flagSet := flag.NewFlagSet("spooltag", flag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&opts.format, "format", "", "Dump format override: flipper, proxmark")
	flagSet.StringVar(&opts.flags.ColorsJSON, "colors-json", "", "Color table JSON (default "+colors.DefaultFile+")")
	flagSet.StringVar(&opts.flags.Output, "output", "", "Output mode: auto, terminal, plain, json")
	flagSet.StringVar(&opts.flags.Theme, "theme", "", "Theme: default, orca, mono")
	flagSet.StringVar(&opts.flags.ConfigPath, "config", "", "Config file (default ./"+config.FileName+")")
	flagSet.BoolVar(&opts.interactive, "interactive", false, "Browse blocks interactively")
	flagSet.BoolVar(&opts.version, "version", false, "Print version and exit")

	rest := args
	for {
		if err := flagSet.Parse(rest); err != nil {
			return nil, err
		}
		rest = flagSet.Args()
		if len(rest) == 0 {
			return opts, nil
		}
		opts.paths = append(opts.paths, rest[0])
		rest = rest[1:]
	}
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// termWidth returns the terminal width for w, defaulting to 80.
func termWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
			return tw
		}
	}
	return 80
}

// resolveMode maps auto to terminal on a TTY and plain otherwise.
func resolveMode(mode render.Mode, w io.Writer) render.Mode {
	if mode != render.ModeAuto {
		return mode
	}
	if isTTYWriter(w) {
		return render.ModeTerminal
	}
	return render.ModePlain
}

func selectRenderer(mode render.Mode, theme render.Theme, w io.Writer) render.Renderer {
	switch mode {
	case render.ModeJSON:
		return render.NewJSON()
	case render.ModePlain:
		return render.NewPlain()
	default:
		return render.NewTerminal(theme, termWidth(w), render.WithTrueColor())
	}
}

func runViewer(patterns []pattern.Pattern, theme render.Theme, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := viewer.Run(ctx, patterns, theme, render.WithTrueColor()); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(stderr, "spooltag: viewer: %v\n", err)
		return 1
	}
	return 0
}
