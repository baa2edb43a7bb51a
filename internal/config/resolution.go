package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/dkoosis/spooltag/pkg/render"
)

// Environment variables recognized by Resolve.
const (
	EnvColorsJSON = "SPOOLTAG_COLORS_JSON"
	EnvTheme      = "SPOOLTAG_THEME"
	EnvOutput     = "SPOOLTAG_OUTPUT"
	EnvNoColor    = "SPOOLTAG_NO_COLOR"
	EnvDebug      = "SPOOLTAG_DEBUG"
)

// Source names where a resolved value came from.
const (
	SourceCLI     = "cli"
	SourceEnv     = "env"
	SourceFile    = "file"
	SourceDefault = "default"
)

// Resolved holds the final configuration after applying all priority rules.
type Resolved struct {
	ColorsJSON string
	Theme      string
	Output     render.Mode
	NoColor    bool
	Debug      bool

	SpoolWidthDivisor float64
	LengthDivisor     float64

	// Resolution metadata
	ConfigPath       string // file actually loaded, empty when none
	ColorsJSONSource string
	ThemeSource      string
	OutputSource     string
	Warnings         []string
}

// Resolve merges flags, environment, config file and defaults, highest
// priority first.
func Resolve(flags CliFlags) (*Resolved, error) {
	res, err := load(flags.ConfigPath)
	if err != nil {
		return nil, err
	}
	file := res.cfg
	fileSource := SourceDefault
	if res.path != "" {
		fileSource = SourceFile
	}

	r := &Resolved{
		NoColor:           file.NoColor,
		Debug:             file.Debug,
		SpoolWidthDivisor: file.SpoolWidthDivisor,
		LengthDivisor:     file.LengthDivisor,
		ConfigPath:        res.path,
		Warnings:          res.warnings,
	}

	r.ColorsJSON, r.ColorsJSONSource = pick(flags.ColorsJSON, EnvColorsJSON, file.ColorsJSON, fileSource)
	r.Theme, r.ThemeSource = pick(flags.Theme, EnvTheme, file.Theme, fileSource)
	output, outputSource := pick(flags.Output, EnvOutput, file.Output, fileSource)
	r.OutputSource = outputSource

	if v := getEnvBool(EnvNoColor); v != nil {
		r.NoColor = *v
	} else if os.Getenv("NO_COLOR") != "" {
		r.NoColor = true
	}
	if os.Getenv(EnvDebug) != "" {
		r.Debug = true
	}

	mode, ok := render.ParseMode(output)
	if !ok {
		return nil, fmt.Errorf("invalid output %q from %s (must be: auto, terminal, plain, json)", output, outputSource)
	}
	r.Output = mode

	if err := validate(r); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return r, nil
}

// pick applies CLI > env > file/default for one string setting.
func pick(cli, envKey, file, fileSource string) (string, string) {
	if cli != "" {
		return cli, SourceCLI
	}
	if v := os.Getenv(envKey); v != "" {
		return v, SourceEnv
	}
	return file, fileSource
}

// getEnvBool reads a boolean from environment variables, trying multiple keys.
// Returns nil if none are set to a parseable value.
func getEnvBool(keys ...string) *bool {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			if b, err := strconv.ParseBool(val); err == nil {
				return &b
			}
		}
	}
	return nil
}

func validate(r *Resolved) error {
	if !render.ValidTheme(r.Theme) {
		return fmt.Errorf("invalid theme %q from %s (must be: default, orca, mono)", r.Theme, r.ThemeSource)
	}
	if r.ColorsJSON == "" {
		return fmt.Errorf("colors_json cannot be empty")
	}
	if r.SpoolWidthDivisor <= 0 {
		return fmt.Errorf("spool_width_divisor must be positive, got: %g", r.SpoolWidthDivisor)
	}
	if r.LengthDivisor <= 0 {
		return fmt.Errorf("length_divisor must be positive, got: %g", r.LengthDivisor)
	}
	return nil
}

// ThemeName is the theme to render with once NoColor is applied.
func (r *Resolved) ThemeName() string {
	if r.NoColor {
		return "mono"
	}
	return r.Theme
}
