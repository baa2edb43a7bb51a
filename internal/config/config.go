package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/spooltag/pkg/colors"
	"github.com/dkoosis/spooltag/pkg/spool"
)

// FileName is the config file looked up in the working directory and the
// user config directory.
const FileName = ".spooltag.yaml"

// CliFlags holds the values of command-line flags. Empty strings mean the
// flag was not given.
type CliFlags struct {
	ConfigPath string
	ColorsJSON string
	Theme      string
	Output     string
}

// AppConfig represents the contents of .spooltag.yaml.
type AppConfig struct {
	ColorsJSON        string  `yaml:"colors_json,omitempty"`
	Theme             string  `yaml:"theme,omitempty"`
	Output            string  `yaml:"output,omitempty"`
	NoColor           bool    `yaml:"no_color"`
	Debug             bool    `yaml:"debug"`
	SpoolWidthDivisor float64 `yaml:"spool_width_divisor,omitempty"`
	LengthDivisor     float64 `yaml:"length_divisor,omitempty"`
}

// Constants for default values.
const (
	DefaultTheme  = "default"
	DefaultOutput = "auto"
)

// Defaults returns the hardcoded configuration.
func Defaults() *AppConfig {
	return &AppConfig{
		ColorsJSON:        colors.DefaultFile,
		Theme:             DefaultTheme,
		Output:            DefaultOutput,
		SpoolWidthDivisor: spool.DefaultSpoolWidthDivisor,
		LengthDivisor:     spool.DefaultLengthDivisor,
	}
}

// loadResult carries the merged file config plus what happened while loading.
type loadResult struct {
	cfg      *AppConfig
	path     string
	warnings []string
}

// load reads the config file at explicitPath, or the first of
// ./.spooltag.yaml and the user config dir copy that exists. A missing
// explicit file is an error; unreadable or invalid YAML is a warning and
// defaults are used.
func load(explicitPath string) (*loadResult, error) {
	res := &loadResult{cfg: Defaults()}

	path := explicitPath
	if path == "" {
		path = getConfigPath()
	}
	if path == "" {
		debugf("no %s found, using defaults", FileName)
		return res, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if explicitPath != "" {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			res.warnings = append(res.warnings, fmt.Sprintf("error reading config file %s: %v; using defaults", path, err))
		}
		return res, nil
	}

	var fromFile AppConfig
	if err := yaml.Unmarshal(data, &fromFile); err != nil {
		res.warnings = append(res.warnings, fmt.Sprintf("error parsing config file %s: %v; using defaults", path, err))
		return res, nil
	}
	res.path = path
	merge(res.cfg, &fromFile)
	debugf("loaded config from %s", path)
	return res, nil
}

// merge copies every value set in src onto dst.
func merge(dst, src *AppConfig) {
	if src.ColorsJSON != "" {
		dst.ColorsJSON = src.ColorsJSON
	}
	if src.Theme != "" {
		dst.Theme = src.Theme
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	dst.NoColor = src.NoColor
	dst.Debug = src.Debug
	if src.SpoolWidthDivisor != 0 {
		dst.SpoolWidthDivisor = src.SpoolWidthDivisor
	}
	if src.LengthDivisor != 0 {
		dst.LengthDivisor = src.LengthDivisor
	}
}

// getConfigPath tries to find the .spooltag.yaml configuration file.
// It checks the local directory first, then the XDG user config dir.
func getConfigPath() string {
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}

	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		debugf("user config dir unavailable: %v", err)
		return ""
	}
	xdgPath := filepath.Join(configHome, "spooltag", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}

func debugf(format string, args ...any) {
	if os.Getenv(EnvDebug) != "" {
		fmt.Fprintf(os.Stderr, "[debug config] "+format+"\n", args...)
	}
}
