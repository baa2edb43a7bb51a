// Package config handles configuration loading and merging for spooltag.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--colors-json, --theme, --output)
//  2. Environment variables (SPOOLTAG_COLORS_JSON, SPOOLTAG_THEME, SPOOLTAG_OUTPUT,
//     SPOOLTAG_NO_COLOR, NO_COLOR, SPOOLTAG_DEBUG)
//  3. YAML config file (--config, else .spooltag.yaml in the working directory,
//     else ~/.config/spooltag/.spooltag.yaml)
//  4. Hardcoded defaults
//
// When a higher-priority source sets a value, it overrides any lower-priority values.
//
// # Key Configuration Options
//
//   - colors_json: Path of the filament color table
//   - theme: Terminal theme (default, orca, mono)
//   - output: Renderer (auto, terminal, plain, json)
//   - no_color: Forces the mono theme
//   - spool_width_divisor, length_divisor: Scale factors for blocks 10 and 14,
//     which differ between tag generations
//
// # Environment Variables
//
//   - SPOOLTAG_NO_COLOR: Set to "true" or "1" to disable colors
//   - NO_COLOR: Any non-empty value disables colors
//   - SPOOLTAG_DEBUG: Set to any non-empty value to enable debug output
package config
