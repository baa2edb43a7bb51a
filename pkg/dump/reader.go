package dump

import (
	"fmt"
	"os"

	"github.com/dkoosis/spooltag/internal/detect"
)

// Select applies the format priority: explicit override, then a first-line
// sniff for a Flipper capture, then the .bin/.json extension rule. Anything
// else is treated as a Flipper text dump.
func Select(name string, data []byte, override Format) Format {
	if override != FormatAuto {
		return override
	}
	if detect.Sniff(data) == detect.Flipper {
		return FormatFlipper
	}
	if detect.ByExtension(name) == detect.Proxmark {
		return FormatProxmark
	}
	return FormatFlipper
}

// Parse selects a format for data and runs the matching adapter.
// name is only used for extension-based detection and Dump.Source.
func Parse(name string, data []byte, override Format) (*Dump, error) {
	var (
		d   *Dump
		err error
	)
	switch format := Select(name, data, override); format {
	case FormatFlipper:
		d, err = ParseFlipper(data)
	case FormatProxmark:
		d = ParseProxmark(data)
	default:
		return nil, &FormatError{Format: format, Err: ErrUnknownFormat}
	}
	if err != nil {
		return nil, err
	}
	d.Source = name
	return d, nil
}

// ReadFile reads and parses the dump at path. A missing file yields an error
// matching fs.ErrNotExist.
func ReadFile(path string, override Format) (*Dump, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	return Parse(path, data, override)
}
