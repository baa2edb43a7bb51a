package dump

import (
	"errors"
	"fmt"
)

// Format names a dump family. The zero value means "detect".
type Format string

const (
	FormatAuto     Format = ""
	FormatFlipper  Format = "flipper"
	FormatProxmark Format = "proxmark"
)

var (
	// ErrUnknownFormat is returned for a format name other than flipper or proxmark.
	ErrUnknownFormat = errors.New("unknown dump format")
	// ErrNotJSON marks Proxmark input that is not a JSON object.
	ErrNotJSON = errors.New("not a JSON dump")
	// ErrNotText marks Flipper input that is not valid UTF-8 text.
	ErrNotText = errors.New("not a text dump")
)

// FormatError reports a dump that could not be parsed as the selected format.
type FormatError struct {
	Format Format
	Err    error
}

func (e *FormatError) Error() string {
	if e.Format == FormatAuto {
		return fmt.Sprintf("dump format: %v", e.Err)
	}
	return fmt.Sprintf("%s dump: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseFormat validates a caller-provided format name. An empty name is FormatAuto.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case FormatAuto, FormatFlipper, FormatProxmark:
		return Format(name), nil
	default:
		return FormatAuto, &FormatError{Err: fmt.Errorf("%w %q (expected flipper or proxmark)", ErrUnknownFormat, name)}
	}
}
