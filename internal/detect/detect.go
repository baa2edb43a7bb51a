// Package detect picks the dump format from the first line or file extension.
package detect

import (
	"bytes"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// Format represents a recognized dump family.
type Format int

const (
	Unknown  Format = iota
	Flipper         // Flipper Zero NFC text dump
	Proxmark        // Proxmark3 JSON or binary dump
)

// FlipperMarker is the substring Flipper writes on the first line of an NFC capture.
const FlipperMarker = "Flipper NFC device"

// Sniff examines the first line of data. It only recognizes Flipper captures;
// anything else (including non-text input) is Unknown.
func Sniff(data []byte) Format {
	line := data
	if i := bytes.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if !utf8.Valid(line) {
		return Unknown
	}
	if bytes.Contains(line, []byte(FlipperMarker)) {
		return Flipper
	}
	return Unknown
}

// ByExtension maps .bin and .json (any case) to Proxmark, everything else to Unknown.
func ByExtension(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".bin", ".json":
		return Proxmark
	default:
		return Unknown
	}
}
