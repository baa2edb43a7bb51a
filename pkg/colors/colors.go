// Package colors maps tag RGB values to vendor color names and codes.
package colors

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// DefaultFile is the color table looked up when no path is configured.
const DefaultFile = "filament_colors.json"

// Info is a named vendor color.
type Info struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Table maps filament type to color key to Info. Keys are "RRGGBB" for single
// colors or "RRGGBB;RRGGBB" for dual-color spools.
type Table map[string]map[string]Info

// Parse decodes a color table document.
func Parse(data []byte) (Table, error) {
	var t Table
	if err := json.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("decode color table: %w", err)
	}
	if t == nil {
		t = Table{}
	}
	return t, nil
}

// LoadFile reads a color table from disk. A missing file yields an error
// matching fs.ErrNotExist.
func LoadFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open color table: %w", err)
	}
	return Parse(data)
}

// CompositeKey joins a primary and secondary RGB into a dual-color key.
func CompositeKey(primary, secondary string) string {
	return primary + ";" + secondary
}

// Resolver looks colors up in an immutable Table.
type Resolver struct {
	table Table
}

// NewResolver wraps t. A nil table resolves nothing.
func NewResolver(t Table) *Resolver {
	return &Resolver{table: t}
}

// Resolve finds the color for a filament type. When secondary is non-empty
// the composite key is tried before the bare primary key. RGB strings are
// compared case-insensitively. A miss is not an error.
func (r *Resolver) Resolve(filamentType, primary, secondary string) (Info, bool) {
	if r == nil {
		return Info{}, false
	}
	byKey, ok := r.table[filamentType]
	if !ok {
		return Info{}, false
	}
	primary = strings.ToUpper(primary)
	if secondary != "" {
		if info, ok := lookup(byKey, CompositeKey(primary, strings.ToUpper(secondary))); ok {
			return info, true
		}
	}
	return lookup(byKey, primary)
}

// lookup tries the exact key and then a case-folded match, since hand-edited
// tables sometimes carry lowercase hex.
func lookup(byKey map[string]Info, key string) (Info, bool) {
	if info, ok := byKey[key]; ok {
		return info, true
	}
	for k, info := range byKey {
		if strings.EqualFold(k, key) {
			return info, true
		}
	}
	return Info{}, false
}
