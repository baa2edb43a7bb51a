// Package spool interprets filament spool tag blocks as typed fields.
package spool

import (
	"fmt"

	"github.com/dkoosis/spooltag/pkg/dump"
)

// Color is an RGBA value read from a tag.
type Color struct {
	R, G, B, A uint8
}

// RGB returns the uppercase "RRGGBB" form used as a color-table key.
func (c Color) RGB() string {
	return fmt.Sprintf("%02X%02X%02X", c.R, c.G, c.B)
}

// RGBA returns the uppercase "RRGGBBAA" form.
func (c Color) RGBA() string {
	return c.RGB() + fmt.Sprintf("%02X", c.A)
}

// MarshalText encodes the color as RRGGBBAA.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.RGBA()), nil
}

// Swatch asks the presenter for a solid color block.
type Swatch struct {
	Color Color `json:"color"`
}

// Gradient asks the presenter for a linear blend between two colors.
type Gradient struct {
	From  Color `json:"from"`
	To    Color `json:"to"`
	Steps int   `json:"steps"`
}

// GradientSteps is the number of cells in a two-color gradient.
const GradientSteps = 10

// Colors interpolates each channel linearly from From to To, truncating
// toward zero. Alpha is carried from From.
func (g Gradient) Colors() []Color {
	if g.Steps < 2 {
		return []Color{g.From}
	}
	out := make([]Color, g.Steps)
	last := float64(g.Steps - 1)
	lerp := func(a, b uint8, i int) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*float64(i)/last)
	}
	for i := range out {
		out[i] = Color{
			R: lerp(g.From.R, g.To.R, i),
			G: lerp(g.From.G, g.To.G, i),
			B: lerp(g.From.B, g.To.B, i),
			A: g.From.A,
		}
	}
	return out
}

// Field is one decoded value. Text is the display form; Value keeps the type
// (uint16, float32, float64, string, Color, colors.Info, time.Time, Swatch, Gradient).
type Field struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Value any    `json:"value"`
	Text  string `json:"text"`
}

// BlockResult is the decoded content of one block. Err is set, and Fields is
// empty, when the block could not be decoded.
type BlockResult struct {
	Index  int
	Title  string
	Fields []Field
	Err    error
}

// Tag is the decoded view of one dump.
type Tag struct {
	Source    string
	Format    dump.Format
	Raw       bool
	Header    dump.Header
	Malformed int
	Blocks    []BlockResult
}

// Block returns the result for a block index.
func (t *Tag) Block(index int) (BlockResult, bool) {
	for _, b := range t.Blocks {
		if b.Index == index {
			return b, true
		}
	}
	return BlockResult{}, false
}

// Field returns a decoded field by block index and key.
func (t *Tag) Field(index int, key string) (Field, bool) {
	b, ok := t.Block(index)
	if !ok {
		return Field{}, false
	}
	for _, f := range b.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// ShortBlockError reports a block with fewer slots than its schema needs.
type ShortBlockError struct {
	Index int
	Have  int
	Need  int
}

func (e *ShortBlockError) Error() string {
	return fmt.Sprintf("block %d: have %d bytes, need %d", e.Index, e.Have, e.Need)
}
