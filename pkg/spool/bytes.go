package spool

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/dkoosis/spooltag/pkg/dump"
)

// All multi-byte values on the tag are little-endian. Callers check lengths
// against blockSpec.need before reading.

func le16(b []byte, off int) uint16 {
	return binary.LittleEndian.Uint16(b[off : off+2])
}

func le32f(b []byte, off int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[off : off+4]))
}

// span clamps [lo, hi) to the slice so tolerant text fields never panic on
// short trailing blocks.
func span(b []byte, lo, hi int) []byte {
	if lo > len(b) {
		lo = len(b)
	}
	if hi > len(b) {
		hi = len(b)
	}
	return b[lo:hi]
}

// hexUpper renders bytes as uppercase hex with no separators.
func hexUpper(b []byte) string {
	return strings.ToUpper(fmt.Sprintf("%x", b))
}

// hexSpaced renders bytes as uppercase hex pairs separated by spaces.
func hexSpaced(b []byte) string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = fmt.Sprintf("%02X", v)
	}
	return strings.Join(parts, " ")
}

// ascii drops bytes outside 7-bit ASCII and strips trailing NULs.
func ascii(b []byte) string {
	out := make([]byte, 0, len(b))
	for _, v := range b {
		if v < 0x80 {
			out = append(out, v)
		}
	}
	return strings.TrimRight(string(out), "\x00")
}

// asciiBlock decodes a whole block as text. Unknown slots read as NUL.
func asciiBlock(blk dump.Block) string {
	return ascii(blk.Bytes())
}

// channelOrder gives the byte offsets of R, G, B and A within a block.
type channelOrder [4]int

var (
	// Block 5 stores the primary color as R,G,B,A in bytes 0-3.
	primaryOrder = channelOrder{0, 1, 2, 3}
	// Block 16 stores the secondary color reversed, A,B,G,R in bytes 4-7.
	secondaryOrder = channelOrder{7, 6, 5, 4}
)

func (o channelOrder) read(b []byte) Color {
	return Color{R: b[o[0]], G: b[o[1]], B: b[o[2]], A: b[o[3]]}
}

func (o channelOrder) write(b []byte, c Color) {
	b[o[0]], b[o[1]], b[o[2]], b[o[3]] = c.R, c.G, c.B, c.A
}

// end is one past the highest offset the order touches.
func (o channelOrder) end() int {
	m := 0
	for _, off := range o {
		if off+1 > m {
			m = off + 1
		}
	}
	return m
}
