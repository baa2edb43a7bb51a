// Package dump normalizes Flipper and Proxmark tag captures into a header map
// plus a block-index to byte-slot map.
package dump

import "sort"

// BlockSize is the size of one tag memory block in bytes.
const BlockSize = 16

// Slot is one byte position of a captured block. Known is false when the
// capture tool could not read the byte; that is distinct from a zero value.
type Slot struct {
	Value byte
	Known bool
}

// Unknown is an unreadable slot.
var Unknown = Slot{}

// Byte returns a known slot holding b.
func Byte(b byte) Slot {
	return Slot{Value: b, Known: true}
}

// Block is the ordered slot sequence for one block index. Captures may hold
// fewer than BlockSize slots.
type Block []Slot

// BlockOf builds a fully known block from raw bytes.
func BlockOf(raw []byte) Block {
	b := make(Block, len(raw))
	for i, v := range raw {
		b[i] = Byte(v)
	}
	return b
}

// Bytes returns the block contents with unknown slots substituted by 0.
func (b Block) Bytes() []byte {
	out := make([]byte, len(b))
	for i, s := range b {
		if s.Known {
			out[i] = s.Value
		}
	}
	return out
}

// KnownBytes returns only the readable bytes, in order.
func (b Block) KnownBytes() []byte {
	out := make([]byte, 0, len(b))
	for _, s := range b {
		if s.Known {
			out = append(out, s.Value)
		}
	}
	return out
}

// Unknowns counts unreadable slots.
func (b Block) Unknowns() int {
	n := 0
	for _, s := range b {
		if !s.Known {
			n++
		}
	}
	return n
}

// Header holds capture-tool metadata such as UID, ATQA and SAK.
type Header map[string]string

// BlockMap maps block index to its slots. Missing indices were not captured.
type BlockMap map[int]Block

// Indices returns the captured block indices in ascending order.
func (m BlockMap) Indices() []int {
	idx := make([]int, 0, len(m))
	for i := range m {
		idx = append(idx, i)
	}
	sort.Ints(idx)
	return idx
}

// Dump is the canonical form every adapter produces.
type Dump struct {
	Source    string // path or name the bytes came from
	Format    Format
	Raw       bool // Proxmark binary fallback was used
	Header    Header
	Blocks    BlockMap
	Malformed int // entries or tokens skipped while parsing
}

func newDump(format Format) *Dump {
	return &Dump{
		Format: format,
		Header: make(Header),
		Blocks: make(BlockMap),
	}
}
