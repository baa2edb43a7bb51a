package spool

import (
	"encoding/binary"
	"math"

	"github.com/dkoosis/spooltag/pkg/dump"
)

// The encoders write 16-byte blocks using the same offsets and channel orders
// the decoder reads. They exist for fixtures and round-trip checks; nothing
// here writes to a physical tag.

// Temperatures is the block 6 payload in storage order.
type Temperatures struct {
	DryingTemp    uint16
	DryingTime    uint16
	BedTempType   uint16
	BedTemp       uint16
	HotendMaxTemp uint16
	HotendMinTemp uint16
}

// EncodeColorBlock builds block 5.
func EncodeColorBlock(c Color, weight uint16, diameter float32) dump.Block {
	b := make([]byte, dump.BlockSize)
	primaryOrder.write(b, c)
	binary.LittleEndian.PutUint16(b[4:6], weight)
	binary.LittleEndian.PutUint32(b[8:12], math.Float32bits(diameter))
	return dump.BlockOf(b)
}

// EncodeTemperatureBlock builds block 6.
func EncodeTemperatureBlock(t Temperatures) dump.Block {
	b := make([]byte, dump.BlockSize)
	for i, v := range []uint16{t.DryingTemp, t.DryingTime, t.BedTempType, t.BedTemp, t.HotendMaxTemp, t.HotendMinTemp} {
		binary.LittleEndian.PutUint16(b[i*2:], v)
	}
	return dump.BlockOf(b)
}

// EncodeASCII builds a NUL-padded text block. s is truncated to 16 bytes.
func EncodeASCII(s string) dump.Block {
	b := make([]byte, dump.BlockSize)
	copy(b, s)
	return dump.BlockOf(b)
}

// EncodeSecondaryBlock builds block 16 with the second color in A,B,G,R order.
func EncodeSecondaryBlock(formatID, count uint16, second Color) dump.Block {
	b := make([]byte, dump.BlockSize)
	binary.LittleEndian.PutUint16(b[0:2], formatID)
	binary.LittleEndian.PutUint16(b[2:4], count)
	secondaryOrder.write(b, second)
	return dump.BlockOf(b)
}

// EncodeScaled builds a block 10 or 14 style block holding raw at bytes 4-5.
func EncodeScaled(raw uint16) dump.Block {
	b := make([]byte, dump.BlockSize)
	binary.LittleEndian.PutUint16(b[4:6], raw)
	return dump.BlockOf(b)
}
