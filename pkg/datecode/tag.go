package datecode

import (
	"strings"
	"time"
)

// Layouts used by the spool tag date blocks.
const (
	ProductionLayout = "%Y_%m_%d_%H_%M" // block 12, e.g. 2024_03_15_14_30
	ShortDayLayout   = "%y_%m_%d"       // block 13, three underscore parts
	ShortHourLayout  = "%y_%m_%d_%H"    // block 13, four underscore parts
	CompactLayout    = "%Y%m%d"         // block 13, no separators
)

var (
	production = Chain{MustCompile(ProductionLayout)}
	shortDay   = Chain{MustCompile(ShortDayLayout)}
	shortHour  = Chain{MustCompile(ShortHourLayout)}
	compact    = Chain{MustCompile(CompactLayout)}
)

// ParseProduction parses the block 12 production timestamp.
func ParseProduction(raw string) (time.Time, bool) {
	return production.Parse(raw)
}

// ShortChain picks the candidates for a block 13 short date based on its
// shape. It returns nil when no pattern should be attempted.
func ShortChain(raw string) Chain {
	if !strings.Contains(raw, "_") {
		return compact
	}
	switch len(strings.Split(raw, "_")) {
	case 3:
		return shortDay
	case 4:
		return shortHour
	default:
		return nil
	}
}

// ParseShort parses the block 13 short production date.
func ParseShort(raw string) (time.Time, bool) {
	return ShortChain(raw).Parse(raw)
}
