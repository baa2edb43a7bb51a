package pattern

// SummaryKind identifies what a summary describes.
type SummaryKind string

const (
	SummaryKindDump SummaryKind = "dump"
)

// Summary represents the capture-level facts shown before any block.
type Summary struct {
	Label   string      // e.g. "Parsed spool.nfc"
	Kind    SummaryKind // dispatch key for renderers
	Source  string
	Format  string // display name, e.g. "Flipper"
	Metrics []SummaryItem
}

// SummaryItem is a single header entry in a summary.
type SummaryItem struct {
	Label string // e.g., "UID", "SAK"
	Value string // formatted value
	Kind  string // "info", "warning" or "extra"; extra items are omitted from text output
}

func (s *Summary) Type() PatternType { return PatternTypeSummary }
