// Package render provides output renderers for spooltag's patterns.
package render

import "github.com/dkoosis/spooltag/pkg/pattern"

// Renderer converts patterns to formatted output.
type Renderer interface {
	Render(patterns []pattern.Pattern) string
}

// Mode names an output renderer.
type Mode string

const (
	ModeAuto     Mode = "auto"
	ModeTerminal Mode = "terminal"
	ModePlain    Mode = "plain"
	ModeJSON     Mode = "json"
)

// ParseMode validates an output mode name. The empty string means auto.
func ParseMode(name string) (Mode, bool) {
	switch m := Mode(name); m {
	case "":
		return ModeAuto, true
	case ModeAuto, ModeTerminal, ModePlain, ModeJSON:
		return m, true
	default:
		return "", false
	}
}

func split(patterns []pattern.Pattern) (*pattern.Summary, []*pattern.Block) {
	var (
		sum    *pattern.Summary
		blocks []*pattern.Block
	)
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			if sum == nil {
				sum = v
			}
		case *pattern.Block:
			blocks = append(blocks, v)
		}
	}
	return sum, blocks
}

// textMetric reports whether a summary item belongs in human-readable output.
func textMetric(m pattern.SummaryItem) bool {
	return m.Kind != "extra"
}
