package render

import (
	"fmt"
	"strings"

	"github.com/dkoosis/spooltag/pkg/pattern"
)

// Plain renders patterns as line-oriented text with zero ANSI codes, one
// "Block N - Label: value" line per field. Swatches print their hex value.
type Plain struct{}

// NewPlain creates a plain-text renderer.
func NewPlain() *Plain {
	return &Plain{}
}

// Render formats all patterns as plain text.
func (p *Plain) Render(patterns []pattern.Pattern) string {
	var sb strings.Builder

	sum, blocks := split(patterns)
	if sum != nil {
		if sum.Label != "" {
			sb.WriteString(sum.Label + "\n")
		}
		for _, m := range sum.Metrics {
			if textMetric(m) {
				sb.WriteString(m.Label + ": " + m.Value + "\n")
			}
		}
	}

	for _, b := range blocks {
		if b.Error != "" {
			fmt.Fprintf(&sb, "Block %d - Error: %s\n", b.Index, b.Error)
			continue
		}
		for _, item := range b.Items {
			fmt.Fprintf(&sb, "Block %d - %s: %s\n", b.Index, item.Label, item.Text)
		}
	}
	return sb.String()
}
