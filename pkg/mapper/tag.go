// Package mapper converts decoded tags into output patterns.
package mapper

import (
	"fmt"
	"sort"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/spooltag/pkg/pattern"
	"github.com/dkoosis/spooltag/pkg/spool"
)

const (
	kindInfo    = "info"
	kindWarning = "warning"
	kindExtra   = "extra"
)

// HeaderOrder lists the capture header keys shown in text output, in order.
var HeaderOrder = []string{"UID", "ATQA", "SAK", "Mifare Classic type"}

// FromTag converts a decoded tag into a summary followed by one block
// pattern per decoded block, in index order.
func FromTag(tag *spool.Tag) []pattern.Pattern {
	out := make([]pattern.Pattern, 0, len(tag.Blocks)+1)
	out = append(out, summary(tag))
	for _, b := range tag.Blocks {
		out = append(out, block(b))
	}
	return out
}

func summary(tag *spool.Tag) *pattern.Summary {
	s := &pattern.Summary{
		Label:  "Parsed " + tag.Source,
		Kind:   pattern.SummaryKindDump,
		Source: tag.Source,
		Format: formatName(tag),
	}

	shown := make(map[string]bool, len(HeaderOrder))
	for _, key := range HeaderOrder {
		if v, ok := tag.Header[key]; ok {
			s.Metrics = append(s.Metrics, pattern.SummaryItem{Label: key, Value: v, Kind: kindInfo})
			shown[key] = true
		}
	}
	extra := make([]string, 0, len(tag.Header))
	for k := range tag.Header {
		if !shown[k] {
			extra = append(extra, k)
		}
	}
	sort.Strings(extra)
	for _, k := range extra {
		s.Metrics = append(s.Metrics, pattern.SummaryItem{Label: k, Value: tag.Header[k], Kind: kindExtra})
	}

	if tag.Malformed > 0 {
		s.Metrics = append(s.Metrics, pattern.SummaryItem{
			Label: "Malformed",
			Value: fmt.Sprintf("%d entries skipped", tag.Malformed),
			Kind:  kindWarning,
		})
	}
	return s
}

func formatName(tag *spool.Tag) string {
	if tag.Format == "" {
		return ""
	}
	name := cases.Title(language.English).String(string(tag.Format))
	if tag.Raw {
		name += " (raw)"
	}
	return name
}

func block(b spool.BlockResult) *pattern.Block {
	pb := &pattern.Block{Index: b.Index, Title: b.Title}
	if b.Err != nil {
		pb.Error = b.Err.Error()
		return pb
	}
	pb.Items = make([]pattern.BlockItem, 0, len(b.Fields))
	for _, f := range b.Fields {
		pb.Items = append(pb.Items, pattern.BlockItem{
			Key:      f.Key,
			Label:    f.Label,
			Text:     f.Text,
			Value:    f.Value,
			Swatches: swatches(f.Value),
		})
	}
	return pb
}

func swatches(v any) []pattern.RGB {
	switch sv := v.(type) {
	case spool.Swatch:
		return []pattern.RGB{rgb(sv.Color)}
	case spool.Gradient:
		cs := sv.Colors()
		out := make([]pattern.RGB, len(cs))
		for i, c := range cs {
			out[i] = rgb(c)
		}
		return out
	default:
		return nil
	}
}

func rgb(c spool.Color) pattern.RGB {
	return pattern.RGB{R: c.R, G: c.G, B: c.B}
}
