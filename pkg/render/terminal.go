package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"

	"github.com/dkoosis/spooltag/pkg/pattern"
)

// Terminal renders patterns as styled terminal output via lipgloss.
type Terminal struct {
	theme  Theme
	width  int
	swatch *lipgloss.Renderer
}

// TerminalOption configures a Terminal renderer.
type TerminalOption func(*Terminal)

// WithTrueColor forces 24-bit swatches regardless of what the output
// environment advertises.
func WithTrueColor() TerminalOption {
	return func(t *Terminal) {
		r := lipgloss.NewRenderer(io.Discard)
		r.SetColorProfile(termenv.TrueColor)
		t.swatch = r
	}
}

// NewTerminal creates a terminal renderer with the given theme.
func NewTerminal(theme Theme, width int, opts ...TerminalOption) *Terminal {
	if width <= 0 {
		width = 80
	}
	t := &Terminal{theme: theme, width: width, swatch: lipgloss.DefaultRenderer()}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Render formats all patterns for terminal display.
func (t *Terminal) Render(patterns []pattern.Pattern) string {
	var sections []string
	for _, p := range patterns {
		s := t.renderOne(p)
		if s != "" {
			sections = append(sections, s)
		}
	}
	return strings.Join(sections, "\n")
}

func (t *Terminal) renderOne(p pattern.Pattern) string {
	switch v := p.(type) {
	case *pattern.Summary:
		return t.renderSummary(v)
	case *pattern.Block:
		return t.RenderBlock(v)
	default:
		return ""
	}
}

func (t *Terminal) renderSummary(s *pattern.Summary) string {
	var sb strings.Builder
	if s.Label != "" {
		sb.WriteString(t.theme.Title.Render(s.Label))
		if s.Format != "" {
			sb.WriteString(" " + t.theme.Muted.Render("("+s.Format+")"))
		}
		sb.WriteString("\n")
	}

	width := 0
	for _, m := range s.Metrics {
		if textMetric(m) {
			width = max(width, runewidth.StringWidth(m.Label))
		}
	}
	for _, m := range s.Metrics {
		if !textMetric(m) {
			continue
		}
		sb.WriteString("  ")
		if m.Kind == "warning" {
			sb.WriteString(t.theme.Warning.Render(t.theme.Icons.Warn + " " + m.Label + ": " + m.Value))
		} else {
			sb.WriteString(t.theme.Label.Render(padRight(m.Label, width)))
			sb.WriteString("  ")
			sb.WriteString(t.theme.Value.Render(m.Value))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderBlock formats a single block section.
func (t *Terminal) RenderBlock(b *pattern.Block) string {
	var sb strings.Builder
	sb.WriteString(t.theme.Title.Render(fmt.Sprintf("Block %d", b.Index)))
	sb.WriteString(t.theme.Muted.Render(" " + t.theme.Icons.Bullet + " " + b.Title))
	sb.WriteString("\n")

	if b.Error != "" {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Error.Render(t.theme.Icons.Fail + " " + b.Error))
		sb.WriteString("\n")
		return sb.String()
	}

	width := 0
	for _, item := range b.Items {
		width = max(width, runewidth.StringWidth(item.Label))
	}
	if limit := t.width / 2; width > limit {
		width = limit
	}
	for _, item := range b.Items {
		sb.WriteString("  ")
		sb.WriteString(t.theme.Label.Render(padRight(item.Label, width)))
		sb.WriteString("  ")
		if cells := t.renderSwatches(item.Swatches); cells != "" {
			sb.WriteString(cells)
			sb.WriteString(" ")
			sb.WriteString(t.theme.Muted.Render(item.Text))
		} else {
			sb.WriteString(t.theme.Value.Render(item.Text))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// renderSwatches prints one background-colored cell per color.
func (t *Terminal) renderSwatches(cs []pattern.RGB) string {
	if !t.theme.Swatches {
		return ""
	}
	var sb strings.Builder
	for _, c := range cs {
		hex := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
		sb.WriteString(t.swatch.NewStyle().Background(hex).Render(t.theme.Icons.Cell))
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if runewidth.StringWidth(s) >= width {
		return runewidth.Truncate(s, width, "…")
	}
	return runewidth.FillRight(s, width)
}
