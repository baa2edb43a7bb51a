// Package viewer provides an interactive block browser for a decoded tag.
package viewer

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/spooltag/pkg/pattern"
	"github.com/dkoosis/spooltag/pkg/render"
)

// Run launches the browser and blocks until the user quits or ctx is done.
func Run(ctx context.Context, patterns []pattern.Pattern, theme render.Theme, opts ...render.TerminalOption) error {
	program := tea.NewProgram(New(patterns, theme, opts...), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Model is the bubbletea model behind Run.
type Model struct {
	summary  *pattern.Summary
	blocks   []*pattern.Block
	theme    render.Theme
	term     *render.Terminal
	opts     []render.TerminalOption
	selected int
	viewport viewport.Model
	ready    bool
	width    int
	height   int
	listW    int
	detailW  int
}

// New builds a model from mapped patterns.
func New(patterns []pattern.Pattern, theme render.Theme, opts ...render.TerminalOption) Model {
	m := Model{theme: theme, opts: opts, viewport: viewport.New(0, 0)}
	for _, p := range patterns {
		switch v := p.(type) {
		case *pattern.Summary:
			m.summary = v
		case *pattern.Block:
			m.blocks = append(m.blocks, v)
		}
	}
	m.term = render.NewTerminal(theme, 80, opts...)
	if len(m.blocks) == 0 {
		m.viewport.SetContent("No recognized blocks in this dump")
	}
	return m
}

// Selected returns the index of the highlighted block in list order.
func (m Model) Selected() int { return m.selected }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refreshViewport()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.blocks)-1 {
				m.selected++
				m.refreshViewport()
			}
			return m, nil
		case "home", "g":
			m.selected = 0
			m.refreshViewport()
			return m, nil
		case "end", "G":
			if len(m.blocks) > 0 {
				m.selected = len(m.blocks) - 1
				m.refreshViewport()
			}
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.listW = m.listWidth()
		if m.listW > m.width/2 {
			m.listW = m.width / 2
		}
		m.detailW = max(m.width-m.listW-1, 10)
		m.viewport.Width = max(m.detailW-4, 1) // border + padding
		m.viewport.Height = max(m.height-6, 1) // header, status bar, borders
		m.term = render.NewTerminal(m.theme, m.viewport.Width, m.opts...)
		m.ready = true
		m.refreshViewport()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) listWidth() int {
	w := 18
	for _, b := range m.blocks {
		w = max(w, lipgloss.Width(listLabel(b))+4)
	}
	return w
}

func listLabel(b *pattern.Block) string {
	return fmt.Sprintf("%2d %s", b.Index, b.Title)
}

func (m *Model) refreshViewport() {
	if m.selected < 0 || m.selected >= len(m.blocks) {
		return
	}
	m.viewport.SetContent(m.term.RenderBlock(m.blocks[m.selected]))
	m.viewport.GotoTop()
}

func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := "spooltag"
	if m.summary != nil {
		title = m.summary.Label
		if m.summary.Format != "" {
			title += " (" + m.summary.Format + ")"
		}
	}
	header := m.theme.Title.Render(title)

	contentHeight := max(m.height-4, 3)
	list := fitLines(m.renderList(), contentHeight)
	listPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Width(m.listW).
		Render(list)

	detailPanel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(m.detailW).
		Render(fitLines(m.viewport.View(), contentHeight))

	panels := lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
	help := m.theme.Muted.Render("↑/↓ select block • pgup/pgdn scroll • q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, panels, help)
}

func (m Model) renderList() string {
	lines := make([]string, 0, len(m.blocks))
	for i, b := range m.blocks {
		cursor := "  "
		style := m.theme.Label
		if i == m.selected {
			cursor = "▶ "
			style = m.theme.Title
		}
		line := cursor + listLabel(b)
		if b.Error != "" {
			line += " " + m.theme.Icons.Fail
		}
		lines = append(lines, style.Render(line))
	}
	return strings.Join(lines, "\n")
}

// fitLines pads or truncates s to exactly n lines.
func fitLines(s string, n int) string {
	lines := strings.Split(s, "\n")
	for len(lines) < n {
		lines = append(lines, "")
	}
	return strings.Join(lines[:n], "\n")
}
