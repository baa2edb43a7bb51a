package viewer

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/spooltag/pkg/pattern"
	"github.com/dkoosis/spooltag/pkg/render"
)

func samplePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{Label: "Parsed spool.nfc", Format: "Flipper"},
		&pattern.Block{Index: 2, Title: "Filament Type", Items: []pattern.BlockItem{
			{Label: "Filament Type", Text: "PLA"},
		}},
		&pattern.Block{Index: 5, Title: "Color & Spool", Items: []pattern.BlockItem{
			{Label: "Spool Weight", Text: "250 g"},
		}},
		&pattern.Block{Index: 6, Title: "Drying & Temperature", Error: "block 6: have 4 bytes, need 12"},
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_Navigation(t *testing.T) {
	t.Parallel()

	m := New(samplePatterns(), render.MonoTheme())
	assert.Equal(t, "Loading...", m.View())

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Contains(t, m.View(), "Parsed spool.nfc (Flipper)")
	assert.Contains(t, m.View(), "PLA")

	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 1, m.Selected())
	assert.Contains(t, m.View(), "250 g")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.Selected(), "selection stops at the last block")
	assert.Contains(t, m.View(), "block 6: have 4 bytes, need 12")

	m, _ = update(t, m, runes("k"))
	assert.Equal(t, 1, m.Selected())

	m, _ = update(t, m, runes("g"))
	assert.Equal(t, 0, m.Selected())
	m, _ = update(t, m, runes("G"))
	assert.Equal(t, 2, m.Selected())
}

func TestModel_Quit(t *testing.T) {
	t.Parallel()

	for _, key := range []tea.KeyMsg{runes("q"), {Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}} {
		_, cmd := update(t, New(samplePatterns(), render.MonoTheme()), key)
		require.NotNil(t, cmd, key.String())
		assert.IsType(t, tea.QuitMsg{}, cmd(), key.String())
	}
}

func TestModel_NoBlocks(t *testing.T) {
	t.Parallel()

	m := New([]pattern.Pattern{&pattern.Summary{Label: "Parsed empty.nfc"}}, render.MonoTheme())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 0, m.Selected())
	assert.Contains(t, m.View(), "No recognized blocks")
}

func TestFitLines(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a\n\n", fitLines("a", 3))
	assert.Equal(t, "a\nb", fitLines("a\nb\nc", 2))
}
