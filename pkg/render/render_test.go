package render

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/spooltag/pkg/pattern"
)

func samplePatterns() []pattern.Pattern {
	return []pattern.Pattern{
		&pattern.Summary{
			Label:  "Parsed spool.nfc",
			Kind:   pattern.SummaryKindDump,
			Source: "spool.nfc",
			Format: "Flipper",
			Metrics: []pattern.SummaryItem{
				{Label: "UID", Value: "9A 3F 21 C4", Kind: "info"},
				{Label: "SAK", Value: "08", Kind: "info"},
				{Label: "Filetype", Value: "Flipper NFC device", Kind: "extra"},
			},
		},
		&pattern.Block{Index: 5, Title: "Color & Spool", Items: []pattern.BlockItem{
			{Key: "color_rgba", Label: "Color RGBA", Text: "123456FF", Value: "123456FF"},
			{Key: "primary_swatch", Label: "Primary Color Swatch", Text: "#123456", Swatches: []pattern.RGB{{R: 0x12, G: 0x34, B: 0x56}}},
			{Key: "spool_weight", Label: "Spool Weight", Text: "100 g", Value: uint16(100)},
		}},
		&pattern.Block{Index: 6, Title: "Drying & Temperature", Error: "block 6: have 4 bytes, need 12"},
	}
}

func TestPlain_Render(t *testing.T) {
	t.Parallel()

	want := strings.Join([]string{
		"Parsed spool.nfc",
		"UID: 9A 3F 21 C4",
		"SAK: 08",
		"Block 5 - Color RGBA: 123456FF",
		"Block 5 - Primary Color Swatch: #123456",
		"Block 5 - Spool Weight: 100 g",
		"Block 6 - Error: block 6: have 4 bytes, need 12",
	}, "\n") + "\n"
	assert.Equal(t, want, NewPlain().Render(samplePatterns()))
}

func TestTerminal_Mono(t *testing.T) {
	t.Parallel()

	out := NewTerminal(MonoTheme(), 80).Render(samplePatterns())
	assert.NotContains(t, out, "\x1b[48;2", "mono theme emits no swatches")
	assert.Contains(t, out, "Parsed spool.nfc")
	assert.Contains(t, out, "(Flipper)")
	assert.Contains(t, out, "Block 5")
	assert.Contains(t, out, "Spool Weight")
	assert.Contains(t, out, "100 g")
	assert.Contains(t, out, "x block 6: have 4 bytes, need 12")
	assert.NotContains(t, out, "Filetype")
}

func TestTerminal_TrueColorSwatch(t *testing.T) {
	t.Parallel()

	out := NewTerminal(DefaultTheme(), 80, WithTrueColor()).Render(samplePatterns())
	assert.Contains(t, out, "48;2;18;52;86")
	assert.Contains(t, out, "#123456")
}

func TestTerminal_GradientCells(t *testing.T) {
	t.Parallel()

	b := &pattern.Block{Index: 16, Title: "Extra Color Info", Items: []pattern.BlockItem{{
		Label:    "Color Gradient",
		Text:     "#000000 → #FFFFFF",
		Swatches: []pattern.RGB{{R: 0, G: 0, B: 0}, {R: 128, G: 128, B: 128}, {R: 255, G: 255, B: 255}},
	}}}
	out := NewTerminal(DefaultTheme(), 80, WithTrueColor()).RenderBlock(b)
	assert.Equal(t, 3, strings.Count(out, "48;2;"))
	assert.Contains(t, out, "48;2;255;255;255")
}

func TestJSON_Render(t *testing.T) {
	t.Parallel()

	patterns := append(samplePatterns(), &pattern.Block{Index: 12, Title: "Production DateTime", Items: []pattern.BlockItem{
		{Key: "production_time", Label: "Parsed DateTime", Text: "2024-03-15 14:30", Value: time.Date(2024, 3, 15, 14, 30, 0, 0, time.UTC)},
		{Key: "nan", Label: "Broken", Text: "NaN mm", Value: float32(math.NaN())},
	}})
	out := NewJSON().Render(patterns)

	var doc struct {
		Version string            `json:"version"`
		Source  string            `json:"source"`
		Format  string            `json:"format"`
		Header  map[string]string `json:"header"`
		Blocks  []struct {
			Index  int    `json:"index"`
			Error  string `json:"error"`
			Fields []struct {
				Key   string `json:"key"`
				Value any    `json:"value"`
				Text  string `json:"text"`
			} `json:"fields"`
		} `json:"blocks"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "1", doc.Version)
	assert.Equal(t, "spool.nfc", doc.Source)
	assert.Equal(t, "Flipper", doc.Format)
	assert.Equal(t, "Flipper NFC device", doc.Header["Filetype"])
	require.Len(t, doc.Blocks, 3)
	assert.Equal(t, float64(100), doc.Blocks[0].Fields[2].Value)
	assert.Equal(t, "block 6: have 4 bytes, need 12", doc.Blocks[1].Error)
	assert.Empty(t, doc.Blocks[1].Fields)
	assert.Equal(t, "2024-03-15T14:30:00", doc.Blocks[2].Fields[0].Value)
	assert.Nil(t, doc.Blocks[2].Fields[1].Value)
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeAuto, true},
		{"auto", ModeAuto, true},
		{"terminal", ModeTerminal, true},
		{"plain", ModePlain, true},
		{"json", ModeJSON, true},
		{"llm", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseMode(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "orca", ThemeByName("orca").Name)
	assert.Equal(t, "mono", ThemeByName("mono").Name)
	assert.Equal(t, "default", ThemeByName("unknown").Name)
	assert.True(t, ValidTheme("orca"))
	assert.False(t, ValidTheme("solarized"))
	assert.False(t, MonoTheme().Swatches)
}

func TestPadRight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "°C  ", padRight("°C", 4))
	assert.Equal(t, "abc", padRight("abc", 3))
	assert.Equal(t, 5, len([]rune(padRight("abcdefgh", 5))))
}
