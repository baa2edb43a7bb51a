package mapper

import (
	"errors"
	"testing"

	"github.com/dkoosis/spooltag/pkg/dump"
	"github.com/dkoosis/spooltag/pkg/pattern"
	"github.com/dkoosis/spooltag/pkg/spool"
)

func sampleTag() *spool.Tag {
	primary := spool.Color{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}
	second := spool.Color{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	return &spool.Tag{
		Source: "spool.nfc",
		Format: dump.FormatFlipper,
		Header: dump.Header{
			"SAK":         "08",
			"UID":         "9A 3F 21 C4",
			"Device type": "Mifare Classic",
			"Filetype":    "Flipper NFC device",
		},
		Blocks: []spool.BlockResult{
			{Index: 5, Title: "Color & Spool", Fields: []spool.Field{
				{Key: "color_rgba", Label: "Color RGBA", Value: primary, Text: "123456FF"},
				{Key: "primary_swatch", Label: "Primary Color Swatch", Value: spool.Swatch{Color: primary}, Text: "#123456"},
			}},
			{Index: 6, Title: "Drying & Temperature", Err: errors.New("block 6: have 4 bytes, need 12")},
			{Index: 16, Title: "Extra Color Info", Fields: []spool.Field{
				{Key: "color_gradient", Label: "Color Gradient", Value: spool.Gradient{From: primary, To: second, Steps: spool.GradientSteps}},
			}},
		},
	}
}

func TestFromTag_Summary(t *testing.T) {
	t.Parallel()

	patterns := FromTag(sampleTag())
	if len(patterns) != 4 {
		t.Fatalf("expected 4 patterns, got %d", len(patterns))
	}
	sum, ok := patterns[0].(*pattern.Summary)
	if !ok {
		t.Fatalf("expected Summary, got %T", patterns[0])
	}
	if sum.Label != "Parsed spool.nfc" {
		t.Errorf("label = %q", sum.Label)
	}
	if sum.Format != "Flipper" {
		t.Errorf("format = %q", sum.Format)
	}

	var labels, kinds []string
	for _, m := range sum.Metrics {
		labels = append(labels, m.Label)
		kinds = append(kinds, m.Kind)
	}
	wantLabels := []string{"UID", "SAK", "Device type", "Filetype"}
	wantKinds := []string{kindInfo, kindInfo, kindExtra, kindExtra}
	for i := range wantLabels {
		if i >= len(labels) || labels[i] != wantLabels[i] || kinds[i] != wantKinds[i] {
			t.Fatalf("metrics = %v %v, want %v %v", labels, kinds, wantLabels, wantKinds)
		}
	}
}

func TestFromTag_Blocks(t *testing.T) {
	t.Parallel()

	patterns := FromTag(sampleTag())

	b5 := patterns[1].(*pattern.Block)
	if b5.Index != 5 || len(b5.Items) != 2 {
		t.Fatalf("unexpected block 5: %+v", b5)
	}
	if len(b5.Items[0].Swatches) != 0 {
		t.Errorf("plain field should carry no swatches")
	}
	if got := b5.Items[1].Swatches; len(got) != 1 || got[0] != (pattern.RGB{R: 0x12, G: 0x34, B: 0x56}) {
		t.Errorf("swatch = %v", got)
	}

	b6 := patterns[2].(*pattern.Block)
	if b6.Error == "" || len(b6.Items) != 0 {
		t.Errorf("expected error-only block, got %+v", b6)
	}

	b16 := patterns[3].(*pattern.Block)
	steps := b16.Items[0].Swatches
	if len(steps) != spool.GradientSteps {
		t.Fatalf("gradient steps = %d", len(steps))
	}
	if steps[len(steps)-1] != (pattern.RGB{R: 0xFF, G: 0xFF, B: 0xFF}) {
		t.Errorf("last step = %v", steps[len(steps)-1])
	}
}

func TestFromTag_MalformedAndRaw(t *testing.T) {
	t.Parallel()

	tag := &spool.Tag{Source: "dump.bin", Format: dump.FormatProxmark, Raw: true, Malformed: 2}
	sum := FromTag(tag)[0].(*pattern.Summary)
	if sum.Format != "Proxmark (raw)" {
		t.Errorf("format = %q", sum.Format)
	}
	if len(sum.Metrics) != 1 || sum.Metrics[0].Kind != kindWarning {
		t.Fatalf("expected one warning metric, got %+v", sum.Metrics)
	}
	if sum.Metrics[0].Value != "2 entries skipped" {
		t.Errorf("value = %q", sum.Metrics[0].Value)
	}
}
