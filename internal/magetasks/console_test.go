package magetasks

import (
	"bytes"
	"strings"
	"testing"
)

// capture redirects task output into a buffer for the duration of the test.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := out
	out = &buf
	t.Cleanup(func() { out = prev })
	return &buf
}

func TestPrintH1Header(t *testing.T) {
	buf := capture(t)

	PrintH1Header("spooltag QA")

	got := buf.String()
	if !strings.Contains(got, "spooltag QA") {
		t.Errorf("header missing title: %q", got)
	}
	if strings.Count(got, strings.Repeat("═", headerWidth)) != 2 {
		t.Errorf("header should have two rules: %q", got)
	}
}

func TestPrintH2Header(t *testing.T) {
	buf := capture(t)

	PrintH2Header("Build")

	if !strings.Contains(buf.String(), "▸ Build") {
		t.Errorf("PrintH2Header() = %q", buf.String())
	}
}

func TestStatusLines(t *testing.T) {
	tests := []struct {
		name  string
		print func(string)
		want  string
	}{
		{"success", PrintSuccess, "✓ done\n"},
		{"warning", PrintWarning, "! done\n"},
		{"error", PrintError, "✗ done\n"},
		{"info", PrintInfo, "· done\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := capture(t)
			tt.print("done")
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
