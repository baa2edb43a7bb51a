package magetasks

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// out receives all task chatter. Tests swap it for a buffer.
var out io.Writer = os.Stdout

const headerWidth = 72

var (
	h1Style = lipgloss.NewStyle().Bold(true).Width(headerWidth).Align(lipgloss.Center)
	h2Style = lipgloss.NewStyle().Bold(true)
)

// PrintH1Header prints a banner between two rules.
func PrintH1Header(title string) {
	rule := strings.Repeat("═", headerWidth)
	fmt.Fprintf(out, "\n%s\n%s\n%s\n\n", rule, h1Style.Render(title), rule)
}

// PrintH2Header prints a section header.
func PrintH2Header(title string) {
	fmt.Fprintf(out, "\n%s\n\n", h2Style.Render("▸ "+title))
}

// PrintSuccess prints a success message.
func PrintSuccess(msg string) { status("✓", msg) }

// PrintWarning prints a warning message.
func PrintWarning(msg string) { status("!", msg) }

// PrintError prints an error message.
func PrintError(msg string) { status("✗", msg) }

// PrintInfo prints an info message.
func PrintInfo(msg string) { status("·", msg) }

func status(icon, msg string) {
	fmt.Fprintf(out, "%s %s\n", icon, msg)
}
