package magetasks

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Run executes a command with its output attached to the console and reports
// how long it took.
func Run(label, name string, args ...string) error {
	fmt.Fprintf(out, "→ %s: %s %s\n", label, name, strings.Join(args, " "))
	start := time.Now()

	cmd := exec.Command(name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", label, err)
	}

	fmt.Fprintf(out, "  done in %s\n", time.Since(start).Round(time.Millisecond))
	return nil
}

// IsCommandNotFound reports whether err means the tool is not installed.
func IsCommandNotFound(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, exec.ErrNotFound) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "executable file not found") ||
		strings.Contains(msg, "no such file or directory")
}
