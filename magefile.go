//go:build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/mg"

	"github.com/dkoosis/spooltag/internal/magetasks"
)

// Default target - build the binary
var Default = Build

func init() {
	if err := magetasks.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal: %v\n", err)
		os.Exit(1)
	}
}

// Build builds the spooltag binary
func Build() error {
	return magetasks.BuildAll()
}

// Clean removes build artifacts
func Clean() error {
	return magetasks.Clean()
}

// Smoke decodes the sample dumps with a fresh build
func Smoke() error {
	mg.Deps(Build)
	return magetasks.Smoke()
}

// QA runs formatting, vet, optional linters, tests and a build
func QA() error {
	magetasks.PrintH1Header("spooltag Quality Assurance")

	if err := magetasks.Run("Go Format", "go", "fmt", "./..."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}
	if err := magetasks.Run("Go Vet", "go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}

	optional := []struct {
		label, install string
		args           []string
	}{
		{"Staticcheck", "honnef.co/go/tools/cmd/staticcheck@latest", []string{"staticcheck", "./..."}},
		{"Gosec Security Scan", "github.com/securego/gosec/v2/cmd/gosec@latest", []string{"gosec", "-quiet", "./..."}},
	}
	for _, tool := range optional {
		if err := magetasks.Run(tool.label, tool.args[0], tool.args[1:]...); err != nil {
			if magetasks.IsCommandNotFound(err) {
				magetasks.PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", tool.args[0], tool.install))
				continue
			}
			return err
		}
	}

	if err := magetasks.TestAll(); err != nil {
		return err
	}
	if err := magetasks.Run("Go Build", "go", "build", "./..."); err != nil {
		return fmt.Errorf("build failed: %w", err)
	}

	magetasks.PrintSuccess("QA complete!")
	return nil
}

// Lint namespace for linting commands
type Lint mg.Namespace

// All runs all linters
func (Lint) All() error {
	return magetasks.LintAll()
}

// Format checks code formatting
func (Lint) Format() error {
	return magetasks.LintFormat()
}

// Vet runs go vet
func (Lint) Vet() error {
	return magetasks.LintVet()
}

// Staticcheck runs staticcheck
func (Lint) Staticcheck() error {
	return magetasks.LintStaticcheck()
}

// Golangci runs golangci-lint
func (Lint) Golangci() error {
	return magetasks.LintGolangci()
}

// Fix runs golangci-lint with auto-fixes
func (Lint) Fix() error {
	return magetasks.LintGolangciFix()
}

// Test namespace for testing commands
type Test mg.Namespace

// All runs all tests
func (Test) All() error {
	return magetasks.TestAll()
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	return magetasks.TestCoverage()
}

// Race runs tests with race detector
func (Test) Race() error {
	return magetasks.TestRace()
}

// Quality namespace for quality check commands
type Quality mg.Namespace

// Check runs lint, tests, build and the sample smoke run
func (Quality) Check() error {
	return magetasks.QualityCheck()
}
