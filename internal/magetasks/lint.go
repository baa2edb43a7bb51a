package magetasks

import (
	"errors"
	"fmt"
)

// golangciDisabled are linters that fight the codebase's style.
const golangciDisabled = "--disable=exhaustruct,varnamelen,ireturn,wrapcheck,nlreturn,gochecknoglobals,mnd,depguard,tagalign"

type linter struct {
	label    string
	args     []string
	install  string // empty for tools that ship with Go
	optional bool
}

var (
	formatLinter      = linter{label: "Go Format", args: []string{"go", "fmt", "./..."}}
	vetLinter         = linter{label: "Go Vet", args: []string{"go", "vet", "./..."}}
	staticcheckLinter = linter{
		label:    "Staticcheck",
		args:     []string{"staticcheck", "./..."},
		install:  "honnef.co/go/tools/cmd/staticcheck@latest",
		optional: true,
	}
	golangciLinter = linter{
		label:    "Golangci-lint",
		args:     []string{"golangci-lint", "run", golangciDisabled, "--timeout=5m", "./..."},
		install:  "github.com/golangci/golangci-lint/cmd/golangci-lint@latest",
		optional: true,
	}
	golangciFixLinter = linter{
		label:    "Golangci-lint Fix",
		args:     []string{"golangci-lint", "run", "--fix", golangciDisabled, "--timeout=5m", "./..."},
		install:  golangciLinter.install,
		optional: true,
	}
)

func (l linter) run() error {
	err := Run(l.label, l.args[0], l.args[1:]...)
	if err == nil {
		return nil
	}
	if l.install != "" && IsCommandNotFound(err) {
		PrintWarning(fmt.Sprintf("%s not found (install: go install %s)", l.args[0], l.install))
		return err
	}
	return fmt.Errorf("%s failed: %w", l.label, err)
}

// LintAll runs every linter. Optional linters that are not installed are
// skipped.
func LintAll() error {
	PrintH2Header("Lint")

	var errs []error
	for _, l := range []linter{formatLinter, vetLinter, staticcheckLinter, golangciLinter} {
		if err := l.run(); err != nil {
			if l.optional && IsCommandNotFound(err) {
				continue
			}
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	PrintSuccess("All linters passed")
	return nil
}

// LintFormat checks code formatting.
func LintFormat() error { return formatLinter.run() }

// LintVet runs go vet.
func LintVet() error { return vetLinter.run() }

// LintStaticcheck runs staticcheck.
func LintStaticcheck() error { return staticcheckLinter.run() }

// LintGolangci runs golangci-lint.
func LintGolangci() error { return golangciLinter.run() }

// LintGolangciFix runs golangci-lint with auto-fixes.
func LintGolangciFix() error { return golangciFixLinter.run() }
