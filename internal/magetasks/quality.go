package magetasks

import (
	"fmt"
)

// QualityCheck runs lint, tests, a build and the sample smoke run. Lint
// findings are reported but do not stop the remaining steps.
func QualityCheck() error {
	PrintH1Header("spooltag Quality Checks")

	if err := LintAll(); err != nil {
		PrintWarning(fmt.Sprintf("lint: %v", err))
	}

	steps := []struct {
		name string
		fn   func() error
	}{
		{"tests", TestAll},
		{"build", BuildAll},
		{"smoke", Smoke},
	}
	for _, s := range steps {
		if err := s.fn(); err != nil {
			return fmt.Errorf("%s failed: %w", s.name, err)
		}
	}

	PrintSuccess("Quality checks complete")
	return nil
}
