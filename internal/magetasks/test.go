package magetasks

import (
	"fmt"
)

// CoverageFile is where TestCoverage writes its profile.
const CoverageFile = "coverage.out"

// TestAll runs all tests.
func TestAll() error {
	return goTest("Tests", "All tests passed", "-v")
}

// TestCoverage runs tests with a coverage profile and prints the per-function
// summary.
func TestCoverage() error {
	if err := goTest("Test Coverage", "Coverage profile written to "+CoverageFile, "-coverprofile="+CoverageFile); err != nil {
		return err
	}
	if err := Run("Coverage Summary", "go", "tool", "cover", "-func="+CoverageFile); err != nil {
		PrintWarning(fmt.Sprintf("coverage summary unavailable: %v", err))
	}
	return nil
}

// TestRace runs tests with the race detector.
func TestRace() error {
	return goTest("Race Detector", "No race conditions detected", "-race")
}

func goTest(section, okMsg string, flags ...string) error {
	PrintH2Header(section)

	args := append([]string{"test"}, flags...)
	args = append(args, "./...")
	if err := Run(section, "go", args...); err != nil {
		PrintError(section + " failed")
		return err
	}

	PrintSuccess(okMsg)
	return nil
}
