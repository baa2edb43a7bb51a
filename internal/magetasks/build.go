package magetasks

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// LDFlags returns the linker flags that stamp internal/version.
func LDFlags(version, commit, date string) string {
	pkg := ModulePath + "/internal/version"
	return fmt.Sprintf("-s -w -X '%s.Version=%s' -X '%s.CommitHash=%s' -X '%s.BuildDate=%s'",
		pkg, version, pkg, commit, pkg, date)
}

// BuildAll builds the spooltag binary.
func BuildAll() error {
	PrintH2Header("Build")

	ldflags := LDFlags(getGitVersion(), getGitCommit(), time.Now().UTC().Format(time.RFC3339))

	PrintInfo("Building spooltag...")
	if err := Run("Go Build", "go", "build", "-ldflags", ldflags, "-o", BinPath, MainPackage); err != nil {
		PrintError("Build failed")
		return err
	}

	PrintSuccess(fmt.Sprintf("Built: %s", BinPath))
	return nil
}

// Smoke decodes every sample dump with the built binary in plain mode.
func Smoke() error {
	PrintH2Header("Smoke")

	dumps, err := filepath.Glob(filepath.Join(SampleDir, "*.nfc"))
	if err != nil {
		return err
	}
	jsonDumps, _ := filepath.Glob(filepath.Join(SampleDir, "*.json"))
	for _, d := range jsonDumps {
		if filepath.Base(d) != "filament_colors.json" {
			dumps = append(dumps, d)
		}
	}
	if len(dumps) == 0 {
		PrintWarning("No sample dumps in " + SampleDir)
		return nil
	}

	colors := filepath.Join(SampleDir, "filament_colors.json")
	for _, d := range dumps {
		if err := Run(filepath.Base(d), BinPath, "--output", "plain", "--colors-json", colors, d); err != nil {
			PrintError("Smoke failed on " + d)
			return err
		}
	}
	PrintSuccess(fmt.Sprintf("Decoded %d sample dumps", len(dumps)))
	return nil
}

// Clean removes build artifacts.
func Clean() error {
	PrintH2Header("Clean")

	if err := os.RemoveAll("./bin"); err != nil {
		return err
	}
	_ = os.Remove("coverage.out")
	cmd := exec.Command("go", "clean", "-cache")
	_ = cmd.Run()

	PrintSuccess("Cleaned build artifacts")
	return nil
}

func getGitVersion() string {
	b, err := exec.Command("git", "describe", "--tags", "--always", "--dirty", "--match=v*").Output()
	if err != nil {
		return "dev"
	}
	return strings.TrimSpace(string(b))
}

func getGitCommit() string {
	b, err := exec.Command("git", "rev-parse", "--short", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(b))
}
