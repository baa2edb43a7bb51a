package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/spooltag/pkg/colors"
	"github.com/dkoosis/spooltag/pkg/render"
)

// isolate moves the test into an empty working directory with no user config
// and no SPOOLTAG_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tempDir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	for _, k := range []string{EnvColorsJSON, EnvTheme, EnvOutput, EnvNoColor, EnvDebug, "NO_COLOR"} {
		t.Setenv(k, "")
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tempDir, "xdg"))
	t.Setenv("HOME", filepath.Join(tempDir, "home"))
	return tempDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestGetConfigPath_ReturnsLocalConfig_When_FileExists(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, "theme: orca\n")
	assert.Equal(t, FileName, getConfigPath())
}

func TestGetConfigPath_UsesXDGPath_When_LocalMissing(t *testing.T) {
	dir := isolate(t)
	xdgPath := filepath.Join(dir, "xdg", "spooltag", FileName)
	writeFile(t, xdgPath, "theme: orca\n")
	assert.Equal(t, xdgPath, getConfigPath())
}

func TestGetConfigPath_ReturnsEmpty_When_NoConfigAvailable(t *testing.T) {
	isolate(t)
	assert.Equal(t, "", getConfigPath())
}

func TestResolve_Defaults(t *testing.T) {
	isolate(t)

	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, colors.DefaultFile, r.ColorsJSON)
	assert.Equal(t, SourceDefault, r.ColorsJSONSource)
	assert.Equal(t, DefaultTheme, r.Theme)
	assert.Equal(t, render.ModeAuto, r.Output)
	assert.Equal(t, 10.0, r.SpoolWidthDivisor)
	assert.Equal(t, 1.0, r.LengthDivisor)
	assert.False(t, r.NoColor)
	assert.Empty(t, r.ConfigPath)
	assert.Empty(t, r.Warnings)
}

func TestResolve_FileValues(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, ""+
		"colors_json: /data/colors.json\n"+
		"theme: orca\n"+
		"output: plain\n"+
		"no_color: true\n"+
		"debug: true\n"+
		"spool_width_divisor: 100\n"+
		"length_divisor: 1000\n")

	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, FileName, r.ConfigPath)
	assert.Equal(t, "/data/colors.json", r.ColorsJSON)
	assert.Equal(t, SourceFile, r.ColorsJSONSource)
	assert.Equal(t, "orca", r.Theme)
	assert.Equal(t, render.ModePlain, r.Output)
	assert.True(t, r.NoColor)
	assert.True(t, r.Debug)
	assert.Equal(t, "mono", r.ThemeName())
	assert.Equal(t, 100.0, r.SpoolWidthDivisor)
	assert.Equal(t, 1000.0, r.LengthDivisor)
}

func TestResolve_PriorityOrder(t *testing.T) {
	tests := []struct {
		name       string
		file       string
		env        map[string]string
		flags      CliFlags
		wantTheme  string
		wantSource string
	}{
		{"file beats default", "theme: orca\n", nil, CliFlags{}, "orca", SourceFile},
		{"env beats file", "theme: orca\n", map[string]string{EnvTheme: "mono"}, CliFlags{}, "mono", SourceEnv},
		{"cli beats env", "theme: orca\n", map[string]string{EnvTheme: "mono"}, CliFlags{Theme: "default"}, "default", SourceCLI},
		{"default when unset", "", nil, CliFlags{}, "default", SourceDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.file != "" {
				writeFile(t, FileName, tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r, err := Resolve(tt.flags)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTheme, r.Theme)
			assert.Equal(t, tt.wantSource, r.ThemeSource)
		})
	}
}

func TestResolve_NoColorEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		file string
		want bool
	}{
		{"NO_COLOR any value", map[string]string{"NO_COLOR": "yes"}, "", true},
		{"SPOOLTAG_NO_COLOR true", map[string]string{EnvNoColor: "1"}, "", true},
		{"SPOOLTAG_NO_COLOR false overrides file", map[string]string{EnvNoColor: "false"}, "no_color: true\n", false},
		{"unset", nil, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.file != "" {
				writeFile(t, FileName, tt.file)
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			r, err := Resolve(CliFlags{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.NoColor)
		})
	}
}

func TestResolve_ExplicitConfigPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, FileName, "theme: mono\n")
	explicit := filepath.Join(dir, "custom.yaml")
	writeFile(t, explicit, "theme: orca\ncolors_json: mine.json\n")

	r, err := Resolve(CliFlags{ConfigPath: explicit})
	require.NoError(t, err)
	assert.Equal(t, explicit, r.ConfigPath)
	assert.Equal(t, "orca", r.Theme)
	assert.Equal(t, "mine.json", r.ColorsJSON)

	r, err = Resolve(CliFlags{ConfigPath: explicit, ColorsJSON: "flag.json"})
	require.NoError(t, err)
	assert.Equal(t, "flag.json", r.ColorsJSON)
	assert.Equal(t, SourceCLI, r.ColorsJSONSource)

	_, err = Resolve(CliFlags{ConfigPath: filepath.Join(dir, "missing.yaml")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestResolve_InvalidYAMLWarns(t *testing.T) {
	isolate(t)
	writeFile(t, FileName, "theme: [unclosed\n")

	r, err := Resolve(CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, DefaultTheme, r.Theme)
	assert.Empty(t, r.ConfigPath)
	require.Len(t, r.Warnings, 1)
	assert.Contains(t, r.Warnings[0], "error parsing config file")
}

func TestResolve_Validation(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		flags   CliFlags
		wantErr string
	}{
		{"bad output flag", "", CliFlags{Output: "html"}, `invalid output "html" from cli`},
		{"bad theme in file", "theme: solarized\n", CliFlags{}, `invalid theme "solarized" from file`},
		{"negative width divisor", "spool_width_divisor: -10\n", CliFlags{}, "spool_width_divisor must be positive"},
		{"negative length divisor", "length_divisor: -1\n", CliFlags{}, "length_divisor must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			if tt.file != "" {
				writeFile(t, FileName, tt.file)
			}
			_, err := Resolve(tt.flags)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
