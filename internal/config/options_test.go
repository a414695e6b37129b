package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvMode, EnvLanguage, EnvSeed, EnvVerbose} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	opts, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ModeAuto, opts.Mode)
	assert.Equal(t, "", opts.Language)
	assert.True(t, opts.Seed)
	assert.False(t, opts.Verbose)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMode, "cli")
	t.Setenv(EnvLanguage, "ru")
	t.Setenv(EnvSeed, "false")
	t.Setenv(EnvVerbose, "1")

	opts, err := Load(nil, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ModeCLI, opts.Mode)
	assert.Equal(t, "ru", opts.Language)
	assert.False(t, opts.Seed)
	assert.True(t, opts.Verbose)
}

func TestLoadFlagsOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMode, "cli")
	t.Setenv(EnvSeed, "true")

	opts, err := Load([]string{"-mode", "gui", "-seed=false", "-lang", "pt"}, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ModeGUI, opts.Mode)
	assert.Equal(t, "pt", opts.Language)
	assert.False(t, opts.Seed)
}

func TestLoadEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set, even empty ones
	for _, key := range []string{EnvMode, EnvLanguage} {
		require.NoError(t, os.Unsetenv(key))
	}
	t.Cleanup(func() {
		_ = os.Unsetenv(EnvMode)
		_ = os.Unsetenv(EnvLanguage)
	})

	envFile := filepath.Join(t.TempDir(), "catalog.env")
	require.NoError(t, os.WriteFile(envFile, []byte("CATALOG_MODE=cli\nCATALOG_LANG=pt\n"), 0o600))

	opts, err := Load(nil, envFile)
	require.NoError(t, err)

	assert.Equal(t, ModeCLI, opts.Mode)
	assert.Equal(t, "pt", opts.Language)
}

func TestLoadInvalidMode(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-mode", "tui"}, filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, ErrInvalidMode)
}

func TestLoadUnknownFlag(t *testing.T) {
	clearEnv(t)

	_, err := Load([]string{"-colour"}, filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestModeIsValid(t *testing.T) {
	tests := []struct {
		mode     Mode
		expected bool
	}{
		{ModeAuto, true},
		{ModeGUI, true},
		{ModeCLI, true},
		{Mode(""), false},
		{Mode("web"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.mode.IsValid(), "Mode(%q).IsValid()", tt.mode)
	}
}
