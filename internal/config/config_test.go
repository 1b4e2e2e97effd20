package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoad_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mond.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"theme: dark\nlogging:\n  level: debug\n  format: json\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", cfg.Theme)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mond.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mond.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mond.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: solarized\n"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("MOND_THEME overrides file value", func(t *testing.T) {
		t.Setenv("MOND_THEME", "dark")

		path := filepath.Join(t.TempDir(), "mond.yaml")
		require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0644))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "dark", cfg.Theme)
	})

	t.Run("MOND_LOG_LEVEL overrides default", func(t *testing.T) {
		t.Setenv("MOND_LOG_LEVEL", "warn")

		cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.NoError(t, err)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("invalid theme from env is rejected", func(t *testing.T) {
		t.Setenv("MOND_THEME", "neon")

		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}
