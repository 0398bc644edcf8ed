package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_defaults(t *testing.T) {
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "info", Workers: 4, Cache: true}, cfg)
}

func TestLoad_file(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nfagrep.yaml")
	require.NoError(t, os.WriteFile(file, []byte("log_level: debug\nworkers: 8\ncache: false\n"), 0o644))

	cfg, err := Load(New(), file)
	require.NoError(t, err)
	assert.Equal(t, Config{LogLevel: "debug", Workers: 8, Cache: false}, cfg)
}

func TestLoad_missingFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_env(t *testing.T) {
	t.Setenv("NFAGREP_WORKERS", "2")
	t.Setenv("NFAGREP_LOG_LEVEL", "warn")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_flagsWin(t *testing.T) {
	t.Setenv("NFAGREP_WORKERS", "2")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("workers", 4, "")
	fs.String("log-level", "info", "")
	require.NoError(t, fs.Parse([]string{"--workers=6"}))

	v := New()
	require.NoError(t, BindFlags(v, fs))
	cfg, err := Load(v, "")
	require.NoError(t, err)
	assert.Equal(t, 6, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, Config{LogLevel: "debug", Workers: 1}.Validate())
	assert.Error(t, Config{LogLevel: "debug", Workers: 0}.Validate())
	assert.Error(t, Config{LogLevel: "loud", Workers: 1}.Validate())
}
