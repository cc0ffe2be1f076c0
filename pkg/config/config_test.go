package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/noctarius/pgloader/pkg/config"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(strings.NewReader(`
commands: migrations/sakila.load
format:
  indent_size: 2
  lowercase_keywords: true
`))
	require.NoError(t, err)
	require.Equal(t, "migrations/sakila.load", cfg.Commands)
	require.Equal(t, 2, cfg.Format.IndentSize)
	require.True(t, cfg.Format.LowercaseKeywords)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(strings.NewReader("{}\n"))
	require.NoError(t, err)
	require.Equal(t, "commands.load", cfg.Commands)
	require.Equal(t, 4, cfg.Format.IndentSize)
	require.False(t, cfg.Format.LowercaseKeywords)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	t.Parallel()

	_, err := LoadConfig(strings.NewReader("commands: [unclosed"))
	require.Error(t, err)
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "pgloader.yaml")
	require.NoError(t, os.WriteFile(path, []byte("commands: all.load\n"), 0o644))

	cfg, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.Equal(t, "all.load", cfg.Commands)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
