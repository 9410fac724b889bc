package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvVar, "")
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadFromEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), "huffman.yaml")
	require.NoError(t, os.WriteFile(path, []byte("suffix: .hf\nlog:\n  level: debug\n"), 0o644))
	t.Setenv(EnvVar, path)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ".hf", cfg.Suffix)
	require.Equal(t, "debug", cfg.Log.Level)
	// Unset keys keep their defaults.
	require.Equal(t, Default().BufferSize, cfg.BufferSize)
	require.Equal(t, "text", cfg.Log.Format)
}

func TestLoadFlagPathWins(t *testing.T) {
	dir := t.TempDir()
	envPath := filepath.Join(dir, "env.yaml")
	flagPath := filepath.Join(dir, "flag.yaml")
	require.NoError(t, os.WriteFile(envPath, []byte("suffix: .env\n"), 0o644))
	require.NoError(t, os.WriteFile(flagPath, []byte("suffix: .flag\n"), 0o644))
	t.Setenv(EnvVar, envPath)

	cfg, err := Load(flagPath)
	require.NoError(t, err)
	require.Equal(t, ".flag", cfg.Suffix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseEmptyDocument(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	for name, document := range map[string]string{
		"unknown key":      "compression_level: 9\n",
		"empty suffix":     "suffix: \"\"\n",
		"suffix no dot":    "suffix: huff\n",
		"bare dot":         "suffix: .\n",
		"zero buffer":      "buffer_size: 0\n",
		"unknown level":    "log:\n  level: chatty\n",
		"unknown format":   "log:\n  format: xml\n",
		"malformed yaml":   "suffix: [\n",
		"wrong value type": "buffer_size: large\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(document))
			require.Error(t, err)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := LogConfig{Level: "warn", Format: "json"}.NewLogger(&buf)
	logger.Info("dropped")
	logger.Warn("kept", "file", "a.txt")

	require.NotContains(t, buf.String(), "dropped")
	require.Contains(t, buf.String(), `"msg":"kept"`)
	require.Contains(t, buf.String(), `"file":"a.txt"`)

	buf.Reset()
	LogConfig{Level: "debug", Format: "text"}.NewLogger(&buf).Debug("hello")
	require.Contains(t, buf.String(), "msg=hello")
}
