package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), Filename))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(path,
		[]byte("document: novel.hnpx\nlog_level: debug\n"), 0600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "novel.hnpx", cfg.Document)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched fields keep their defaults.
	assert.Equal(t, "stdio", cfg.Transport)
	assert.Equal(t, "outline", cfg.RenderFormat)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(path, []byte("document: novel.hnpx\n"), 0600))

	t.Setenv("HNPX_DOCUMENT", "from-env.hnpx")
	t.Setenv("HNPX_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env.hnpx", cfg.Document)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)
	require.NoError(t, os.WriteFile(path, []byte(":\n  - not: [valid"), 0600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestWrite_RoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, Filename)

	want := Default()
	want.Document = "draft.hnpx"
	require.NoError(t, want.Write(path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
