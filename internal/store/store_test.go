package store

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

func TestSaveLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "book.hnpx"))

	doc, err := hnpx.NewDocument("a book about tides")
	require.NoError(t, err)
	_, err = doc.CreateChild(doc.Root().ID, hnpx.KindChapter,
		map[string]string{"title": "Flood"}, "The river rises.")
	require.NoError(t, err)

	require.NoError(t, s.Save(doc))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, doc.Root().ID, loaded.Root().ID)
	assert.Equal(t, "a book about tides", loaded.Root().Summary)
	assert.Empty(t, loaded.Validate())
	assert.Equal(t, string(hnpx.Serialize(doc)), string(hnpx.Serialize(loaded)))
}

func TestSave_FilePermissionsAndNoTempLeftovers(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission bits")
	}
	dir := t.TempDir()
	s := New(filepath.Join(dir, "book.hnpx"))

	doc, err := hnpx.NewDocument("perm check")
	require.NoError(t, err)
	require.NoError(t, s.Save(doc))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp file must not survive a successful save")
	assert.Equal(t, "book.hnpx", entries[0].Name())
}

func TestSave_ReplacesExistingDocument(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "book.hnpx"))

	first, err := hnpx.NewDocument("first draft")
	require.NoError(t, err)
	require.NoError(t, s.Save(first))

	second, err := hnpx.NewDocument("second draft")
	require.NoError(t, err)
	require.NoError(t, s.Save(second))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "second draft", loaded.Root().Summary)
}

func TestLoad_MissingFile(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.hnpx"))
	_, err := s.Load()
	assert.Error(t, err)
}

func TestLoad_CorruptDocumentKeepsCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "book.hnpx")
	require.NoError(t, os.WriteFile(path, []byte("<book id=\"aaaaaa\"><summary>s"), 0600))

	_, err := New(path).Load()
	require.Error(t, err)
	assert.Equal(t, hnpx.CodeMalformedInput, hnpx.CodeOf(err),
		"wrapping must preserve the engine error code")
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	s := New(filepath.Join(dir, "book.hnpx"))

	ok, err := s.Exists()
	require.NoError(t, err)
	assert.False(t, ok)

	doc, err := hnpx.NewDocument("x")
	require.NoError(t, err)
	require.NoError(t, s.Save(doc))

	ok, err = s.Exists()
	require.NoError(t, err)
	assert.True(t, ok)
}
