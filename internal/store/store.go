// Package store persists an HNPX document to a single file. Writes are
// atomic: the canonical serialization goes to a temp file in the target
// directory, then replaces the document with a rename. Readers never see
// a half-written document.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// Store reads and writes one document at a fixed path.
type Store struct {
	path string
}

// New returns a Store bound to path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path the store is bound to.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the document file is present. Errors are
// returned only for unexpected OS failures, not for absence.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

// Load reads and parses the document.
func (s *Store) Load() (*hnpx.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}
	doc, err := hnpx.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", s.path, err)
	}
	return doc, nil
}

// Save writes the canonical serialization of doc atomically with 0600
// permissions. The temp file carries a UUID so concurrent saves into the
// same directory never collide.
func (s *Store) Save(doc *hnpx.Document) error {
	dir := filepath.Dir(s.path)
	tmpName := filepath.Join(dir, "."+filepath.Base(s.path)+"."+uuid.NewString()+".tmp")

	tmp, err := os.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	if _, err = tmp.Write(hnpx.Serialize(doc)); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
