package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// mockDocIO is an in-memory DocIO for command tests.
type mockDocIO struct {
	doc     *hnpx.Document
	saved   *hnpx.Document
	loadErr error
	saveErr error
	path    string
}

func (m *mockDocIO) Load() (*hnpx.Document, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	return m.doc, nil
}

func (m *mockDocIO) Save(doc *hnpx.Document) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = doc
	return nil
}

func (m *mockDocIO) Exists() (bool, error) {
	return m.doc != nil, nil
}

func (m *mockDocIO) Path() string { return m.path }

func mockOpen(m *mockDocIO) OpenDoc {
	return func(path string) DocIO {
		m.path = path
		return m
	}
}

// planDoc builds a fully planned document and returns it with the id of
// each level.
func planDoc(t *testing.T) (doc *hnpx.Document, chapter, sequence, beat, paragraph string) {
	t.Helper()
	doc, err := hnpx.NewDocument("a test book")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	chapter, err = doc.CreateChild(doc.Root().ID, hnpx.KindChapter,
		map[string]string{"title": "One"}, "The first chapter.")
	if err != nil {
		t.Fatalf("create chapter: %v", err)
	}
	sequence, err = doc.CreateChild(chapter, hnpx.KindSequence,
		map[string]string{"loc": "Harbor"}, "The harbor at dusk.")
	if err != nil {
		t.Fatalf("create sequence: %v", err)
	}
	beat, err = doc.CreateChild(sequence, hnpx.KindBeat, nil, "The ship arrives.")
	if err != nil {
		t.Fatalf("create beat: %v", err)
	}
	paragraph, err = doc.CreateChild(beat, hnpx.KindParagraph, nil, "Sails broke the horizon.")
	if err != nil {
		t.Fatalf("create paragraph: %v", err)
	}
	return doc, chapter, sequence, beat, paragraph
}

// runCmd executes cmd with args and returns stdout, stderr, and the error.
func runCmd(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
