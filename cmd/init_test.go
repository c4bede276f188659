package cmd

import (
	"strings"
	"testing"
)

func TestInit_CreatesDocument(t *testing.T) {
	m := &mockDocIO{}
	stdout, _, err := runCmd(t, NewInitCmd(mockOpen(m)), "my new book", "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if m.saved == nil {
		t.Fatal("init should save a document")
	}
	if m.saved.Root().Summary != "my new book" {
		t.Errorf("root summary = %q", m.saved.Root().Summary)
	}
	if !strings.Contains(stdout, "Initialized book.hnpx") {
		t.Errorf("unexpected output: %q", stdout)
	}
	if !strings.Contains(stdout, m.saved.Root().ID) {
		t.Error("output should include the new book id")
	}
}

func TestInit_RefusesToOverwriteWithoutForce(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	_, _, err := runCmd(t, NewInitCmd(mockOpen(m)), "replacement", "-d", "book.hnpx")
	if err == nil {
		t.Fatal("init over an existing document should fail without --force")
	}
	if m.saved != nil {
		t.Error("existing document must not be overwritten")
	}

	_, _, err = runCmd(t, NewInitCmd(mockOpen(m)), "replacement", "-d", "book.hnpx", "--force")
	if err != nil {
		t.Fatalf("init --force: %v", err)
	}
	if m.saved == nil || m.saved.Root().Summary != "replacement" {
		t.Error("init --force should replace the document")
	}
}
