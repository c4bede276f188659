package cmd

import (
	"strings"
	"testing"
)

func TestRender_OutlineIsDefault(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewRenderCmd(mockOpen(m)), "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(stdout, "Book: a test book") {
		t.Errorf("outline missing book line:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Chapter: One") {
		t.Errorf("outline missing chapter line:\n%s", stdout)
	}
}

func TestRender_ProseScoped(t *testing.T) {
	doc, _, sequence, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewRenderCmd(mockOpen(m)),
		sequence, "--format", "prose", "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.TrimSpace(stdout) != "Sails broke the horizon." {
		t.Errorf("prose output = %q", stdout)
	}
}

func TestRender_MarkdownRejectsScope(t *testing.T) {
	doc, chapter, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewRenderCmd(mockOpen(m)),
		"--format", "markdown", "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("render markdown: %v", err)
	}
	if !strings.Contains(stdout, "# a test book") {
		t.Errorf("markdown missing title:\n%s", stdout)
	}

	_, _, err = runCmd(t, NewRenderCmd(mockOpen(m)),
		chapter, "--format", "markdown", "-d", "book.hnpx")
	if err == nil {
		t.Error("markdown with a scope id should be rejected")
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	_, _, err := runCmd(t, NewRenderCmd(mockOpen(m)),
		"--format", "latex", "-d", "book.hnpx")
	if err == nil || !strings.Contains(err.Error(), "format must be") {
		t.Errorf("expected a format error, got %v", err)
	}
}
