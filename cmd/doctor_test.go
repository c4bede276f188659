package cmd

import (
	"strings"
	"testing"
)

func TestDoctor_ValidDocument(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewDoctorCmd(mockOpen(m)), "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	if !strings.Contains(stdout, "is valid") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestDoctor_ReportsEveryViolationAndFails(t *testing.T) {
	doc, chapter, sequence, _, _ := planDoc(t)
	c, _ := doc.Find(chapter)
	s, _ := doc.Find(sequence)
	c.Title = ""
	s.Summary = ""
	m := &mockDocIO{doc: doc}

	_, stderr, err := runCmd(t, NewDoctorCmd(mockOpen(m)), "-d", "book.hnpx")
	if err == nil {
		t.Fatal("doctor should fail on an invalid document")
	}
	if !strings.Contains(err.Error(), "2 violation(s)") {
		t.Errorf("error should count violations: %v", err)
	}
	if !strings.Contains(stderr, "title") || !strings.Contains(stderr, "summary") {
		t.Errorf("stderr should carry both findings:\n%s", stderr)
	}
	if m.saved != nil {
		t.Error("doctor is read-only")
	}
}
