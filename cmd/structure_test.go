package cmd

// Tests for move, reorder, delete, next, show, and stats.

import (
	"strings"
	"testing"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

func TestMove_ReparentsNode(t *testing.T) {
	doc, chapter, _, beat, _ := planDoc(t)
	s2, err := doc.CreateChild(chapter, hnpx.KindSequence,
		map[string]string{"loc": "Docks"}, "The docks.")
	if err != nil {
		t.Fatalf("create sequence: %v", err)
	}
	m := &mockDocIO{doc: doc}

	_, _, err = runCmd(t, NewMoveCmd(mockOpen(m)), beat, s2, "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("move: %v", err)
	}
	b, _ := doc.Find(beat)
	if b.Parent().ID != s2 {
		t.Errorf("beat parent = %s, want %s", b.Parent().ID, s2)
	}
	if m.saved == nil {
		t.Error("move should save the document")
	}
}

func TestMove_InvalidDestinationDoesNotSave(t *testing.T) {
	doc, chapter, _, beat, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	_, _, err := runCmd(t, NewMoveCmd(mockOpen(m)), beat, chapter, "-d", "book.hnpx")
	if err == nil {
		t.Fatal("a beat cannot live under a chapter")
	}
	if m.saved != nil {
		t.Error("failed move must not save")
	}
}

func TestReorder_AppliesPermutation(t *testing.T) {
	doc, _, sequence, beat, _ := planDoc(t)
	b2, err := doc.CreateChild(sequence, hnpx.KindBeat, nil, "Another beat.")
	if err != nil {
		t.Fatalf("create beat: %v", err)
	}
	m := &mockDocIO{doc: doc}

	_, _, err = runCmd(t, NewReorderCmd(mockOpen(m)), sequence, b2, beat, "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	children, _ := doc.ChildrenOf(sequence)
	if children[0].ID != b2 || children[1].ID != beat {
		t.Errorf("order not applied: %s, %s", children[0].ID, children[1].ID)
	}
}

func TestReorder_RejectsPartialOrder(t *testing.T) {
	doc, _, sequence, beat, _ := planDoc(t)
	if _, err := doc.CreateChild(sequence, hnpx.KindBeat, nil, "Another beat."); err != nil {
		t.Fatalf("create beat: %v", err)
	}
	m := &mockDocIO{doc: doc}

	_, _, err := runCmd(t, NewReorderCmd(mockOpen(m)), sequence, beat, "-d", "book.hnpx")
	if err == nil {
		t.Fatal("a subset is not a permutation")
	}
	if m.saved != nil {
		t.Error("failed reorder must not save")
	}
}

func TestDelete_RemovesSubtree(t *testing.T) {
	doc, chapter, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewDeleteCmd(mockOpen(m)), chapter, "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if !strings.Contains(stdout, "Removed 4 node(s)") {
		t.Errorf("unexpected output: %q", stdout)
	}
	if _, err := doc.Find(chapter); hnpx.CodeOf(err) != hnpx.CodeNodeNotFound {
		t.Error("chapter should be gone")
	}
}

func TestDelete_ChildrenOnly(t *testing.T) {
	doc, _, sequence, beat, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewDeleteCmd(mockOpen(m)),
		sequence, "--children", "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("delete --children: %v", err)
	}
	if !strings.Contains(stdout, "Removed 2 node(s)") {
		t.Errorf("unexpected output: %q", stdout)
	}
	if _, err := doc.Find(sequence); err != nil {
		t.Error("the sequence itself should survive")
	}
	if _, err := doc.Find(beat); err == nil {
		t.Error("the beat should be gone")
	}
}

func TestDelete_RootIsRejected(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	_, _, err := runCmd(t, NewDeleteCmd(mockOpen(m)), doc.Root().ID, "-d", "book.hnpx")
	if err == nil {
		t.Fatal("the book root cannot be deleted")
	}
	if m.saved != nil {
		t.Error("failed delete must not save")
	}
}

func TestNext_ReportsEmptyContainer(t *testing.T) {
	doc, chapter, _, _, _ := planDoc(t)
	s2, err := doc.CreateChild(chapter, hnpx.KindSequence,
		map[string]string{"loc": "Docks"}, "The docks.")
	if err != nil {
		t.Fatalf("create sequence: %v", err)
	}
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewNextCmd(mockOpen(m)), "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !strings.Contains(stdout, s2) {
		t.Errorf("next should report the empty sequence %s, got %q", s2, stdout)
	}
}

func TestNext_FullyExpanded(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewNextCmd(mockOpen(m)), "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if !strings.Contains(stdout, "Fully expanded") {
		t.Errorf("unexpected output: %q", stdout)
	}
}

func TestShow_NodeDetails(t *testing.T) {
	doc, chapter, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewShowCmd(mockOpen(m)), chapter, "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{chapter, "chapter", "title: One", "summary: The first chapter."} {
		if !strings.Contains(stdout, want) {
			t.Errorf("show output missing %q:\n%s", want, stdout)
		}
	}
}

func TestShow_Path(t *testing.T) {
	doc, _, _, _, paragraph := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewShowCmd(mockOpen(m)),
		paragraph, "--path", "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("show --path: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 5 {
		t.Fatalf("path should have 5 lines, got %d:\n%s", len(lines), stdout)
	}
	if !strings.Contains(lines[0], "book") || !strings.Contains(lines[4], "paragraph") {
		t.Errorf("path order wrong:\n%s", stdout)
	}
}

func TestStats_HumanReadable(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewStatsCmd(mockOpen(m)), "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	for _, want := range []string{"Elements: 5", "Words: 4", "Depth: 4"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("stats output missing %q:\n%s", want, stdout)
		}
	}
}

func TestStats_JSON(t *testing.T) {
	doc, _, _, _, _ := planDoc(t)
	m := &mockDocIO{doc: doc}

	stdout, _, err := runCmd(t, NewStatsCmd(mockOpen(m)), "--json", "-d", "book.hnpx")
	if err != nil {
		t.Fatalf("stats --json: %v", err)
	}
	if !strings.Contains(stdout, `"total_elements": 5`) {
		t.Errorf("json output missing totals:\n%s", stdout)
	}
}
