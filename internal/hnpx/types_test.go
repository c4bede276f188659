package hnpx

// Tests for the document model surface.

import "testing"

func TestKind_HierarchyTable(t *testing.T) {
	cases := []struct {
		kind  Kind
		child Kind
		ok    bool
	}{
		{KindBook, KindChapter, true},
		{KindChapter, KindSequence, true},
		{KindSequence, KindBeat, true},
		{KindBeat, KindParagraph, true},
		{KindParagraph, "", false},
	}
	for _, c := range cases {
		child, ok := c.kind.ChildKind()
		if ok != c.ok || child != c.child {
			t.Errorf("ChildKind(%s) = (%s, %v), want (%s, %v)", c.kind, child, ok, c.child, c.ok)
		}
		if c.kind.IsContainer() != c.ok {
			t.Errorf("IsContainer(%s) = %v", c.kind, !c.ok)
		}
	}
	if Kind("scene").Valid() {
		t.Error("scene is not a kind")
	}
}

func TestEffectiveMode_DefaultsToNarration(t *testing.T) {
	p := &Node{Kind: KindParagraph}
	if p.EffectiveMode() != ModeNarration {
		t.Errorf("empty mode should read as narration, got %s", p.EffectiveMode())
	}
	p.Mode = ModeInternal
	if p.EffectiveMode() != ModeInternal {
		t.Errorf("explicit mode should win, got %s", p.EffectiveMode())
	}
}

func TestAttributes_CanonicalOrderIDFirst(t *testing.T) {
	n := &Node{Kind: KindSequence, ID: "abc123", Loc: "Harbor", Time: "dusk", POV: "mira"}
	attrs := n.Attributes()
	want := []Attr{
		{"id", "abc123"}, {"loc", "Harbor"}, {"time", "dusk"}, {"pov", "mira"},
	}
	if len(attrs) != len(want) {
		t.Fatalf("got %v", attrs)
	}
	for i := range want {
		if attrs[i] != want[i] {
			t.Errorf("attrs[%d] = %v, want %v", i, attrs[i], want[i])
		}
	}
}

func TestAttributes_NarrationModeOmitted(t *testing.T) {
	n := &Node{Kind: KindParagraph, ID: "abc123", Mode: ModeNarration}
	if len(n.Attributes()) != 1 {
		t.Errorf("narration mode must not appear as an attribute: %v", n.Attributes())
	}
}

func TestAllowedAttr_PerKind(t *testing.T) {
	if !AllowedAttr(KindChapter, "title") || !AllowedAttr(KindChapter, "pov") {
		t.Error("chapter allows title and pov")
	}
	if AllowedAttr(KindChapter, "loc") {
		t.Error("loc belongs to sequences, not chapters")
	}
	if AllowedAttr(KindBeat, "mode") {
		t.Error("beats carry no attributes beyond id")
	}
	if !AllowedAttr(KindBook, "id") {
		t.Error("id is legal everywhere")
	}
}

func TestParentOfAndAttributesOf(t *testing.T) {
	doc, c, s, _, _ := buildDoc(t)

	parent, err := doc.ParentOf(s)
	if err != nil {
		t.Fatalf("ParentOf: %v", err)
	}
	if parent.ID != c {
		t.Errorf("sequence parent = %s, want %s", parent.ID, c)
	}

	root, err := doc.ParentOf(doc.Root().ID)
	if err != nil {
		t.Fatalf("ParentOf root: %v", err)
	}
	if root != nil {
		t.Error("root has no parent")
	}

	attrs, err := doc.AttributesOf(c)
	if err != nil {
		t.Fatalf("AttributesOf: %v", err)
	}
	if len(attrs) == 0 || attrs[0].Name != "id" {
		t.Errorf("attributes must lead with id: %v", attrs)
	}

	if _, err := doc.AttributesOf("zzzzzz"); CodeOf(err) != CodeNodeNotFound {
		t.Errorf("expected NODE_NOT_FOUND, got %v", err)
	}
}

func TestNewDocument_BookRootRegistered(t *testing.T) {
	doc, err := NewDocument("fresh")
	if err != nil {
		t.Fatalf("NewDocument: %v", err)
	}
	root := doc.Root()
	if root.Kind != KindBook || !ValidID(root.ID) {
		t.Errorf("root = %+v", root)
	}
	if !doc.Registry().Has(root.ID) {
		t.Error("root id must be registered")
	}
}
