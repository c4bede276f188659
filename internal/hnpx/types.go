// Package hnpx implements the HNPX document model: a fixed five-level
// hierarchy (book → chapter → sequence → beat → paragraph) of planning
// nodes, plus the validation, traversal, mutation, and rendering engines
// that operate on it. The package holds no I/O; loading and persisting
// documents is the caller's concern.
package hnpx

import "strings"

// Kind identifies the five node kinds of the HNPX hierarchy.
type Kind string

const (
	KindBook      Kind = "book"
	KindChapter   Kind = "chapter"
	KindSequence  Kind = "sequence"
	KindBeat      Kind = "beat"
	KindParagraph Kind = "paragraph"
)

// childKinds maps each container kind to the single kind it may contain.
// Paragraph is absent: it is a leaf.
var childKinds = map[Kind]Kind{
	KindBook:     KindChapter,
	KindChapter:  KindSequence,
	KindSequence: KindBeat,
	KindBeat:     KindParagraph,
}

// ChildKind returns the kind a node of kind k may contain. ok is false
// for Paragraph, which may not contain anything.
func (k Kind) ChildKind() (child Kind, ok bool) {
	child, ok = childKinds[k]
	return child, ok
}

// IsContainer reports whether k may own children (every kind but Paragraph).
func (k Kind) IsContainer() bool {
	_, ok := childKinds[k]
	return ok
}

// Valid reports whether k is one of the five HNPX kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindBook, KindChapter, KindSequence, KindBeat, KindParagraph:
		return true
	}
	return false
}

// Mode is the narrative mode of a paragraph.
type Mode string

const (
	ModeNarration Mode = "narration"
	ModeDialogue  Mode = "dialogue"
	ModeInternal  Mode = "internal"
)

// Valid reports whether m is a recognized narrative mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeNarration, ModeDialogue, ModeInternal:
		return true
	}
	return false
}

// Node is one element of the HNPX tree. Exactly one struct serves all five
// kinds; the Kind tag determines which fields are meaningful. Kind-specific
// attribute rules are enforced by the validation engine, not by the type.
//
// Ownership is strictly tree-shaped: a node belongs to its parent's
// Children slice, and the parent field is a non-owning back-reference
// maintained by the document's attach/detach operations.
type Node struct {
	Kind Kind
	ID   string

	// Chapter fields.
	Title string

	// Sequence fields. POV is shared with Chapter.
	Loc  string
	Time string
	POV  string

	// Paragraph fields. Mode defaults to narration when empty.
	Mode Mode
	Char string

	// Summary is the required synopsis child of container kinds.
	// Paragraph carries Text (its narrative prose) instead.
	Summary string
	Text    string

	Children []*Node

	parent *Node
}

// Parent returns the node's parent, or nil for the book root.
func (n *Node) Parent() *Node { return n.parent }

// EffectiveMode returns the paragraph's mode, defaulting to narration.
func (n *Node) EffectiveMode() Mode {
	if n.Mode == "" {
		return ModeNarration
	}
	return n.Mode
}

// Attr is a single named attribute value. Attribute order is significant
// in the serialized form, so attributes travel as slices, not maps.
type Attr struct {
	Name  string
	Value string
}

// attrOrder lists, per kind, the canonical attribute order after id.
var attrOrder = map[Kind][]string{
	KindBook:      {},
	KindChapter:   {"title", "pov"},
	KindSequence:  {"loc", "time", "pov"},
	KindBeat:      {},
	KindParagraph: {"mode", "char"},
}

// AllowedAttr reports whether name is a legal attribute for kind k.
// The id attribute is legal on every kind.
func AllowedAttr(k Kind, name string) bool {
	if name == "id" {
		return true
	}
	for _, a := range attrOrder[k] {
		if a == name {
			return true
		}
	}
	return false
}

// Attributes returns the node's attributes in canonical order, id first.
// Empty optional attributes are omitted; a narration-mode paragraph omits
// its mode attribute entirely.
func (n *Node) Attributes() []Attr {
	attrs := []Attr{{Name: "id", Value: n.ID}}
	for _, name := range attrOrder[n.Kind] {
		if v := n.attr(name); v != "" {
			attrs = append(attrs, Attr{Name: name, Value: v})
		}
	}
	return attrs
}

// attr returns the value of the named attribute for this node's kind.
func (n *Node) attr(name string) string {
	switch name {
	case "id":
		return n.ID
	case "title":
		return n.Title
	case "loc":
		return n.Loc
	case "time":
		return n.Time
	case "pov":
		return n.POV
	case "mode":
		if n.Mode == ModeNarration {
			return ""
		}
		return string(n.Mode)
	case "char":
		return n.Char
	}
	return ""
}

// setAttr assigns the named attribute. An empty value clears the
// attribute. Returns false if name is not a legal attribute for the
// node's kind. The id attribute is never assignable through setAttr.
func (n *Node) setAttr(name, value string) bool {
	if !AllowedAttr(n.Kind, name) || name == "id" {
		return false
	}
	switch name {
	case "title":
		n.Title = value
	case "loc":
		n.Loc = value
	case "time":
		n.Time = value
	case "pov":
		n.POV = value
	case "mode":
		n.Mode = Mode(value)
	case "char":
		n.Char = value
	}
	return true
}

// clone returns a deep copy of the node and its subtree. Parent pointers
// inside the copy are rebuilt; the copy's own parent is nil.
func (n *Node) clone() *Node {
	c := *n
	c.parent = nil
	c.Children = make([]*Node, len(n.Children))
	for i, child := range n.Children {
		cc := child.clone()
		cc.parent = &c
		c.Children[i] = cc
	}
	return &c
}

// Document owns a single book root and the live identifier registry for
// one load-mutate-save session. All structural lookups go through the id
// index; the model itself performs no schema checking.
type Document struct {
	root  *Node
	index map[string]*Node
	reg   *IDRegistry

	// dups is set when the document was loaded with duplicate ids. The
	// mutation engine never mints one, so a fresh document stays false.
	dups bool
}

// NewDocument creates a fresh document holding only a book root with the
// given summary. The book id is drawn from a new registry.
func NewDocument(summary string) (*Document, error) {
	reg := NewIDRegistry()
	id, err := reg.Generate()
	if err != nil {
		return nil, err
	}
	root := &Node{Kind: KindBook, ID: id, Summary: strings.TrimSpace(summary)}
	return &Document{
		root:  root,
		index: map[string]*Node{id: root},
		reg:   reg,
	}, nil
}

// Root returns the book node.
func (d *Document) Root() *Node { return d.root }

// Registry returns the document's live identifier registry.
func (d *Document) Registry() *IDRegistry { return d.reg }

// Find returns the node with the given id.
func (d *Document) Find(id string) (*Node, error) {
	n, ok := d.index[id]
	if !ok {
		return nil, errNodeNotFound(id)
	}
	return n, nil
}

// ChildrenOf returns the ordered children of the node with the given id.
func (d *Document) ChildrenOf(id string) ([]*Node, error) {
	n, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	return n.Children, nil
}

// ParentOf returns the parent of the node with the given id, or nil for
// the root.
func (d *Document) ParentOf(id string) (*Node, error) {
	n, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	return n.parent, nil
}

// AttributesOf returns the canonical attribute list of the node with the
// given id.
func (d *Document) AttributesOf(id string) ([]Attr, error) {
	n, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	return n.Attributes(), nil
}

// attach appends child to parent's children at position pos (append when
// pos is negative or past the end), sets the back-reference, and indexes
// the child's whole subtree.
func (d *Document) attach(parent, child *Node, pos int) {
	child.parent = parent
	if pos < 0 || pos >= len(parent.Children) {
		parent.Children = append(parent.Children, child)
	} else {
		parent.Children = append(parent.Children, nil)
		copy(parent.Children[pos+1:], parent.Children[pos:])
		parent.Children[pos] = child
	}
	d.indexSubtree(child)
}

// detach removes child from its parent's children and drops its subtree
// from the index. Returns the position the child occupied.
func (d *Document) detach(child *Node) int {
	parent := child.parent
	pos := -1
	for i, c := range parent.Children {
		if c == child {
			pos = i
			break
		}
	}
	if pos >= 0 {
		parent.Children = append(parent.Children[:pos], parent.Children[pos+1:]...)
	}
	child.parent = nil
	d.unindexSubtree(child)
	return pos
}

func (d *Document) indexSubtree(n *Node) {
	d.index[n.ID] = n
	d.reg.Register(n.ID)
	for _, c := range n.Children {
		d.indexSubtree(c)
	}
}

// unindexSubtree drops the subtree's ids from the index and registry. An
// entry is removed only when it points at the node being dropped: after a
// load with duplicate ids another live node may hold the same id, and its
// lookup must keep working once the dropped copy is gone.
func (d *Document) unindexSubtree(n *Node) {
	Walk(n, func(x *Node) {
		if d.index[x.ID] == x {
			delete(d.index, x.ID)
			d.reg.Release(x.ID)
		}
	})
	if !d.dups {
		return
	}
	// A removed entry may have shadowed a surviving duplicate; restore it.
	Walk(d.root, func(x *Node) {
		if _, ok := d.index[x.ID]; !ok {
			d.index[x.ID] = x
			d.reg.Register(x.ID)
		}
	})
}

// Walk visits n and its descendants pre-order, children left to right.
func Walk(n *Node, fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		Walk(c, fn)
	}
}
