package hnpx

import (
	"fmt"
	"strings"
)

// Mutating operations. Each one is transactional: the change is applied,
// the affected subtree plus its ancestor chain is re-validated, and on any
// finding the pre-operation state is restored exactly before the error is
// returned. A caller never observes a partially applied change.

// CreateChild creates a new node of the given kind under parentID,
// appended after the existing children. attrs carries the kind-specific
// attributes (title, pov, loc, time, mode, char); payload is the summary
// text for container kinds and the narrative text for paragraphs. Returns
// the freshly generated id.
func (d *Document) CreateChild(parentID string, kind Kind, attrs map[string]string, payload string) (string, error) {
	parent, err := d.Find(parentID)
	if err != nil {
		return "", err
	}

	childKind, container := parent.Kind.ChildKind()
	if !container || kind != childKind {
		return "", errInvalidHierarchy(parent.Kind, kind)
	}

	if _, ok := attrs["id"]; ok {
		return "", errImmutableField("id")
	}
	for name := range attrs {
		if !AllowedAttr(kind, name) {
			return "", errInvalidAttribute(name, attrs[name])
		}
	}

	node := &Node{Kind: kind}
	for name, value := range attrs {
		node.setAttr(name, value)
	}
	// Summaries and text are stored edge-trimmed; loading trims the same
	// way, so a saved document parses back to an equal model.
	if kind.IsContainer() {
		node.Summary = strings.TrimSpace(payload)
	} else {
		node.Text = strings.TrimSpace(payload)
	}

	if err := checkRequired(node); err != nil {
		return "", err
	}

	id, err := d.reg.Generate()
	if err != nil {
		return "", err
	}
	node.ID = id

	d.attach(parent, node, -1)
	if findings := d.validateGuard(node); len(findings) > 0 {
		d.detach(node)
		return "", errValidationFailed(findings)
	}
	return id, nil
}

// checkRequired rejects a node whose required attributes or payload are
// missing, with the specific attribute named. This runs before the node
// joins the tree so callers get MISSING_ATTRIBUTE / INVALID_ATTRIBUTE
// rather than an aggregate validation failure.
func checkRequired(n *Node) error {
	switch n.Kind {
	case KindChapter:
		if strings.TrimSpace(n.Title) == "" {
			return errMissingAttribute("title")
		}
	case KindSequence:
		if strings.TrimSpace(n.Loc) == "" {
			return errMissingAttribute("loc")
		}
	case KindParagraph:
		if n.Mode != "" && !n.Mode.Valid() {
			return errInvalidAttribute("mode", string(n.Mode))
		}
		if n.EffectiveMode() == ModeDialogue && n.Char == "" {
			return errMissingAttribute("char")
		}
		if strings.TrimSpace(n.Text) == "" {
			return errMissingAttribute("text")
		}
		return nil
	}
	if strings.TrimSpace(n.Summary) == "" {
		return errMissingAttribute("summary")
	}
	return nil
}

// EditAttributes merges changes into the node's attributes. A key mapped
// to an empty value removes that attribute; any other value sets it. The
// id attribute is never a legal target. An empty change set is a no-op.
func (d *Document) EditAttributes(id string, changes map[string]string) error {
	node, err := d.Find(id)
	if err != nil {
		return err
	}
	if len(changes) == 0 {
		return nil
	}
	if _, ok := changes["id"]; ok {
		return errImmutableField("id")
	}
	for name, value := range changes {
		if !AllowedAttr(node.Kind, name) {
			return errInvalidAttribute(name, value)
		}
		if name == "mode" && value != "" && !Mode(value).Valid() {
			return errInvalidAttribute("mode", value)
		}
	}

	snapshot := *node
	for name, value := range changes {
		node.setAttr(name, value)
	}
	if findings := d.validateGuard(node); len(findings) > 0 {
		*node = snapshot
		return errValidationFailed(findings)
	}
	return nil
}

// EditSummary replaces the summary of a container node. Paragraphs have
// no summary; targeting one is an invalid operation.
func (d *Document) EditSummary(id, text string) error {
	node, err := d.Find(id)
	if err != nil {
		return err
	}
	if node.Kind == KindParagraph {
		return errInvalidOperation("edit_summary", "paragraphs carry text, not a summary")
	}

	snapshot := *node
	node.Summary = strings.TrimSpace(text)
	if findings := d.validateGuard(node); len(findings) > 0 {
		*node = snapshot
		return errValidationFailed(findings)
	}
	return nil
}

// EditText replaces the narrative text of a paragraph. Targeting any
// other kind is an invalid operation.
func (d *Document) EditText(id, text string) error {
	node, err := d.Find(id)
	if err != nil {
		return err
	}
	if node.Kind != KindParagraph {
		return errInvalidOperation("edit_text", fmt.Sprintf("node %s is a %s, not a paragraph", id, node.Kind))
	}

	snapshot := *node
	node.Text = strings.TrimSpace(text)
	if findings := d.validateGuard(node); len(findings) > 0 {
		*node = snapshot
		return errValidationFailed(findings)
	}
	return nil
}

// Move relocates the node (and its whole subtree) under newParentID,
// spliced in at position (append when position is negative). The book
// root cannot move; the destination may not be the node itself or any of
// its descendants; the destination kind must be able to host the node's
// kind.
func (d *Document) Move(id, newParentID string, position int) error {
	node, err := d.Find(id)
	if err != nil {
		return err
	}
	if node == d.root {
		return errInvalidOperation("move", "cannot move the book root")
	}
	newParent, err := d.Find(newParentID)
	if err != nil {
		return err
	}
	if newParent == node || isDescendant(node, newParent) {
		return &Error{Code: CodeInvalidHierarchy, Message: "destination is the node itself or one of its descendants"}
	}
	childKind, container := newParent.Kind.ChildKind()
	if !container || node.Kind != childKind {
		return errInvalidHierarchy(newParent.Kind, node.Kind)
	}

	oldParent := node.parent
	oldPos := d.detach(node)
	d.attach(newParent, node, position)

	findings := d.validateGuard(node)
	for a := oldParent; a != nil; a = a.parent {
		findings = append(findings, validateShape(a)...)
		findings = append(findings, validateNode(a)...)
	}
	if len(findings) > 0 {
		d.detach(node)
		d.attach(oldParent, node, oldPos)
		return errValidationFailed(findings)
	}
	return nil
}

// isDescendant reports whether target lives in ancestor's subtree.
func isDescendant(ancestor, target *Node) bool {
	for _, c := range ancestor.Children {
		if c == target || isDescendant(c, target) {
			return true
		}
	}
	return false
}

// ReorderChildren replaces the child order of parentID with orderedIDs,
// which must be an exact permutation of the current child id set, with no
// omissions, no duplicates, no foreign ids.
func (d *Document) ReorderChildren(parentID string, orderedIDs []string) error {
	parent, err := d.Find(parentID)
	if err != nil {
		return err
	}

	byID := make(map[string]*Node, len(parent.Children))
	for _, c := range parent.Children {
		byID[c.ID] = c
	}
	if len(orderedIDs) != len(parent.Children) {
		return errInvalidOperation("reorder_children",
			fmt.Sprintf("expected %d child ids, got %d", len(parent.Children), len(orderedIDs)))
	}
	seen := make(map[string]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if _, ok := byID[id]; !ok {
			return errInvalidOperation("reorder_children", fmt.Sprintf("id %s is not a child of %s", id, parentID))
		}
		if seen[id] {
			return errInvalidOperation("reorder_children", fmt.Sprintf("duplicate id in order: %s", id))
		}
		seen[id] = true
	}

	reordered := make([]*Node, len(orderedIDs))
	for i, id := range orderedIDs {
		reordered[i] = byID[id]
	}
	parent.Children = reordered
	return nil
}

// Remove detaches the node and its entire subtree from the document,
// releasing every removed id from the registry. Returns the number of
// nodes removed, the target included. The book root cannot be removed.
func (d *Document) Remove(id string) (int, error) {
	node, err := d.Find(id)
	if err != nil {
		return 0, err
	}
	if node == d.root {
		return 0, errInvalidOperation("remove", "cannot remove the book root")
	}
	count := 0
	Walk(node, func(*Node) { count++ })
	d.detach(node)
	return count, nil
}

// RemoveChildren clears every child of parentID in one step, releasing
// all descendant ids. Returns the number of direct children removed.
func (d *Document) RemoveChildren(parentID string) (int, error) {
	parent, err := d.Find(parentID)
	if err != nil {
		return 0, err
	}
	count := len(parent.Children)
	for _, c := range parent.Children {
		c.parent = nil
		d.unindexSubtree(c)
	}
	parent.Children = nil
	return count, nil
}
