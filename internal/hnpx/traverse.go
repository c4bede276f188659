package hnpx

// Read-side traversal: breadth-first empty-container search, ancestor
// path resolution, and depth-limited subtree projection. Nothing here
// mutates the model.

// NextEmptyContainer finds the first container in breadth-first order
// under scopeID (the document root when scopeID is empty) whose kind
// permits children and which currently has none. BFS is deliberate: all
// chapters get planned before any chapter's sequences are begun, matching
// the top-down workflow the format exists for. Returns nil when the scope
// is fully expanded.
func (d *Document) NextEmptyContainer(scopeID string) (*Node, error) {
	scope := d.root
	if scopeID != "" {
		n, err := d.Find(scopeID)
		if err != nil {
			return nil, err
		}
		scope = n
	}

	queue := []*Node{scope}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.Kind.IsContainer() && len(n.Children) == 0 {
			return n, nil
		}
		queue = append(queue, n.Children...)
	}
	return nil, nil
}

// PathToRoot returns the ancestor chain ordered from the book root down
// to the node with the given id, inclusive.
func (d *Document) PathToRoot(id string) ([]*Node, error) {
	node, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	var path []*Node
	for n := node; n != nil; n = n.parent {
		path = append([]*Node{n}, path...)
	}
	return path, nil
}

// kindDepth orders the hierarchy levels for subtree pruning.
var kindDepth = map[Kind]int{
	KindBook:      0,
	KindChapter:   1,
	KindSequence:  2,
	KindBeat:      3,
	KindParagraph: 4,
}

// Subtree returns a detached copy of the node and its descendants pruned
// at the given kind boundary: nodes of pruneKind are kept with their
// summaries but stripped of children. Passing KindParagraph keeps the
// full subtree. Pruning is purely a projection; the live tree is never
// touched.
func (d *Document) Subtree(id string, pruneKind Kind) (*Node, error) {
	node, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	if !pruneKind.Valid() {
		return nil, errInvalidAttribute("depth", string(pruneKind))
	}
	sub := node.clone()
	prune(sub, kindDepth[pruneKind])
	return sub, nil
}

func prune(n *Node, maxDepth int) {
	if kindDepth[n.Kind] >= maxDepth {
		n.Children = nil
		return
	}
	for _, c := range n.Children {
		prune(c, maxDepth)
	}
}

// Context is the immediate neighborhood of a node: the node itself, its
// parent, and sibling/child summaries. It backs the inspection surface.
type Context struct {
	Node     *Node
	Parent   *Node
	Children []*Node
	Siblings []*Node
}

// ContextOf assembles the Context projection for the node with the given
// id. The returned pointers reference the live tree and must not be
// mutated by callers.
func (d *Document) ContextOf(id string) (*Context, error) {
	node, err := d.Find(id)
	if err != nil {
		return nil, err
	}
	ctx := &Context{Node: node, Parent: node.parent, Children: node.Children}
	if node.parent != nil {
		for _, sib := range node.parent.Children {
			if sib != node {
				ctx.Siblings = append(ctx.Siblings, sib)
			}
		}
	}
	return ctx, nil
}
