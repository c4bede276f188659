package server

// Tool input and output payloads. Every field carries a json tag for the
// wire shape and a jsonschema description surfaced to MCP clients.

// NodeInfo is the wire projection of a single document node.
type NodeInfo struct {
	ID         string            `json:"id" jsonschema:"6-character node identifier"`
	Kind       string            `json:"kind" jsonschema:"node kind (book, chapter, sequence, beat, paragraph)"`
	Attributes map[string]string `json:"attributes,omitempty" jsonschema:"kind-specific attributes"`
	Summary    string            `json:"summary,omitempty" jsonschema:"container summary"`
	Text       string            `json:"text,omitempty" jsonschema:"paragraph text"`
	ChildIDs   []string          `json:"child_ids,omitempty" jsonschema:"ordered ids of structural children"`
}

// FindingInfo is the wire projection of one validation finding.
type FindingInfo struct {
	NodeID  string `json:"node_id" jsonschema:"id of the offending node"`
	Rule    string `json:"rule" jsonschema:"name of the violated schema rule"`
	Message string `json:"message" jsonschema:"human-readable description"`
}

// --- document lifecycle ---

type DocumentCreateInput struct {
	Summary string `json:"summary" jsonschema:"summary for the new book root"`
}

type DocumentCreateResult struct {
	RootID string `json:"root_id" jsonschema:"id of the new book root"`
}

type EmptyInput struct{}

type RootIDResult struct {
	RootID string `json:"root_id" jsonschema:"id of the book root"`
}

// --- navigation ---

type NodeIDInput struct {
	NodeID string `json:"node_id" jsonschema:"target node identifier"`
}

type ChildrenResult struct {
	Children []NodeInfo `json:"children" jsonschema:"ordered structural children"`
}

type SubtreeInput struct {
	NodeID string `json:"node_id" jsonschema:"subtree root identifier"`
	Depth  string `json:"depth,omitempty" jsonschema:"deepest kind to include (chapter, sequence, beat, paragraph); default paragraph"`
}

type SubtreeResult struct {
	Nodes []NodeInfo `json:"nodes" jsonschema:"subtree nodes in document order, pruned at the requested depth"`
}

type PathResult struct {
	Path []NodeInfo `json:"path" jsonschema:"nodes from the book root down to the target, inclusive"`
}

type NodeContextResult struct {
	Node     NodeInfo   `json:"node" jsonschema:"the target node"`
	Parent   *NodeInfo  `json:"parent,omitempty" jsonschema:"parent node, absent for the root"`
	Children []NodeInfo `json:"children" jsonschema:"ordered structural children"`
	Siblings []NodeInfo `json:"siblings" jsonschema:"other children of the same parent"`
}

type NextEmptyInput struct {
	ScopeID string `json:"scope_id,omitempty" jsonschema:"subtree to search; defaults to the whole document"`
}

type NextEmptyResult struct {
	Found bool      `json:"found" jsonschema:"false when every container in scope has children"`
	Node  *NodeInfo `json:"node,omitempty" jsonschema:"first empty container in breadth-first order"`
}

// --- creation ---

type CreateChildInput struct {
	ParentID   string            `json:"parent_id" jsonschema:"id of the parent container"`
	Attributes map[string]string `json:"attributes,omitempty" jsonschema:"kind-specific attributes for the new node"`
	Content    string            `json:"content" jsonschema:"summary for containers, text for paragraphs"`
}

type CreateChildResult struct {
	NodeID string `json:"node_id" jsonschema:"generated id of the new node"`
}

// --- mutation ---

type EditAttributesInput struct {
	NodeID     string            `json:"node_id" jsonschema:"target node identifier"`
	Attributes map[string]string `json:"attributes" jsonschema:"attribute changes; an empty value removes an optional attribute"`
}

type EditContentInput struct {
	NodeID  string `json:"node_id" jsonschema:"target node identifier"`
	Content string `json:"content" jsonschema:"new summary or paragraph text"`
}

type OKResult struct {
	OK bool `json:"ok" jsonschema:"true when the mutation committed"`
}

type MoveNodeInput struct {
	NodeID      string `json:"node_id" jsonschema:"node to move"`
	NewParentID string `json:"new_parent_id" jsonschema:"destination container"`
	Position    *int   `json:"position,omitempty" jsonschema:"index among the destination's children; omitted or -1 appends"`
}

type ReorderChildrenInput struct {
	ParentID string   `json:"parent_id" jsonschema:"container whose children to reorder"`
	Order    []string `json:"order" jsonschema:"exact permutation of the current child ids"`
}

type RemoveNodeResult struct {
	Removed int `json:"removed" jsonschema:"number of nodes removed, including descendants"`
}

// --- validation ---

type ValidateResult struct {
	Valid    bool          `json:"valid" jsonschema:"true when the document has no violations"`
	Findings []FindingInfo `json:"findings" jsonschema:"every violation, in check order"`
}

// --- rendering ---

type RenderInput struct {
	ScopeID string `json:"scope_id,omitempty" jsonschema:"subtree to render; defaults to the whole document"`
}

type RenderResult struct {
	Text string `json:"text" jsonschema:"rendered projection"`
}

// --- inspection ---

type StatsResult struct {
	TotalElements int            `json:"total_elements" jsonschema:"total node count"`
	ElementCounts map[string]int `json:"element_counts" jsonschema:"node count per kind"`
	TotalWords    int            `json:"total_words" jsonschema:"word count across paragraph text"`
	MaxDepth      int            `json:"max_depth" jsonschema:"deepest level below the book root"`
	POVCharacters []string       `json:"pov_characters" jsonschema:"sorted set of pov and dialogue characters"`
	NarrativeMode map[string]int `json:"narrative_modes" jsonschema:"paragraph count per effective mode"`
}

type SearchInput struct {
	Kind            string            `json:"kind,omitempty" jsonschema:"restrict to one node kind"`
	Attributes      map[string]string `json:"attributes,omitempty" jsonschema:"attribute equality filters"`
	TextContains    string            `json:"text_contains,omitempty" jsonschema:"case-insensitive paragraph text substring"`
	SummaryContains string            `json:"summary_contains,omitempty" jsonschema:"case-insensitive summary substring"`
}

type SearchResult struct {
	Nodes []NodeInfo `json:"nodes" jsonschema:"matching nodes in document order"`
}
