package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/eykd/hnpx-go/internal/hnpx"
	"github.com/eykd/hnpx-go/internal/store"
)

// Handlers binds every tool to one document store. Each mutating tool is
// load-mutate-save: the engine guarantees the in-memory transaction, the
// store guarantees the atomic replace on disk.
type Handlers struct {
	st  *store.Store
	log zerolog.Logger
}

// NewHandlers returns tool handlers bound to st.
func NewHandlers(st *store.Store, log zerolog.Logger) *Handlers {
	return &Handlers{st: st, log: log}
}

func nodeInfo(n *hnpx.Node) NodeInfo {
	info := NodeInfo{
		ID:      n.ID,
		Kind:    string(n.Kind),
		Summary: n.Summary,
		Text:    n.Text,
	}
	for _, a := range n.Attributes() {
		if a.Name == "id" {
			continue
		}
		if info.Attributes == nil {
			info.Attributes = map[string]string{}
		}
		info.Attributes[a.Name] = a.Value
	}
	for _, c := range n.Children {
		info.ChildIDs = append(info.ChildIDs, c.ID)
	}
	return info
}

func nodeInfos(nodes []*hnpx.Node) []NodeInfo {
	infos := make([]NodeInfo, 0, len(nodes))
	for _, n := range nodes {
		infos = append(infos, nodeInfo(n))
	}
	return infos
}

func findingInfos(findings []hnpx.Finding) []FindingInfo {
	infos := make([]FindingInfo, 0, len(findings))
	for _, f := range findings {
		infos = append(infos, FindingInfo{NodeID: f.NodeID, Rule: string(f.Rule), Message: f.Message})
	}
	return infos
}

// load reads the document, logging the tool name for traceability.
func (h *Handlers) load(tool string) (*hnpx.Document, error) {
	doc, err := h.st.Load()
	if err != nil {
		h.log.Error().Str("tool", tool).Err(err).Msg("load failed")
		return nil, err
	}
	return doc, nil
}

// commit saves the document after a successful mutation.
func (h *Handlers) commit(tool string, doc *hnpx.Document) error {
	if err := h.st.Save(doc); err != nil {
		h.log.Error().Str("tool", tool).Err(err).Msg("save failed")
		return fmt.Errorf("persisting document: %w", err)
	}
	h.log.Debug().Str("tool", tool).Msg("committed")
	return nil
}

// --- document lifecycle ---

func (h *Handlers) DocumentCreate() mcp.ToolHandlerFor[DocumentCreateInput, DocumentCreateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in DocumentCreateInput) (*mcp.CallToolResult, DocumentCreateResult, error) {
		doc, err := hnpx.NewDocument(in.Summary)
		if err != nil {
			return nil, DocumentCreateResult{}, err
		}
		if err := h.commit("document_create", doc); err != nil {
			return nil, DocumentCreateResult{}, err
		}
		h.log.Info().Str("root_id", doc.Root().ID).Msg("document created")
		return nil, DocumentCreateResult{RootID: doc.Root().ID}, nil
	}
}

func (h *Handlers) GetRootID() mcp.ToolHandlerFor[EmptyInput, RootIDResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, RootIDResult, error) {
		doc, err := h.load("get_root_id")
		if err != nil {
			return nil, RootIDResult{}, err
		}
		return nil, RootIDResult{RootID: doc.Root().ID}, nil
	}
}

// --- navigation ---

func (h *Handlers) GetNode() mcp.ToolHandlerFor[NodeIDInput, NodeInfo] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NodeIDInput) (*mcp.CallToolResult, NodeInfo, error) {
		doc, err := h.load("get_node")
		if err != nil {
			return nil, NodeInfo{}, err
		}
		n, err := doc.Find(in.NodeID)
		if err != nil {
			return nil, NodeInfo{}, err
		}
		return nil, nodeInfo(n), nil
	}
}

func (h *Handlers) GetChildren() mcp.ToolHandlerFor[NodeIDInput, ChildrenResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NodeIDInput) (*mcp.CallToolResult, ChildrenResult, error) {
		doc, err := h.load("get_children")
		if err != nil {
			return nil, ChildrenResult{}, err
		}
		children, err := doc.ChildrenOf(in.NodeID)
		if err != nil {
			return nil, ChildrenResult{}, err
		}
		return nil, ChildrenResult{Children: nodeInfos(children)}, nil
	}
}

func (h *Handlers) GetSubtree() mcp.ToolHandlerFor[SubtreeInput, SubtreeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SubtreeInput) (*mcp.CallToolResult, SubtreeResult, error) {
		doc, err := h.load("get_subtree")
		if err != nil {
			return nil, SubtreeResult{}, err
		}
		depth := hnpx.KindParagraph
		if in.Depth != "" {
			depth = hnpx.Kind(in.Depth)
		}
		sub, err := doc.Subtree(in.NodeID, depth)
		if err != nil {
			return nil, SubtreeResult{}, err
		}
		var nodes []NodeInfo
		hnpx.Walk(sub, func(n *hnpx.Node) {
			nodes = append(nodes, nodeInfo(n))
		})
		return nil, SubtreeResult{Nodes: nodes}, nil
	}
}

func (h *Handlers) GetPath() mcp.ToolHandlerFor[NodeIDInput, PathResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NodeIDInput) (*mcp.CallToolResult, PathResult, error) {
		doc, err := h.load("get_path")
		if err != nil {
			return nil, PathResult{}, err
		}
		path, err := doc.PathToRoot(in.NodeID)
		if err != nil {
			return nil, PathResult{}, err
		}
		return nil, PathResult{Path: nodeInfos(path)}, nil
	}
}

func (h *Handlers) GetNodeContext() mcp.ToolHandlerFor[NodeIDInput, NodeContextResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NodeIDInput) (*mcp.CallToolResult, NodeContextResult, error) {
		doc, err := h.load("get_node_context")
		if err != nil {
			return nil, NodeContextResult{}, err
		}
		nctx, err := doc.ContextOf(in.NodeID)
		if err != nil {
			return nil, NodeContextResult{}, err
		}
		result := NodeContextResult{
			Node:     nodeInfo(nctx.Node),
			Children: nodeInfos(nctx.Children),
			Siblings: nodeInfos(nctx.Siblings),
		}
		if nctx.Parent != nil {
			parent := nodeInfo(nctx.Parent)
			result.Parent = &parent
		}
		return nil, result, nil
	}
}

func (h *Handlers) GetNextEmpty() mcp.ToolHandlerFor[NextEmptyInput, NextEmptyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NextEmptyInput) (*mcp.CallToolResult, NextEmptyResult, error) {
		doc, err := h.load("get_next_empty")
		if err != nil {
			return nil, NextEmptyResult{}, err
		}
		n, err := doc.NextEmptyContainer(in.ScopeID)
		if err != nil {
			return nil, NextEmptyResult{}, err
		}
		if n == nil {
			return nil, NextEmptyResult{Found: false}, nil
		}
		info := nodeInfo(n)
		return nil, NextEmptyResult{Found: true, Node: &info}, nil
	}
}

// --- creation ---

// CreateChild returns a handler adding one node of the given kind.
func (h *Handlers) CreateChild(kind hnpx.Kind) mcp.ToolHandlerFor[CreateChildInput, CreateChildResult] {
	tool := "create_" + string(kind)
	return func(ctx context.Context, _ *mcp.CallToolRequest, in CreateChildInput) (*mcp.CallToolResult, CreateChildResult, error) {
		doc, err := h.load(tool)
		if err != nil {
			return nil, CreateChildResult{}, err
		}
		id, err := doc.CreateChild(in.ParentID, kind, in.Attributes, in.Content)
		if err != nil {
			return nil, CreateChildResult{}, err
		}
		if err := h.commit(tool, doc); err != nil {
			return nil, CreateChildResult{}, err
		}
		h.log.Info().Str("tool", tool).Str("node_id", id).Str("parent_id", in.ParentID).Msg("node created")
		return nil, CreateChildResult{NodeID: id}, nil
	}
}

// --- mutation ---

func (h *Handlers) EditAttributes() mcp.ToolHandlerFor[EditAttributesInput, OKResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in EditAttributesInput) (*mcp.CallToolResult, OKResult, error) {
		doc, err := h.load("edit_attributes")
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := doc.EditAttributes(in.NodeID, in.Attributes); err != nil {
			return nil, OKResult{}, err
		}
		if err := h.commit("edit_attributes", doc); err != nil {
			return nil, OKResult{}, err
		}
		return nil, OKResult{OK: true}, nil
	}
}

func (h *Handlers) EditSummary() mcp.ToolHandlerFor[EditContentInput, OKResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in EditContentInput) (*mcp.CallToolResult, OKResult, error) {
		doc, err := h.load("edit_summary")
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := doc.EditSummary(in.NodeID, in.Content); err != nil {
			return nil, OKResult{}, err
		}
		if err := h.commit("edit_summary", doc); err != nil {
			return nil, OKResult{}, err
		}
		return nil, OKResult{OK: true}, nil
	}
}

func (h *Handlers) EditText() mcp.ToolHandlerFor[EditContentInput, OKResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in EditContentInput) (*mcp.CallToolResult, OKResult, error) {
		doc, err := h.load("edit_text")
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := doc.EditText(in.NodeID, in.Content); err != nil {
			return nil, OKResult{}, err
		}
		if err := h.commit("edit_text", doc); err != nil {
			return nil, OKResult{}, err
		}
		return nil, OKResult{OK: true}, nil
	}
}

func (h *Handlers) MoveNode() mcp.ToolHandlerFor[MoveNodeInput, OKResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in MoveNodeInput) (*mcp.CallToolResult, OKResult, error) {
		doc, err := h.load("move_node")
		if err != nil {
			return nil, OKResult{}, err
		}
		pos := -1
		if in.Position != nil {
			pos = *in.Position
		}
		if err := doc.Move(in.NodeID, in.NewParentID, pos); err != nil {
			return nil, OKResult{}, err
		}
		if err := h.commit("move_node", doc); err != nil {
			return nil, OKResult{}, err
		}
		return nil, OKResult{OK: true}, nil
	}
}

func (h *Handlers) ReorderChildren() mcp.ToolHandlerFor[ReorderChildrenInput, OKResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in ReorderChildrenInput) (*mcp.CallToolResult, OKResult, error) {
		doc, err := h.load("reorder_children")
		if err != nil {
			return nil, OKResult{}, err
		}
		if err := doc.ReorderChildren(in.ParentID, in.Order); err != nil {
			return nil, OKResult{}, err
		}
		if err := h.commit("reorder_children", doc); err != nil {
			return nil, OKResult{}, err
		}
		return nil, OKResult{OK: true}, nil
	}
}

func (h *Handlers) RemoveNode() mcp.ToolHandlerFor[NodeIDInput, RemoveNodeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NodeIDInput) (*mcp.CallToolResult, RemoveNodeResult, error) {
		doc, err := h.load("remove_node")
		if err != nil {
			return nil, RemoveNodeResult{}, err
		}
		removed, err := doc.Remove(in.NodeID)
		if err != nil {
			return nil, RemoveNodeResult{}, err
		}
		if err := h.commit("remove_node", doc); err != nil {
			return nil, RemoveNodeResult{}, err
		}
		h.log.Info().Str("node_id", in.NodeID).Int("removed", removed).Msg("node removed")
		return nil, RemoveNodeResult{Removed: removed}, nil
	}
}

func (h *Handlers) RemoveChildren() mcp.ToolHandlerFor[NodeIDInput, RemoveNodeResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in NodeIDInput) (*mcp.CallToolResult, RemoveNodeResult, error) {
		doc, err := h.load("remove_children")
		if err != nil {
			return nil, RemoveNodeResult{}, err
		}
		removed, err := doc.RemoveChildren(in.NodeID)
		if err != nil {
			return nil, RemoveNodeResult{}, err
		}
		if err := h.commit("remove_children", doc); err != nil {
			return nil, RemoveNodeResult{}, err
		}
		return nil, RemoveNodeResult{Removed: removed}, nil
	}
}

// --- validation ---

func (h *Handlers) ValidateDocument() mcp.ToolHandlerFor[EmptyInput, ValidateResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, ValidateResult, error) {
		doc, err := h.load("validate_document")
		if err != nil {
			return nil, ValidateResult{}, err
		}
		findings := doc.Validate()
		return nil, ValidateResult{Valid: len(findings) == 0, Findings: findingInfos(findings)}, nil
	}
}

// --- rendering ---

func (h *Handlers) RenderOutline() mcp.ToolHandlerFor[RenderInput, RenderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RenderInput) (*mcp.CallToolResult, RenderResult, error) {
		doc, err := h.load("render_outline")
		if err != nil {
			return nil, RenderResult{}, err
		}
		scope := in.ScopeID
		if scope == "" {
			scope = doc.Root().ID
		}
		text, err := doc.RenderOutline(scope)
		if err != nil {
			return nil, RenderResult{}, err
		}
		return nil, RenderResult{Text: text}, nil
	}
}

func (h *Handlers) RenderProse() mcp.ToolHandlerFor[RenderInput, RenderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in RenderInput) (*mcp.CallToolResult, RenderResult, error) {
		doc, err := h.load("render_prose")
		if err != nil {
			return nil, RenderResult{}, err
		}
		text, err := doc.RenderProse(in.ScopeID)
		if err != nil {
			return nil, RenderResult{}, err
		}
		return nil, RenderResult{Text: text}, nil
	}
}

func (h *Handlers) RenderMarkdown() mcp.ToolHandlerFor[EmptyInput, RenderResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, RenderResult, error) {
		doc, err := h.load("render_markdown")
		if err != nil {
			return nil, RenderResult{}, err
		}
		return nil, RenderResult{Text: doc.RenderMarkdown()}, nil
	}
}

// --- inspection ---

func (h *Handlers) DocumentStats() mcp.ToolHandlerFor[EmptyInput, StatsResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ EmptyInput) (*mcp.CallToolResult, StatsResult, error) {
		doc, err := h.load("document_stats")
		if err != nil {
			return nil, StatsResult{}, err
		}
		s := doc.ComputeStats()
		result := StatsResult{
			TotalElements: s.TotalElements,
			ElementCounts: map[string]int{},
			TotalWords:    s.TotalWords,
			MaxDepth:      s.MaxDepth,
			POVCharacters: s.POVCharacters,
			NarrativeMode: map[string]int{},
		}
		for kind, count := range s.ElementCounts {
			result.ElementCounts[string(kind)] = count
		}
		for mode, count := range s.NarrativeMode {
			result.NarrativeMode[string(mode)] = count
		}
		return nil, result, nil
	}
}

func (h *Handlers) SearchNodes() mcp.ToolHandlerFor[SearchInput, SearchResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, in SearchInput) (*mcp.CallToolResult, SearchResult, error) {
		doc, err := h.load("search_nodes")
		if err != nil {
			return nil, SearchResult{}, err
		}
		hits := doc.Search(hnpx.Query{
			Kind:            hnpx.Kind(in.Kind),
			Attributes:      in.Attributes,
			TextContains:    in.TextContains,
			SummaryContains: in.SummaryContains,
		})
		return nil, SearchResult{Nodes: nodeInfos(hits)}, nil
	}
}
