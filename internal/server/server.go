// Package server exposes the document engine over the Model Context
// Protocol. Every engine operation maps to one typed tool; the server
// owns no document state beyond the store it is bound to.
package server

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/eykd/hnpx-go/internal/hnpx"
	"github.com/eykd/hnpx-go/internal/store"
)

const (
	serverName    = "hnpx"
	serverVersion = "0.1.0"
)

// Server wires the tool handlers into an MCP server.
type Server struct {
	handlers *Handlers
	log      zerolog.Logger
}

// New returns a Server bound to st.
func New(st *store.Store, log zerolog.Logger) *Server {
	return &Server{
		handlers: NewHandlers(st, log),
		log:      log,
	}
}

// Register adds every tool to m.
func (s *Server) Register(m *mcp.Server) {
	h := s.handlers

	mcp.AddTool(m, &mcp.Tool{Name: "document_create",
		Description: "Create a fresh document with a book root carrying the given summary, replacing any existing document"}, h.DocumentCreate())
	mcp.AddTool(m, &mcp.Tool{Name: "get_root_id",
		Description: "Return the id of the book root"}, h.GetRootID())

	mcp.AddTool(m, &mcp.Tool{Name: "get_node",
		Description: "Return one node with its attributes, content, and child ids"}, h.GetNode())
	mcp.AddTool(m, &mcp.Tool{Name: "get_children",
		Description: "Return the ordered children of a node"}, h.GetChildren())
	mcp.AddTool(m, &mcp.Tool{Name: "get_subtree",
		Description: "Return a subtree in document order, optionally pruned at a kind boundary"}, h.GetSubtree())
	mcp.AddTool(m, &mcp.Tool{Name: "get_path",
		Description: "Return the path from the book root down to a node, inclusive"}, h.GetPath())
	mcp.AddTool(m, &mcp.Tool{Name: "get_node_context",
		Description: "Return a node together with its parent, children, and siblings"}, h.GetNodeContext())
	mcp.AddTool(m, &mcp.Tool{Name: "get_next_empty",
		Description: "Return the first container with no children in breadth-first order, the natural next planning target"}, h.GetNextEmpty())

	mcp.AddTool(m, &mcp.Tool{Name: "create_chapter",
		Description: "Add a chapter under the book; attributes: title (required), pov; content is the summary"}, h.CreateChild(hnpx.KindChapter))
	mcp.AddTool(m, &mcp.Tool{Name: "create_sequence",
		Description: "Add a sequence under a chapter; attributes: loc (required), time, pov; content is the summary"}, h.CreateChild(hnpx.KindSequence))
	mcp.AddTool(m, &mcp.Tool{Name: "create_beat",
		Description: "Add a beat under a sequence; content is the summary"}, h.CreateChild(hnpx.KindBeat))
	mcp.AddTool(m, &mcp.Tool{Name: "create_paragraph",
		Description: "Add a paragraph under a beat; attributes: mode (narration, dialogue, internal), char; content is the text"}, h.CreateChild(hnpx.KindParagraph))

	mcp.AddTool(m, &mcp.Tool{Name: "edit_attributes",
		Description: "Change a node's attributes transactionally; an empty value removes an optional attribute; ids are immutable"}, h.EditAttributes())
	mcp.AddTool(m, &mcp.Tool{Name: "edit_summary",
		Description: "Replace a container's summary"}, h.EditSummary())
	mcp.AddTool(m, &mcp.Tool{Name: "edit_text",
		Description: "Replace a paragraph's text"}, h.EditText())
	mcp.AddTool(m, &mcp.Tool{Name: "move_node",
		Description: "Reparent a node under a new container at a position, preserving its subtree and id"}, h.MoveNode())
	mcp.AddTool(m, &mcp.Tool{Name: "reorder_children",
		Description: "Reorder a container's children to the given exact permutation of their ids"}, h.ReorderChildren())
	mcp.AddTool(m, &mcp.Tool{Name: "remove_node",
		Description: "Remove a node and its whole subtree; the book root cannot be removed"}, h.RemoveNode())
	mcp.AddTool(m, &mcp.Tool{Name: "remove_children",
		Description: "Remove every child of a node, keeping the node itself"}, h.RemoveChildren())

	mcp.AddTool(m, &mcp.Tool{Name: "validate_document",
		Description: "Check the whole document against the schema and report every violation"}, h.ValidateDocument())

	mcp.AddTool(m, &mcp.Tool{Name: "render_outline",
		Description: "Render an indented outline of ids, kinds, labels, and summaries"}, h.RenderOutline())
	mcp.AddTool(m, &mcp.Tool{Name: "render_prose",
		Description: "Render continuous prose from paragraph text with POV-resolved dialogue and internal framing"}, h.RenderProse())
	mcp.AddTool(m, &mcp.Tool{Name: "render_markdown",
		Description: "Render the whole document as hierarchical markdown"}, h.RenderMarkdown())

	mcp.AddTool(m, &mcp.Tool{Name: "document_stats",
		Description: "Return element counts, word totals, narrative-mode tallies, POV characters, and depth"}, h.DocumentStats())
	mcp.AddTool(m, &mcp.Tool{Name: "search_nodes",
		Description: "Find nodes by kind, attribute equality, and text or summary substring"}, h.SearchNodes())
}

// Run serves the tools over the given transport until ctx is done. An
// empty transport name means stdio.
func (s *Server) Run(ctx context.Context, transport string) error {
	m := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	s.Register(m)

	switch transport {
	case "", "stdio":
		s.log.Info().Str("transport", "stdio").Msg("serving")
		return m.Run(ctx, &mcp.StdioTransport{})
	default:
		return fmt.Errorf("unsupported transport %q", transport)
	}
}
