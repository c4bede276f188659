package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// NewShowCmd creates the show subcommand.
func NewShowCmd(open OpenDoc) *cobra.Command {
	var (
		showPath    bool
		showContext bool
		depth       string
		document    *string
	)

	cmd := &cobra.Command{
		Use:          "show [node-id]",
		Short:        "Show a node, its path, or its context",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}
			id := doc.Root().ID
			if len(args) == 1 {
				id = args[0]
			}
			out := cmd.OutOrStdout()

			switch {
			case showPath:
				path, err := doc.PathToRoot(id)
				if err != nil {
					return err
				}
				for i, n := range path {
					fmt.Fprintf(out, "%*s[%s] %s\n", i*2, "", n.ID, n.Kind)
				}
				return nil

			case showContext:
				nctx, err := doc.ContextOf(id)
				if err != nil {
					return err
				}
				printNode(out, nctx.Node)
				if nctx.Parent != nil {
					fmt.Fprintf(out, "Parent: [%s] %s\n", nctx.Parent.ID, nctx.Parent.Kind)
				}
				for _, c := range nctx.Children {
					fmt.Fprintf(out, "Child: [%s] %s\n", c.ID, c.Kind)
				}
				for _, s := range nctx.Siblings {
					fmt.Fprintf(out, "Sibling: [%s] %s\n", s.ID, s.Kind)
				}
				return nil

			case depth != "":
				sub, err := doc.Subtree(id, hnpx.Kind(depth))
				if err != nil {
					return err
				}
				hnpx.Walk(sub, func(n *hnpx.Node) {
					fmt.Fprintf(out, "[%s] %s\n", n.ID, n.Kind)
				})
				return nil

			default:
				n, err := doc.Find(id)
				if err != nil {
					return err
				}
				printNode(out, n)
				return nil
			}
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().BoolVar(&showPath, "path", false, "show the path from the book root to the node")
	cmd.Flags().BoolVar(&showContext, "context", false, "show the node with its parent, children, and siblings")
	cmd.Flags().StringVar(&depth, "depth", "", "show the subtree pruned at this kind (chapter, sequence, beat, paragraph)")

	return cmd
}

// printNode writes one node's id, kind, attributes, and content.
func printNode(out io.Writer, n *hnpx.Node) {
	fmt.Fprintf(out, "[%s] %s\n", n.ID, n.Kind)
	for _, a := range n.Attributes() {
		if a.Name == "id" {
			continue
		}
		fmt.Fprintf(out, "  %s: %s\n", a.Name, a.Value)
	}
	if n.Kind.IsContainer() {
		fmt.Fprintf(out, "  summary: %s\n", n.Summary)
	} else {
		fmt.Fprintf(out, "  text: %s\n", n.Text)
	}
	for _, c := range n.Children {
		fmt.Fprintf(out, "  child: [%s] %s\n", c.ID, c.Kind)
	}
}
