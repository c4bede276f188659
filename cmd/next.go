package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewNextCmd creates the next subcommand.
func NewNextCmd(open OpenDoc) *cobra.Command {
	var document *string

	cmd := &cobra.Command{
		Use:          "next [scope-id]",
		Short:        "Find the next empty container to plan",
		Long:         "Find the first container with no children, breadth-first from the book root or the given scope.",
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}
			scope := ""
			if len(args) == 1 {
				scope = args[0]
			}

			n, err := doc.NextEmptyContainer(scope)
			if err != nil {
				return err
			}
			if n == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Fully expanded: every container has children")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s\n", n.ID, n.Kind)
			return nil
		},
	}

	document = addDocumentFlag(cmd)

	return cmd
}
