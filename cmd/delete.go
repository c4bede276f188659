package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete subcommand.
func NewDeleteCmd(open OpenDoc) *cobra.Command {
	var (
		childrenOnly bool
		document     *string
	)

	cmd := &cobra.Command{
		Use:          "delete <node-id>",
		Short:        "Delete a node and its subtree",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			io, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}

			var removed int
			if childrenOnly {
				removed, err = doc.RemoveChildren(args[0])
			} else {
				removed, err = doc.Remove(args[0])
			}
			if err != nil {
				return err
			}

			if err := io.Save(doc); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d node(s)\n", removed)
			return nil
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().BoolVar(&childrenOnly, "children", false, "remove only the node's children, keeping the node")

	return cmd
}
