package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewReorderCmd creates the reorder subcommand.
func NewReorderCmd(open OpenDoc) *cobra.Command {
	var document *string

	cmd := &cobra.Command{
		Use:          "reorder <parent-id> <child-id>...",
		Short:        "Reorder a container's children",
		Long:         "Reorder a container's children. The child ids must be an exact permutation of the current children.",
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			io, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}
			if err := doc.ReorderChildren(args[0], args[1:]); err != nil {
				return err
			}
			if err := io.Save(doc); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Reordered children of %s\n", args[0])
			return nil
		},
	}

	document = addDocumentFlag(cmd)

	return cmd
}
