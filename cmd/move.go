package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewMoveCmd creates the move subcommand.
func NewMoveCmd(open OpenDoc) *cobra.Command {
	var (
		position int
		document *string
	)

	cmd := &cobra.Command{
		Use:          "move <node-id> <new-parent-id>",
		Short:        "Move a node and its subtree under a new parent",
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			io, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}
			if err := doc.Move(args[0], args[1], position); err != nil {
				return err
			}
			if err := io.Save(doc); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %s under %s\n", args[0], args[1])
			return nil
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().IntVar(&position, "position", -1, "index among the new parent's children (-1 appends)")

	return cmd
}
