package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// NewInitCmd creates the init subcommand.
func NewInitCmd(open OpenDoc) *cobra.Command {
	var (
		document string
		force    bool
	)

	cmd := &cobra.Command{
		Use:          "init <summary>",
		Short:        "Create a new document with a book root",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveDocument(document)
			if err != nil {
				return err
			}
			io := open(path)

			exists, err := io.Exists()
			if err != nil {
				return fmt.Errorf("checking %s: %w", path, err)
			}
			if exists && !force {
				return fmt.Errorf("%s already exists; use --force to overwrite", path)
			}

			doc, err := hnpx.NewDocument(args[0])
			if err != nil {
				return err
			}
			if err := io.Save(doc); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s (book %s)\n", path, doc.Root().ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&document, "document", "d", "", "document file to create")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing document")

	return cmd
}
