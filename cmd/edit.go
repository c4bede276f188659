package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// NewEditCmd creates the edit subcommand.
func NewEditCmd(open OpenDoc) *cobra.Command {
	var (
		attrs    []string
		summary  string
		text     string
		document *string
	)

	cmd := &cobra.Command{
		Use:          "edit <node-id>",
		Short:        "Edit a node's attributes, summary, or text",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(attrs) == 0 && !cmd.Flags().Changed("summary") && !cmd.Flags().Changed("text") {
				return fmt.Errorf("nothing to edit; pass --attr, --summary, or --text")
			}

			io, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}
			id := args[0]

			if len(attrs) > 0 {
				changes := map[string]string{}
				for _, pair := range attrs {
					name, value, ok := strings.Cut(pair, "=")
					if !ok {
						return fmt.Errorf("attribute %q must have the form name=value", pair)
					}
					changes[name] = value
				}
				if err := doc.EditAttributes(id, changes); err != nil {
					if findings := hnpx.FindingsOf(err); len(findings) > 0 {
						printFindings(cmd, findings)
					}
					return err
				}
			}
			if cmd.Flags().Changed("summary") {
				if err := doc.EditSummary(id, summary); err != nil {
					if findings := hnpx.FindingsOf(err); len(findings) > 0 {
						printFindings(cmd, findings)
					}
					return err
				}
			}
			if cmd.Flags().Changed("text") {
				if err := doc.EditText(id, text); err != nil {
					if findings := hnpx.FindingsOf(err); len(findings) > 0 {
						printFindings(cmd, findings)
					}
					return err
				}
			}

			if err := io.Save(doc); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Edited %s\n", id)
			return nil
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().StringArrayVar(&attrs, "attr", nil, "attribute change as name=value; an empty value removes an optional attribute (repeatable)")
	cmd.Flags().StringVar(&summary, "summary", "", "new summary for a container node")
	cmd.Flags().StringVar(&text, "text", "", "new text for a paragraph node")

	return cmd
}
