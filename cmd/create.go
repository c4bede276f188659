package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// NewCreateCmd creates the create subcommand.
func NewCreateCmd(open OpenDoc) *cobra.Command {
	var title, loc, seqTime, pov, mode, char string
	var document *string

	cmd := &cobra.Command{
		Use:          "create <kind> <parent-id> <content>",
		Short:        "Add a node under a parent container",
		Long:         "Add a chapter, sequence, beat, or paragraph under a parent container.\nContent is the summary for containers and the text for paragraphs.",
		Args:         cobra.ExactArgs(3),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := hnpx.Kind(args[0])
			if !kind.Valid() || kind == hnpx.KindBook {
				return fmt.Errorf("kind must be chapter, sequence, beat, or paragraph, got %q", args[0])
			}

			io, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}

			attrs := map[string]string{}
			for name, value := range map[string]string{
				"title": title, "loc": loc, "time": seqTime,
				"pov": pov, "mode": mode, "char": char,
			} {
				if value != "" {
					attrs[name] = value
				}
			}

			id, err := doc.CreateChild(args[1], kind, attrs, args[2])
			if err != nil {
				if findings := hnpx.FindingsOf(err); len(findings) > 0 {
					printFindings(cmd, findings)
				}
				return err
			}
			if err := io.Save(doc); err != nil {
				return fmt.Errorf("writing document: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s %s under %s\n", kind, id, args[1])
			return nil
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().StringVar(&title, "title", "", "chapter title")
	cmd.Flags().StringVar(&loc, "loc", "", "sequence location")
	cmd.Flags().StringVar(&seqTime, "time", "", "sequence time")
	cmd.Flags().StringVar(&pov, "pov", "", "point-of-view character")
	cmd.Flags().StringVar(&mode, "mode", "", "paragraph mode (narration, dialogue, internal)")
	cmd.Flags().StringVar(&char, "char", "", "speaking character for dialogue or internal paragraphs")

	return cmd
}
