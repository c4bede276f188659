package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/config"
)

// NewRenderCmd creates the render subcommand.
func NewRenderCmd(open OpenDoc) *cobra.Command {
	var (
		format   string
		document *string
	)

	cmd := &cobra.Command{
		Use:          "render [scope-id]",
		Short:        "Render the document as an outline, prose, or markdown",
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

			if format == "" {
				cfg, err := config.Load(config.Filename)
				if err != nil {
					return err
				}
				format = cfg.RenderFormat
			}

			var text string
			switch format {
			case "outline":
				id := scope
				if id == "" {
					id = doc.Root().ID
				}
				text, err = doc.RenderOutline(id)
			case "prose":
				text, err = doc.RenderProse(scope)
			case "markdown":
				if scope != "" {
					return fmt.Errorf("markdown renders the whole document; omit the scope id")
				}
				text = doc.RenderMarkdown()
			default:
				return fmt.Errorf("format must be outline, prose, or markdown, got %q", format)
			}
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().StringVar(&format, "format", "", "render format: outline, prose, or markdown (default from config)")

	return cmd
}
