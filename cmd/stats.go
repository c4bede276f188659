package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/hnpx"
)

// NewStatsCmd creates the stats subcommand.
func NewStatsCmd(open OpenDoc) *cobra.Command {
	var (
		jsonMode bool
		document *string
	)

	cmd := &cobra.Command{
		Use:          "stats",
		Short:        "Show element counts, word totals, and POV characters",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}
			s := doc.ComputeStats()
			out := cmd.OutOrStdout()

			if jsonMode {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(s); err != nil {
					return fmt.Errorf("encoding output: %w", err)
				}
				return nil
			}

			fmt.Fprintf(out, "Elements: %d\n", s.TotalElements)
			for _, kind := range []hnpx.Kind{
				hnpx.KindBook, hnpx.KindChapter, hnpx.KindSequence, hnpx.KindBeat, hnpx.KindParagraph,
			} {
				if count := s.ElementCounts[kind]; count > 0 {
					fmt.Fprintf(out, "  %s: %d\n", kind, count)
				}
			}
			fmt.Fprintf(out, "Words: %d\n", s.TotalWords)
			fmt.Fprintf(out, "Depth: %d\n", s.MaxDepth)
			fmt.Fprintf(out, "Modes: narration=%d dialogue=%d internal=%d\n",
				s.NarrativeMode[hnpx.ModeNarration],
				s.NarrativeMode[hnpx.ModeDialogue],
				s.NarrativeMode[hnpx.ModeInternal])
			if len(s.POVCharacters) > 0 {
				fmt.Fprintf(out, "POV characters: %s\n", strings.Join(s.POVCharacters, ", "))
			}
			return nil
		},
	}

	document = addDocumentFlag(cmd)
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output statistics as JSON")

	return cmd
}
