package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewDoctorCmd creates the doctor subcommand.
func NewDoctorCmd(open OpenDoc) *cobra.Command {
	var document *string

	cmd := &cobra.Command{
		Use:          "doctor",
		Short:        "Check the document against the schema and report every violation",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			io, doc, err := loadDocument(open, *document)
			if err != nil {
				return err
			}

			findings := doc.Validate()
			if len(findings) == 0 {
				color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "%s is valid\n", io.Path())
				return nil
			}

			printFindings(cmd, findings)
			return fmt.Errorf("%d violation(s) found", len(findings))
		},
	}

	document = addDocumentFlag(cmd)

	return cmd
}
