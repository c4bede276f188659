// Package cmd implements the hnpx CLI commands.
package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/config"
	"github.com/eykd/hnpx-go/internal/hnpx"
	"github.com/eykd/hnpx-go/internal/store"
)

// DocIO loads and saves the working document for a command.
type DocIO interface {
	Load() (*hnpx.Document, error)
	Save(*hnpx.Document) error
	Exists() (bool, error)
	Path() string
}

// OpenDoc resolves a document path to its DocIO. Commands take an OpenDoc
// instead of a concrete store so tests can substitute their own.
type OpenDoc func(path string) DocIO

func newDefaultOpenDoc() OpenDoc {
	return func(path string) DocIO {
		return store.New(path)
	}
}

// NewRootCmd creates the root hnpx command with all subcommands registered.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "hnpx",
		Short:         "hnpx - hierarchical planning documents for fiction",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE:          func(_ *cobra.Command, _ []string) error { return nil },
	}
	open := newDefaultOpenDoc()
	root.AddCommand(NewInitCmd(open))
	root.AddCommand(NewCreateCmd(open))
	root.AddCommand(NewEditCmd(open))
	root.AddCommand(NewMoveCmd(open))
	root.AddCommand(NewReorderCmd(open))
	root.AddCommand(NewDeleteCmd(open))
	root.AddCommand(NewShowCmd(open))
	root.AddCommand(NewNextCmd(open))
	root.AddCommand(NewRenderCmd(open))
	root.AddCommand(NewDoctorCmd(open))
	root.AddCommand(NewStatsCmd(open))
	root.AddCommand(NewServeCmd())
	return root
}

// resolveDocument returns the document path a command should operate on:
// the --document flag when given, otherwise the configured default.
func resolveDocument(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	cfg, err := config.Load(config.Filename)
	if err != nil {
		return "", err
	}
	return cfg.Document, nil
}

// addDocumentFlag registers the shared --document flag on cmd and returns
// the destination variable.
func addDocumentFlag(cmd *cobra.Command) *string {
	var document string
	cmd.Flags().StringVarP(&document, "document", "d", "",
		"document file (default from "+config.Filename+")")
	return &document
}

var errorColor = color.New(color.FgRed)

// printFindings writes validation findings to the command's stderr, one
// line per finding.
func printFindings(cmd *cobra.Command, findings []hnpx.Finding) {
	for _, f := range findings {
		errorColor.Fprintf(cmd.ErrOrStderr(), "error: %s\n", f)
	}
}

// loadDocument opens and loads the document a command operates on.
func loadDocument(open OpenDoc, flagValue string) (DocIO, *hnpx.Document, error) {
	path, err := resolveDocument(flagValue)
	if err != nil {
		return nil, nil, err
	}
	io := open(path)
	doc, err := io.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading document: %w", err)
	}
	return io, doc, nil
}
