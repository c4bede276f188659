package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/eykd/hnpx-go/internal/config"
	"github.com/eykd/hnpx-go/internal/server"
	"github.com/eykd/hnpx-go/internal/store"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	var documentFlag string

	cmd := &cobra.Command{
		Use:          "serve",
		Short:        "Serve the document over the Model Context Protocol on stdio",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.Filename)
			if err != nil {
				return err
			}
			if documentFlag != "" {
				cfg.Document = documentFlag
			}

			level, err := zerolog.ParseLevel(cfg.LogLevel)
			if err != nil {
				level = zerolog.InfoLevel
			}
			// Stdout belongs to the protocol; logs go to stderr.
			log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

			srv := server.New(store.New(cfg.Document), log)
			return srv.Run(cmd.Context(), cfg.Transport)
		},
	}

	cmd.Flags().StringVarP(&documentFlag, "document", "d", "",
		"document file (default from "+config.Filename+")")

	return cmd
}
