package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/passforge/passforge-go/internal/server"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var port string

	c := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and front-end",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}

			log, err := opts.newLogger(cmd.OutOrStdout(), cfg)
			if err != nil {
				return err
			}
			slog.SetDefault(log)

			return server.Run(cmd.Context(), server.New(cfg, log), cfg, log)
		},
	}

	c.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	return c
}
