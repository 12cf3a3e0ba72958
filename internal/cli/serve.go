package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/morg/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog as a JSON API",
		Long: `Serve the catalog over HTTP. Routes live under /api; photos are served
from /photo and /sets. Writes made through the API are logged with actor "http".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := newSignalContext()
			defer cancel()

			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = wire.Config().ListenAddr
			}

			fmt.Printf("Serving morg on http://%s\n", addr)
			return wire.WebServer().Run(ctx, addr)
		},
	}

	cmd.Flags().String("addr", "", "Listen address (defaults to listen_addr in config)")
	return cmd
}
