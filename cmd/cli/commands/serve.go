package commands

import (
	"github.com/spf13/cobra"

	"github.com/hinterbergers/mycliniq-sub005/pkg/api"
)

// ServeCmd creates the serve command
func ServeCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the roster API over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			server := api.NewServer(app.Store, app.Catalog, app.Cfg, app.Logger)
			return server.Run()
		},
	}
}
