package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/todate/internal/web"
	"github.com/dmitrymomot/todate/pkg/filters"
)

func newServeCommand(a *app) *cobra.Command {
	var address string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the date filter over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tag, err := a.cfg.LocaleTag()
			if err != nil {
				return err
			}
			loc, err := a.cfg.Location()
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("address") {
				address = a.cfg.Address
			}

			handler := web.NewHandler(a.logger,
				filters.WithDefaultLocale(tag),
				filters.WithLocation(loc),
			)

			return web.Serve(cmd.Context(), web.ServerConfig{
				Handler:         handler,
				Logger:          a.logger,
				Address:         address,
				ShutdownTimeout: a.cfg.ShutdownTimeout,
			})
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "", "Listen address (default from ADDRESS)")
	return cmd
}
