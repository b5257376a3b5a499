// Package cli implements the todate command line.
package cli

import (
	"context"
	"log/slog"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/todate/internal/config"
	"github.com/dmitrymomot/todate/pkg/filters"
	"github.com/dmitrymomot/todate/pkg/logger"
)

// app carries state shared by subcommands after the root pre-run.
type app struct {
	logger *slog.Logger
	cfg    config.Config
}

// NewRootCommand builds the todate command tree.
func NewRootCommand() *cobra.Command {
	a := &app{logger: logger.NewNope()}

	root := &cobra.Command{
		Use:           "todate",
		Short:         "Format dates as long-form localized strings",
		Long:          `todate renders date-like values as long-form dates such as "January 5, 2024", from the command line or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	root.AddCommand(newFormatCommand(a), newServeCommand(a))
	return root
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	lc := cfg.Logger()
	lc.Output = cmd.ErrOrStderr()
	log, err := logger.New(lc, requestIDAttr, localeAttr)
	if err != nil {
		return err
	}
	a.logger = log
	return nil
}

func requestIDAttr(ctx context.Context) (slog.Attr, bool) {
	if id := middleware.GetReqID(ctx); id != "" {
		return slog.String("request_id", id), true
	}
	return slog.Attr{}, false
}

// localeAttr adds the negotiated date locale to records logged during a request.
func localeAttr(ctx context.Context) (slog.Attr, bool) {
	if f, ok := filters.LookupFormatter(ctx); ok {
		return slog.String("locale", f.Locale().String()), true
	}
	return slog.Attr{}, false
}
