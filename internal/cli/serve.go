package cli

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/parceltrack/internal/api"
	"github.com/matzehuels/parceltrack/pkg/config"
	"github.com/matzehuels/parceltrack/pkg/observability"
)

// serveOpts holds flags for the serve command.
type serveOpts struct {
	addr    string
	watch   bool
	timeout time.Duration
}

// serveCommand runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var opts serveOpts

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tracking API over HTTP",
		Long: `Serve the tracking API over HTTP.

Routes:
  GET /healthz
  GET /v1/carriers
  GET /v1/stats
  GET /v1/tracking/{carrier}/{number}[?refresh=true]

With --watch the config file is reloaded whenever it changes; providers pick
up the new values on their next call.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openConfig()
			if err != nil {
				return err
			}
			return c.runServe(cmd.Context(), store, opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "", "listen address (default from config, then "+config.DefaultAddr+")")
	cmd.Flags().BoolVar(&opts.watch, "watch", false, "reload the config file when it changes")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 90*time.Second, "upper bound for one tracking request")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, store *config.Store, opts serveOpts) error {
	addr := opts.addr
	if addr == "" {
		addr = store.Current().Server.Addr
	}
	if addr == "" {
		addr = config.DefaultAddr
	}

	counters := observability.NewCounters()
	observability.SetAll(counters)
	defer observability.Reset()

	handler := api.NewRouter(api.Config{
		Dispatcher: c.newDispatcher(store, false),
		Counters:   counters,
		Logger:     c.Logger,
		Timeout:    opts.timeout,
	})

	if opts.watch {
		if err := store.Watch(ctx, c.Logger); err != nil {
			return err
		}
		c.Logger.Info("watching config", "path", store.Path())
	}
	return api.Serve(ctx, addr, handler, c.Logger)
}
