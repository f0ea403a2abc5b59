package cli

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// fetcher is the part of the dispatcher the track command needs.
type fetcher interface {
	FetchTrackingByCarrier(ctx context.Context, carrierID, trackingNumber string) (*tracking.Record, error)
	Carriers() []tracking.CarrierInfo
}

// trackOpts holds flags for the track command.
type trackOpts struct {
	json    bool
	noCache bool
}

// trackCommand creates the track command.
func (c *CLI) trackCommand() *cobra.Command {
	var opts trackOpts

	cmd := &cobra.Command{
		Use:   "track [carrier] <number>...",
		Short: "Fetch the tracking history of one or more shipments",
		Long: `Fetch the tracking history of one or more shipments from a carrier.

Numbers are fetched concurrently. When the carrier is omitted and stdin is a
terminal, an interactive picker lists the carriers with an adapter.`,
		Example: `  parceltrack track andreani 360000123456780
  parceltrack track correo_argentino CP123456789AR CP987654321AR
  parceltrack track --json oca 3867500000001234567`,
		Args: cobra.MinimumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			ids := make([]string, len(tracking.Carriers))
			for i, id := range tracking.Carriers {
				ids[i] = string(id)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openConfig()
			if err != nil {
				return err
			}
			return c.runTrack(cmd.Context(), c.newDispatcher(store, opts.noCache), args, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "print records as JSON")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always fetch from the carrier")

	return cmd
}

// runTrack resolves the carrier, fetches every number and prints the
// results. It fails when any number failed.
func (c *CLI) runTrack(ctx context.Context, d fetcher, args []string, opts trackOpts) error {
	carrier, numbers, err := c.resolveTrackArgs(d, args, opts)
	if err != nil {
		return err
	}

	var spinner *Spinner
	if !opts.json && c.terminal() {
		spinner = newSpinner(ctx, os.Stderr, fmt.Sprintf("Tracking %d shipment(s) with %s...", len(numbers), carrier))
		spinner.Start()
	}

	prog := newProgress(c.Logger)
	var finished atomic.Int32
	results := trackAll(ctx, d, carrier, numbers, func() {
		n := finished.Add(1)
		if spinner != nil {
			spinner.SetMessage(fmt.Sprintf("Tracking with %s... %d/%d", carrier, n, len(numbers)))
		}
	})
	if spinner != nil {
		spinner.Stop()
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
		}
	}
	prog.done("tracked", "carrier", carrier, "numbers", len(numbers), "failed", failed)

	if opts.json {
		if err := writeJSON(c.Out, results); err != nil {
			return err
		}
	} else {
		for i, r := range results {
			if i > 0 {
				printNewline(c.Out)
			}
			renderResult(c.Out, r)
		}
	}

	if failed > 0 {
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%d of %d lookups failed", failed, len(results))
	}
	return nil
}

// resolveTrackArgs splits args into a carrier and its numbers. Without a
// carrier it falls back to the picker on a terminal.
func (c *CLI) resolveTrackArgs(d fetcher, args []string, opts trackOpts) (tracking.Carrier, []string, error) {
	if carrier, ok := tracking.ParseCarrier(args[0]); ok {
		if len(args) == 1 {
			return "", nil, errors.New(errors.ErrCodeInvalidInput, "missing tracking number for %s", carrier)
		}
		return carrier, args[1:], nil
	}
	if opts.json || !c.terminal() {
		return "", nil, errors.New(errors.ErrCodeInvalidInput, "unknown carrier %q; run %s carriers for the list", args[0], appName)
	}
	pick := c.pick
	if pick == nil {
		pick = pickCarrier
	}
	carrier, err := pick(d.Carriers())
	if err != nil {
		return "", nil, err
	}
	return carrier, args, nil
}

func (c *CLI) terminal() bool {
	if c.isTerminal != nil {
		return c.isTerminal()
	}
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// trackAll fetches numbers concurrently, keeping input order in the result.
// Per-number failures are recorded, not propagated, so one bad number never
// cancels the others.
func trackAll(ctx context.Context, d fetcher, carrier tracking.Carrier, numbers []string, onDone func()) []trackResult {
	results := make([]trackResult, len(numbers))
	var g errgroup.Group
	g.SetLimit(maxConcurrentTracks)
	for i, number := range numbers {
		g.Go(func() error {
			rec, err := d.FetchTrackingByCarrier(ctx, string(carrier), number)
			results[i] = trackResult{Carrier: carrier, Number: number, Record: rec, Err: err}
			if onDone != nil {
				onDone()
			}
			return nil
		})
	}
	_ = g.Wait()
	return results
}
