package tracking

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/observability"
)

// Dispatcher resolves a carrier id to its provider. It is the single entry
// point used by the CLI and the HTTP API.
type Dispatcher struct {
	providers map[Carrier]Provider
	logger    *log.Logger
}

// CarrierInfo describes one registered carrier id.
type CarrierInfo struct {
	ID          Carrier  `json:"id"`
	Implemented bool     `json:"implemented"`
	Strategy    Strategy `json:"strategy"`
}

// NewDispatcher builds a dispatcher over the closed carrier set. Carriers
// missing from providers resolve to [Unsupported]. A nil logger discards
// output.
func NewDispatcher(providers map[Carrier]Provider, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := make(map[Carrier]Provider, len(Carriers))
	for _, c := range Carriers {
		if p, ok := providers[c]; ok && p != nil {
			m[c] = p
		} else {
			m[c] = Unsupported{Carrier: c}
		}
	}
	return &Dispatcher{providers: m, logger: logger}
}

// FetchTrackingByCarrier fetches tracking data through the provider registered
// for carrierID. Unknown ids fail with UNSUPPORTED. Provider errors are
// returned unchanged; the dispatcher neither retries nor falls back.
func (d *Dispatcher) FetchTrackingByCarrier(ctx context.Context, carrierID, trackingNumber string) (*Record, error) {
	carrier, ok := ParseCarrier(carrierID)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnsupported, "unknown carrier %q", carrierID)
	}
	p := d.providers[carrier]

	hooks := observability.Fetch()
	hooks.OnFetchStart(ctx, string(carrier), trackingNumber)
	start := time.Now()

	rec, err := p.FetchTracking(ctx, trackingNumber)

	elapsed := time.Since(start)
	hooks.OnFetchComplete(ctx, string(carrier), trackingNumber, elapsed, err)
	if err != nil {
		d.logger.Debug("fetch failed", "carrier", carrier, "number", trackingNumber, "code", errors.GetCode(err), "err", err)
		return nil, err
	}
	d.logger.Debug("fetch done", "carrier", carrier, "number", rec.TrackingNumber, "status", rec.Status, "events", len(rec.Events), "elapsed", elapsed.Round(time.Millisecond))
	return rec, nil
}

// Carriers lists every carrier id with whether an adapter backs it.
func (d *Dispatcher) Carriers() []CarrierInfo {
	out := make([]CarrierInfo, 0, len(Carriers))
	for _, c := range Carriers {
		info := CarrierInfo{ID: c, Strategy: StrategyUnsupported}
		if desc, ok := d.providers[c].(Describer); ok {
			info.Strategy = desc.Strategy()
		}
		info.Implemented = info.Strategy != StrategyUnsupported
		out = append(out, info)
	}
	return out
}
