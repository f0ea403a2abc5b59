package oca

import (
	"context"
	"regexp"

	"github.com/matzehuels/parceltrack/pkg/browser"
	"github.com/matzehuels/parceltrack/pkg/carriers"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

const (
	minDigits = 12
	maxDigits = 19
)

var backend = browser.ResponseMatcher{
	URL:  regexp.MustCompile(`/Busquedas/(ObtenerDetalleEnvio|Tracking)`),
	MIME: "json",
}

// Provider implements tracking.Provider for OCA.
type Provider struct {
	deps carriers.Deps
	auto *carriers.Automation
}

// New builds the provider. Zero fields of deps get defaults.
func New(deps carriers.Deps) *Provider {
	deps = deps.WithDefaults()
	return &Provider{deps: deps, auto: carriers.NewAutomation(deps.Launcher, deps.Logger)}
}

// Strategy implements tracking.Describer.
func (p *Provider) Strategy() tracking.Strategy { return tracking.StrategyHybrid }

// FetchTracking loads the search page, clicks the detail action and
// captures the history response.
func (p *Provider) FetchTracking(ctx context.Context, number string) (*tracking.Record, error) {
	n, err := carriers.DigitNumber(number, minDigits, maxDigits)
	if err != nil {
		return nil, err
	}
	cfg := p.deps.Config.Carrier(string(tracking.OCA))

	return carriers.Cached(ctx, p.deps.Cache, string(tracking.OCA), n, cfg.TTL(), func() (*tracking.Record, error) {
		body, err := p.auto.Capture(ctx, carriers.Plan{
			Carrier:         string(tracking.OCA),
			URL:             cfg.URL(n),
			UserAgent:       cfg.Agent(),
			Matcher:         backend,
			Interact:        cfg.DetailSelector,
			PageTimeout:     cfg.PageWait(),
			ResponseTimeout: cfg.ResponseWait(),
		})
		if err != nil {
			return nil, err
		}
		return Parse(body, n, p.deps.Clock)
	})
}

var _ tracking.Provider = (*Provider)(nil)
