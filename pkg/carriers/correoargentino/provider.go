package correoargentino

import (
	"context"
	"net/url"
	"strings"

	"github.com/matzehuels/parceltrack/pkg/carriers"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// formAction is the search action of the public form for national items.
const formAction = "ondnc"

// Rules maps Correo Argentino event text. Order is precedence.
var Rules = normalize.Rules{
	{Status: tracking.StatusDelivered, Keywords: []string{"entregado", "entregada", "entrega en domicilio"}},
	{Status: tracking.StatusOutForDelivery, Keywords: []string{"en distribucion", "en poder del cartero", "salida a distribucion", "en proceso de entrega"}},
	{Status: tracking.StatusInTransit, Keywords: []string{"en transito", "en viaje", "clasificado", "centro de procesamiento", "ingreso", "llegada", "recibido", "despachado"}},
	{Status: tracking.StatusCreated, Keywords: []string{"preimposicion", "pre-imposicion", "admision", "admitido", "imposicion"}},
	{Status: tracking.StatusException, Keywords: []string{"devuelto", "devolucion", "rechazado", "retenido", "aduana", "destinatario ausente", "domicilio incorrecto", "visita"}},
}

// Provider implements tracking.Provider for Correo Argentino.
type Provider struct {
	deps carriers.Deps
}

// New builds the provider. Zero fields of deps get defaults.
func New(deps carriers.Deps) *Provider {
	return &Provider{deps: deps.WithDefaults()}
}

// Strategy implements tracking.Describer.
func (p *Provider) Strategy() tracking.Strategy { return tracking.StrategyMarkup }

// FetchTracking validates the S10 number, checks the country suffix
// against the configured list and then posts the search form.
func (p *Provider) FetchTracking(ctx context.Context, number string) (*tracking.Record, error) {
	n, err := ParseNumber(number)
	if err != nil {
		return nil, err
	}
	cfg := p.deps.Config.Carrier(string(tracking.CorreoArgentino))
	if !supported(cfg.Countries, n.Country) {
		return nil, errors.New(errors.ErrCodeNotFound, "correo argentino does not track items from %s", n.Country)
	}

	key := n.String()
	return carriers.Cached(ctx, p.deps.Cache, string(tracking.CorreoArgentino), key, cfg.TTL(), func() (*tracking.Record, error) {
		form := url.Values{
			"action":   {formAction},
			"producto": {n.Product},
			"id":       {n.Serial},
			"pais":     {n.Country},
		}
		body, err := p.deps.HTTP.PostForm(ctx, cfg.URL(key), form, cfg.Agent(), cfg.RequestWait())
		if err != nil {
			return nil, err
		}
		events, err := parse(string(body), p.deps.Clock)
		if err != nil {
			return nil, err
		}
		p.deps.Logger.Debug("parsed results", "carrier", tracking.CorreoArgentino, "number", key, "events", len(events))

		rec := &tracking.Record{
			Carrier:        tracking.CorreoArgentino,
			TrackingNumber: key,
			Events:         events,
			Details:        &tracking.Details{Service: n.Service()},
		}
		return normalize.Finalize(rec, Rules), nil
	})
}

func supported(countries []string, country string) bool {
	for _, c := range countries {
		if strings.EqualFold(strings.TrimSpace(c), country) {
			return true
		}
	}
	return false
}

var _ tracking.Provider = (*Provider)(nil)
