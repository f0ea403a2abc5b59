package andreani

import (
	"encoding/json"

	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Rules maps Andreani labels. Order is precedence.
var Rules = normalize.Rules{
	{Status: tracking.StatusDelivered, Keywords: []string{"entregado", "entregada", "entrega realizada"}},
	{Status: tracking.StatusOutForDelivery, Keywords: []string{"en distribucion", "en reparto", "salio a distribucion", "visita programada"}},
	{Status: tracking.StatusInTransit, Keywords: []string{"en viaje", "en transito", "en camino", "ingresado", "ingreso a sucursal", "arribo", "en sucursal", "en centro de distribucion"}},
	{Status: tracking.StatusCreated, Keywords: []string{"pendiente de ingreso", "envio creado", "alta", "pre-imposicion"}},
	{Status: tracking.StatusException, Keywords: []string{"devuelto", "devolucion", "rechazado", "siniestro", "demorado", "visita fallida", "domicilio cerrado", "cancelado"}},
}

// Parse decodes an intercepted Andreani response into a record. It does no
// I/O; clock only supplies the fallback for unparseable event dates.
func Parse(body []byte, number string, clock cache.Clock) (*tracking.Record, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnexpected, err, "andreani returned malformed data")
	}

	denial := normalize.First(p.Error.String(), p.Mensaje.String())
	if denial != "" && len(p.Timeline) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "andreani has no shipment %s: %s", number, denial)
	}

	events := make([]tracking.Event, 0, len(p.Timeline))
	for _, ev := range p.Timeline {
		desc := normalize.First(ev.Descripcion.String(), ev.Estado.String())
		if desc == "" {
			continue
		}
		ts, estimated := normalize.Date(ev.Fecha.String(), clock)
		events = append(events, tracking.Event{
			Timestamp:   ts,
			Estimated:   estimated,
			Location:    ev.Sucursal.String(),
			Description: desc,
		})
	}
	if len(events) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "andreani has no events for %s", number)
	}

	rec := &tracking.Record{
		Carrier:        tracking.Andreani,
		TrackingNumber: normalize.First(normalize.Canonical(p.NumeroAndreani.String()), number),
		StatusLabel:    p.Estado.String(),
		LastUpdated:    normalize.DatePtr(p.FechaEstado.String()),
		ETA:            normalize.DatePtr(p.FechaEstimadaDeEntrega.String()),
		Events:         events,
		Details: &tracking.Details{
			Service:     p.Servicio.String(),
			Pieces:      p.Bultos.Ptr(),
			Weight:      p.Peso.String(),
			Origin:      p.SucursalOrigen.String(),
			Destination: p.SucursalDestino.String(),
			Signee:      normalize.MaskName(p.Receptor.String()),
		},
	}
	return normalize.Finalize(rec, Rules), nil
}
