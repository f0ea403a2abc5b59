package viacargo

import (
	"encoding/json"

	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Rules maps Via Cargo labels. Order is precedence.
var Rules = normalize.Rules{
	{Status: tracking.StatusDelivered, Keywords: []string{"entregado", "entregada", "entrega efectuada"}},
	{Status: tracking.StatusOutForDelivery, Keywords: []string{"en reparto", "en distribucion", "salida a reparto"}},
	{Status: tracking.StatusInTransit, Keywords: []string{"en transito", "en viaje", "despachado", "arribado", "recibido en", "en deposito"}},
	{Status: tracking.StatusCreated, Keywords: []string{"admitido", "guia generada", "ingresado al sistema", "pendiente"}},
	{Status: tracking.StatusException, Keywords: []string{"devolucion", "retenido", "rechazado", "ausente", "siniestro", "demora"}},
}

// Parse turns an intercepted Via Cargo response into a record.
func Parse(body []byte, number string, clock cache.Clock) (*tracking.Record, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnexpected, err, "via cargo returned malformed data")
	}
	if p.OK.False() {
		msg := normalize.First(p.Mensaje.String(), "shipment not found")
		return nil, errors.New(errors.ErrCodeNotFound, "via cargo: %s", msg)
	}

	events := make([]tracking.Event, 0, len(p.Movimientos))
	for _, m := range p.Movimientos {
		desc := m.Descripcion.String()
		if desc == "" {
			continue
		}
		ts, estimated := normalize.Date(normalize.JoinDateTime(m.Fecha.String(), m.Hora.String()), clock)
		events = append(events, tracking.Event{
			Timestamp:   ts,
			Estimated:   estimated,
			Location:    m.Sucursal.String(),
			Description: desc,
		})
	}
	if len(events) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "via cargo has no events for %s", number)
	}

	rec := &tracking.Record{
		Carrier:        tracking.ViaCargo,
		TrackingNumber: number,
		Events:         events,
	}
	if e := p.Envio; e != nil && *e != (shipment{}) {
		rec.TrackingNumber = normalize.First(normalize.Canonical(e.Numero.String()), number)
		rec.StatusLabel = e.Estado.String()
		rec.ETA = normalize.DatePtr(e.FechaEntregaEstimada.String())
		rec.Details = &tracking.Details{
			Service:     e.Servicio.String(),
			Pieces:      e.Piezas.Ptr(),
			Weight:      e.Peso.String(),
			Origin:      e.Origen.String(),
			Destination: e.Destino.String(),
			Signee:      normalize.MaskName(e.Firmante.String()),
		}
	}
	return normalize.Finalize(rec, Rules), nil
}
