package oca

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/carriers"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/normalize"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

// Rules maps OCA labels. Order is precedence.
var Rules = normalize.Rules{
	{Status: tracking.StatusDelivered, Keywords: []string{"entregado", "entregada", "entrega efectiva"}},
	{Status: tracking.StatusOutForDelivery, Keywords: []string{"en distribucion", "en reparto", "en proceso de entrega", "salio a distribuir"}},
	{Status: tracking.StatusInTransit, Keywords: []string{"en transito", "en viaje", "ingresado", "en planta", "en sucursal", "arribo", "despachado"}},
	{Status: tracking.StatusCreated, Keywords: []string{"orden generada", "pre-admision", "admision", "admitido"}},
	{Status: tracking.StatusException, Keywords: []string{"devuelto", "devolucion", "rechazado", "no retirado", "siniestro", "domicilio inexistente", "visita sin exito"}},
}

// Parse turns the detail response into a record.
func Parse(body []byte, number string, clock cache.Clock) (*tracking.Record, error) {
	p, err := decode(body)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeUnexpected, err, "oca returned malformed data")
	}
	if p == nil {
		return nil, errors.New(errors.ErrCodeNotFound, "oca has no shipment %s", number)
	}

	var events []tracking.Event
	for _, h := range p.Historial {
		desc := h.Estado.String()
		if motivo := h.Motivo.String(); motivo != "" && motivo != desc {
			if desc == "" {
				desc = motivo
			} else {
				desc += " - " + motivo
			}
		}
		if desc == "" {
			continue
		}
		ts, estimated := normalize.Date(h.Fecha.String(), clock)
		events = append(events, tracking.Event{
			Timestamp:   ts,
			Estimated:   estimated,
			Location:    h.Sucursal.String(),
			Description: desc,
		})
	}
	if len(events) == 0 {
		return nil, errors.New(errors.ErrCodeNotFound, "oca has no events for %s", number)
	}

	rec := &tracking.Record{
		Carrier:        tracking.OCA,
		TrackingNumber: normalize.First(normalize.Canonical(p.NumeroEnvio.String()), number),
		StatusLabel:    p.EstadoActual.String(),
		ETA:            normalize.DatePtr(p.FechaEstimada.String()),
		Events:         events,
		Details: &tracking.Details{
			Service:     p.Servicio.String(),
			Pieces:      p.CantidadPiezas.Ptr(),
			Weight:      p.Peso.String(),
			Origin:      p.SucursalOrigen.String(),
			Destination: p.SucursalDestino.String(),
			Signee:      normalize.MaskName(p.Receptor.String()),
		},
	}
	return normalize.Finalize(rec, Rules), nil
}

// decode accepts an object or an array of objects, returning the first.
// A null body or an empty array yields nil.
func decode(body []byte) (*payload, error) {
	body = bytes.TrimSpace(body)
	if len(body) > 0 && body[0] == '[' {
		var list carriers.LooseList[*payload]
		if err := json.Unmarshal(body, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return nil, nil
		}
		return list[0], nil
	}
	var p *payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, err
	}
	return p, nil
}
