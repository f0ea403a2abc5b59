package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/parceltrack/pkg/tracking"
)

func TestRenderRecord(t *testing.T) {
	pieces := 2
	updated := time.Date(2024, 3, 2, 16, 30, 0, 0, time.UTC)
	rec := &tracking.Record{
		Carrier:        tracking.OCA,
		TrackingNumber: "3867500000001234567",
		StatusLabel:    "Entregado",
		Status:         tracking.StatusDelivered,
		LastUpdated:    &updated,
		Events: []tracking.Event{
			{Timestamp: updated, Description: "Entregado", Location: "Rosario", Stage: tracking.StatusDelivered},
			{Timestamp: updated, Estimated: true, Description: "Ingresado"},
		},
		Details: &tracking.Details{Service: "Paquete", Pieces: &pieces, Signee: "J*** P***"},
	}

	var buf bytes.Buffer
	renderRecord(&buf, rec)
	out := buf.String()

	for _, want := range []string{
		"oca", "3867500000001234567", "delivered",
		"Updated", "02/03/2024 13:30",
		"Pieces", "2", "Signed by", "J*** P***",
		"Rosario", "Ingresado",
		"date not reported",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Weight") {
		t.Errorf("empty detail rendered:\n%s", out)
	}
}

func TestRenderRecordNoEvents(t *testing.T) {
	var buf bytes.Buffer
	renderRecord(&buf, &tracking.Record{Carrier: tracking.Andreani, TrackingNumber: "1", Status: tracking.StatusUnknown})
	if !strings.Contains(buf.String(), "no events") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestRenderCarriers(t *testing.T) {
	var buf bytes.Buffer
	renderCarriers(&buf, []tracking.CarrierInfo{
		{ID: tracking.CorreoArgentino, Implemented: true, Strategy: tracking.StrategyMarkup},
		{ID: tracking.UPS, Strategy: tracking.StrategyUnsupported},
	})
	out := buf.String()
	for _, want := range []string{"correo_argentino", "markup", "ups", "unsupported", iconSuccess, iconError} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
