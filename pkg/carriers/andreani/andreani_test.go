package andreani

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/parceltrack/pkg/browser/browsertest"
	"github.com/matzehuels/parceltrack/pkg/cache"
	"github.com/matzehuels/parceltrack/pkg/carriers"
	"github.com/matzehuels/parceltrack/pkg/config"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func fixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestParseDelivered(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	rec, err := Parse(fixture(t, "delivered.json"), "360000123456789", clock)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if rec.Carrier != tracking.Andreani {
		t.Errorf("Carrier = %s", rec.Carrier)
	}
	if rec.Status != tracking.StatusDelivered {
		t.Errorf("Status = %s, want delivered", rec.Status)
	}
	if rec.StatusLabel != "Entregado" {
		t.Errorf("StatusLabel = %q", rec.StatusLabel)
	}
	if len(rec.Events) != 4 {
		t.Fatalf("len(Events) = %d, want 4 (undescribed event dropped)", len(rec.Events))
	}
	wantOrder := []string{"Entregado al destinatario", "En viaje a sucursal de destino", "Envío creado", "Comentario sin fecha"}
	for i, want := range wantOrder {
		if rec.Events[i].Description != want {
			t.Errorf("Events[%d] = %q, want %q", i, rec.Events[i].Description, want)
		}
	}
	if !rec.Events[3].Estimated {
		t.Error("undated event should be estimated")
	}
	if rec.Events[0].Stage != tracking.StatusDelivered || rec.Events[1].Stage != tracking.StatusInTransit {
		t.Errorf("stages = %s, %s", rec.Events[0].Stage, rec.Events[1].Stage)
	}
	if rec.ETA == nil || rec.ETA.Day() != 3 {
		t.Errorf("ETA = %v", rec.ETA)
	}

	d := rec.Details
	if d == nil {
		t.Fatal("Details is nil")
	}
	if d.Pieces == nil || *d.Pieces != 1 {
		t.Errorf("Pieces = %v", d.Pieces)
	}
	if d.Weight != "1.25" {
		t.Errorf("Weight = %q", d.Weight)
	}
	if d.Signee != "J*** P****" {
		t.Errorf("Signee = %q", d.Signee)
	}
	if d.Destination != "Sucursal Córdoba Centro" {
		t.Errorf("Destination = %q", d.Destination)
	}
}

func TestParseNotFound(t *testing.T) {
	for _, name := range []string{"not_found.json", "empty_timeline.json"} {
		_, err := Parse(fixture(t, name), "3600001234", nil)
		if !errors.Is(err, errors.ErrCodeNotFound) {
			t.Errorf("%s: err = %v, want NOT_FOUND", name, err)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("<html>"), "3600001234", nil)
	if !errors.Is(err, errors.ErrCodeUnexpected) {
		t.Errorf("err = %v, want UNEXPECTED", err)
	}
}

func TestParseToleratesMissingFields(t *testing.T) {
	rec, err := Parse([]byte(`{"timeline":[{"descripcion":"En distribución"}]}`), "3600001234", nil)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if rec.Status != tracking.StatusOutForDelivery {
		t.Errorf("Status = %s, want out_for_delivery from newest event", rec.Status)
	}
	if rec.Details != nil {
		t.Errorf("Details = %+v, want nil", rec.Details)
	}
}

func TestParseOffShapeFields(t *testing.T) {
	body := []byte(`{
		"numeroAndreani": 360000123456789,
		"estado": {"codigo": 7},
		"bultos": "uno",
		"peso": 2.5,
		"receptor": ["x"],
		"timeline": [
			{"fecha": "03-05-2024 11:02", "descripcion": "Entregado", "sucursal": {"nombre": "Cordoba"}},
			{"fecha": 1714651200000, "descripcion": "En viaje", "sucursal": "CABA"},
			"sin detalle",
			{"fecha": true, "estado": "Envío creado"}
		]
	}`)
	rec, err := Parse(body, "360000123456789", &fakeClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)})
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if rec.Status != tracking.StatusDelivered {
		t.Errorf("Status = %s, want delivered from newest event", rec.Status)
	}
	if len(rec.Events) != 3 {
		t.Fatalf("len(Events) = %d, want 3", len(rec.Events))
	}
	if rec.Events[0].Location != "" || rec.Events[1].Location != "CABA" {
		t.Errorf("locations = %q, %q", rec.Events[0].Location, rec.Events[1].Location)
	}
	if rec.Events[1].Estimated || rec.Events[1].Timestamp.Day() != 2 {
		t.Errorf("epoch event = %v estimated=%v", rec.Events[1].Timestamp, rec.Events[1].Estimated)
	}
	if !rec.Events[2].Estimated {
		t.Error("boolean date should be estimated")
	}
	if rec.TrackingNumber != "360000123456789" {
		t.Errorf("TrackingNumber = %q", rec.TrackingNumber)
	}
	if d := rec.Details; d.Pieces != nil || d.Weight != "2.5" || d.Signee != "" {
		t.Errorf("Details = %+v", d)
	}
}

func newProvider(l *browsertest.Launcher, clock cache.Clock) *Provider {
	return New(carriers.Deps{
		Launcher: l,
		Clock:    clock,
		Config:   config.NewStore(nil),
	})
}

func TestFetchTrackingInvalidInputNoBrowser(t *testing.T) {
	l := &browsertest.Launcher{}
	p := newProvider(l, nil)
	for _, n := range []string{"", "123", "ABCDEFGHIJKL", "123456789012345678901"} {
		_, err := p.FetchTracking(context.Background(), n)
		if !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("FetchTracking(%q) err = %v, want INVALID_INPUT", n, err)
		}
	}
	if l.Launches() != 0 {
		t.Errorf("launches = %d, want 0", l.Launches())
	}
}

func TestFetchTrackingMemoizes(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)}
	l := &browsertest.Launcher{
		CaptureURL: "https://www.andreani.com/api/v2/envios/360000123456789",
		Body:       fixture(t, "delivered.json"),
	}
	p := newProvider(l, clock)
	ctx := context.Background()

	first, err := p.FetchTracking(ctx, "3600 0012 3456 789")
	if err != nil {
		t.Fatalf("FetchTracking() error: %v", err)
	}
	second, err := p.FetchTracking(ctx, "360000123456789")
	if err != nil {
		t.Fatalf("FetchTracking() error: %v", err)
	}
	if first != second {
		t.Error("second fetch within TTL should return the cached record")
	}
	if l.Launches() != 1 {
		t.Errorf("launches = %d, want 1", l.Launches())
	}
	if nav := l.Navigated(); nav[0] != "https://www.andreani.com/envio/360000123456789" {
		t.Errorf("navigated = %v", nav)
	}

	clock.now = clock.now.Add(config.DefaultCacheTTL * time.Second)
	if _, err := p.FetchTracking(ctx, "360000123456789"); err != nil {
		t.Fatalf("FetchTracking() error: %v", err)
	}
	if l.Launches() != 2 {
		t.Errorf("launches = %d after TTL, want 2", l.Launches())
	}
	if l.Launches() != l.Closes() {
		t.Errorf("launches=%d closes=%d", l.Launches(), l.Closes())
	}
}

func TestFetchTrackingUpstreamTimeout(t *testing.T) {
	cfg := config.Default()
	c := cfg.Carriers["andreani"]
	c.ResponseTimeout = 1
	cfg.Carriers["andreani"] = c

	l := &browsertest.Launcher{Silent: true}
	p := New(carriers.Deps{Launcher: l, Config: config.NewStore(cfg)})

	_, err := p.FetchTracking(context.Background(), "3600001234")
	if !errors.Is(err, errors.ErrCodeUpstream) {
		t.Errorf("err = %v, want UPSTREAM", err)
	}
	if l.Launches() != 1 || l.Closes() != 1 {
		t.Errorf("launches=%d closes=%d", l.Launches(), l.Closes())
	}
}
