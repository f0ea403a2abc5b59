package registry

import (
	"context"
	"testing"

	"github.com/matzehuels/parceltrack/pkg/browser/browsertest"
	"github.com/matzehuels/parceltrack/pkg/errors"
	"github.com/matzehuels/parceltrack/pkg/tracking"
)

func TestProvidersCoverImplementedCarriers(t *testing.T) {
	providers := Providers(Options{Launcher: &browsertest.Launcher{}})
	for _, c := range []tracking.Carrier{tracking.Andreani, tracking.ViaCargo, tracking.OCA, tracking.CorreoArgentino, tracking.CorreoArgentinoAlt} {
		if providers[c] == nil {
			t.Errorf("no provider for %s", c)
		}
	}
	if providers[tracking.CorreoArgentino] != providers[tracking.CorreoArgentinoAlt] {
		t.Error("correo argentino ids should share one provider")
	}
}

func TestNewDispatcher(t *testing.T) {
	d := New(Options{Launcher: &browsertest.Launcher{}})

	strategies := map[tracking.Carrier]tracking.Strategy{}
	for _, info := range d.Carriers() {
		strategies[info.ID] = info.Strategy
	}
	want := map[tracking.Carrier]tracking.Strategy{
		tracking.Andreani:           tracking.StrategyBrowser,
		tracking.ViaCargo:           tracking.StrategyBrowser,
		tracking.OCA:                tracking.StrategyHybrid,
		tracking.CorreoArgentino:    tracking.StrategyMarkup,
		tracking.CorreoArgentinoAlt: tracking.StrategyMarkup,
		tracking.Urbano:             tracking.StrategyUnsupported,
		tracking.DHL:                tracking.StrategyUnsupported,
		tracking.FedEx:              tracking.StrategyUnsupported,
		tracking.UPS:                tracking.StrategyUnsupported,
		tracking.Other:              tracking.StrategyUnsupported,
	}
	for c, s := range want {
		if strategies[c] != s {
			t.Errorf("%s strategy = %s, want %s", c, strategies[c], s)
		}
	}

	for _, c := range []string{"urbano", "dhl", "fedex", "ups", "other"} {
		if _, err := d.FetchTrackingByCarrier(context.Background(), c, "123"); !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("%s: err = %v, want UNSUPPORTED", c, err)
		}
	}
}

func TestNoCacheRefetches(t *testing.T) {
	l := &browsertest.Launcher{
		CaptureURL: "https://www.viacargo.com.ar/api/tracking/12345678",
		Body:       []byte(`{"ok":true,"movimientos":[{"fecha":"02/05/2024","hora":"10:00","descripcion":"En tránsito"}]}`),
	}
	d := New(Options{Launcher: l, NoCache: true})
	for range 2 {
		if _, err := d.FetchTrackingByCarrier(context.Background(), "viacargo", "12345678"); err != nil {
			t.Fatal(err)
		}
	}
	if l.Launches() != 2 {
		t.Errorf("launches = %d, want 2", l.Launches())
	}
}
