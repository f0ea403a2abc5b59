package tracking

import (
	"slices"
	"strings"
	"time"
)

// Carrier identifies a postal or courier network.
type Carrier string

// Known carrier identifiers. The set is closed: ids outside it are rejected
// by [ParseCarrier] and by the [Dispatcher].
const (
	Andreani           Carrier = "andreani"
	Urbano             Carrier = "urbano"
	ViaCargo           Carrier = "viacargo"
	OCA                Carrier = "oca"
	CorreoArgentino    Carrier = "correo_argentino"
	CorreoArgentinoAlt Carrier = "correoargentino"
	DHL                Carrier = "dhl"
	FedEx              Carrier = "fedex"
	UPS                Carrier = "ups"
	Other              Carrier = "other"
)

// Carriers is the closed set of carrier ids, in display order.
var Carriers = []Carrier{
	Andreani,
	Urbano,
	ViaCargo,
	OCA,
	CorreoArgentino,
	CorreoArgentinoAlt,
	DHL,
	FedEx,
	UPS,
	Other,
}

// ParseCarrier resolves a user-supplied carrier id. Matching ignores case and
// surrounding whitespace, and accepts '-' in place of '_'.
func ParseCarrier(s string) (Carrier, bool) {
	c := Carrier(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_"))
	if slices.Contains(Carriers, c) {
		return c, true
	}
	return "", false
}

// Status is the shared, closed status vocabulary every carrier label maps to.
type Status string

const (
	StatusUnknown        Status = "unknown"
	StatusCreated        Status = "created"
	StatusInTransit      Status = "in_transit"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusException      Status = "exception"
)

// Strategy describes how a provider reaches its carrier.
type Strategy string

const (
	StrategyBrowser     Strategy = "browser"
	StrategyHybrid      Strategy = "hybrid"
	StrategyMarkup      Strategy = "markup"
	StrategyUnsupported Strategy = "unsupported"
)

// Event is one dated occurrence in a shipment's history.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	// Estimated is set when the upstream timestamp could not be parsed and
	// Timestamp holds the fetch time instead. Such events sort last.
	Estimated   bool   `json:"timestamp_estimated,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description"`
	Stage       Status `json:"stage,omitempty"`
}

// Details carries optional shipment metadata some carriers expose.
type Details struct {
	Service     string `json:"service,omitempty"`
	Pieces      *int   `json:"pieces,omitempty"`
	Weight      string `json:"weight,omitempty"`
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	Signee      string `json:"signee,omitempty"` // masked
}

// Empty reports whether no field of d is set.
func (d *Details) Empty() bool {
	return d == nil || *d == Details{}
}

// Record is the canonical, carrier-agnostic tracking result.
type Record struct {
	Carrier        Carrier    `json:"carrier"`
	TrackingNumber string     `json:"tracking_number"`
	StatusLabel    string     `json:"status_label"`
	Status         Status     `json:"status"`
	LastUpdated    *time.Time `json:"last_updated,omitempty"`
	ETA            *time.Time `json:"eta,omitempty"`
	Events         []Event    `json:"events"`
	Details        *Details   `json:"details,omitempty"`
}

// Latest returns the newest event, or false when there are none.
// Events are kept newest-first, so this is the head of the slice.
func (r *Record) Latest() (Event, bool) {
	if r == nil || len(r.Events) == 0 {
		return Event{}, false
	}
	return r.Events[0], true
}
