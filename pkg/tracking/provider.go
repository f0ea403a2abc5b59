package tracking

import (
	"context"

	"github.com/matzehuels/parceltrack/pkg/errors"
)

// Provider fetches and normalizes tracking data for one carrier.
//
// Implementations validate the number before any I/O, may answer from a
// short-lived cache, and classify every failure as an *errors.Error before
// returning it.
type Provider interface {
	FetchTracking(ctx context.Context, trackingNumber string) (*Record, error)
}

// Describer is implemented by providers that can report how they reach
// their carrier.
type Describer interface {
	Strategy() Strategy
}

// Unsupported is the provider registered for carriers without an adapter.
// It fails every call with UNSUPPORTED and performs no I/O.
type Unsupported struct {
	Carrier Carrier
}

// FetchTracking always fails with UNSUPPORTED.
func (u Unsupported) FetchTracking(context.Context, string) (*Record, error) {
	return nil, errors.New(errors.ErrCodeUnsupported, "carrier %q is not supported yet", u.Carrier)
}

// Strategy implements Describer.
func (Unsupported) Strategy() Strategy { return StrategyUnsupported }

var _ Provider = Unsupported{}
