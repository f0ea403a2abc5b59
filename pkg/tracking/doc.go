// Package tracking defines the canonical tracking record, the provider
// contract every carrier adapter implements, and the dispatcher that routes
// a carrier id to its provider.
//
// # Records
//
// A [Record] is carrier-agnostic: the raw upstream label is kept in
// StatusLabel for display, while Status is always derived from it through
// the carrier's keyword rules (see package normalize). Events are ordered
// newest-first; events whose upstream timestamp could not be parsed are
// flagged Estimated and sit at the tail.
//
// # Dispatch
//
//	d := tracking.NewDispatcher(providers, logger)
//	rec, err := d.FetchTrackingByCarrier(ctx, "andreani", "360000123456789")
//	if errors.Is(err, errors.ErrCodeUnsupported) {
//	    // carrier id unknown or without adapter
//	}
//
// Every id of the closed set [Carriers] resolves to a provider; ids with no
// adapter resolve to [Unsupported].
package tracking
