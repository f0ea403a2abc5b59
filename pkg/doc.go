// Package pkg provides the libraries behind parceltrack, a tracking
// aggregator for Argentine carriers.
//
// # Overview
//
// Every carrier publishes shipment history differently: some behind a
// JavaScript-rendered page that calls a private JSON backend, some as a
// plain HTML table answered to a form post. parceltrack hides those
// differences behind one contract and one record shape. The pkg directory
// is organized into these areas:
//
//  1. [tracking] - The contract: carrier ids, the normalized record, the
//     Provider interface and the Dispatcher
//  2. [carriers] - Shared provider plumbing plus one subpackage per carrier
//  3. [normalize] - Dates, text, status vocabulary and event ordering
//  4. [browser] - Automated Chrome sessions with response interception
//  5. Infrastructure: [cache], [config], [errors], [observability]
//
// # Architecture
//
// The typical data flow of one lookup:
//
//	carrier id + tracking number
//	         ↓
//	    [tracking.Dispatcher] (resolve the provider, or UNSUPPORTED)
//	         ↓
//	    provider (validate the number before any I/O, consult its cache)
//	         ↓
//	    [browser] session or HTTP form post
//	         ↓
//	    payload parse + [normalize] (status, dates, newest-first events)
//	         ↓
//	    *tracking.Record, or an *errors.Error with one of five codes
//
// # Quick Start
//
//	import (
//	    "context"
//	    "github.com/matzehuels/parceltrack/pkg/carriers/registry"
//	    "github.com/matzehuels/parceltrack/pkg/config"
//	)
//
//	store, _ := config.Open(path)
//	d := registry.New(registry.Options{Config: store})
//	rec, err := d.FetchTrackingByCarrier(ctx, "correo_argentino", "CP123456789AR")
//	if errors.Is(err, errors.ErrCodeNotFound) {
//	    // the carrier has no such shipment
//	}
//
// # Main Packages
//
// ## Contract
//
// [tracking] - Record, Event, Details, the closed carrier and status sets,
// and the Dispatcher that routes a carrier id to its provider.
//
// [errors] - The five-code failure taxonomy every provider maps into:
// INVALID_INPUT, NOT_FOUND, UPSTREAM, UNSUPPORTED, UNEXPECTED.
//
// ## Carriers
//
// [carriers] - HTTP client, the browser automation runner, failure
// classification and the memoizing fetch wrapper shared by all providers.
// Subpackages andreani, viacargo, oca and correoargentino hold one adapter
// each; registry wires them into a Dispatcher.
//
// ## Infrastructure
//
// [cache] - Generic in-memory TTL store with an injectable clock.
//
// [config] - TOML configuration with environment overrides and an
// atomically swapped snapshot that can hot-reload.
//
// [observability] - Hook registry for fetch, cache, HTTP and browser events,
// plus atomic counters.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                    # All tests
//	go test ./pkg/carriers/...           # Providers only
//	go test -run Property ./pkg/...      # Property tests only
//
// No test reaches a real carrier or a real browser: providers are exercised
// against recorded payloads under testdata/ and the fake launcher in
// browser/browsertest.
//
// [tracking]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/tracking
// [tracking.Dispatcher]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/tracking#Dispatcher
// [carriers]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/carriers
// [normalize]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/normalize
// [browser]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/browser
// [cache]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/cache
// [config]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/config
// [errors]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/parceltrack/pkg/observability
package pkg
