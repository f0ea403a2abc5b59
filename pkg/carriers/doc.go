// Package carriers holds the plumbing shared by the carrier providers in
// its subpackages.
//
// # Subpackages
//
//   - [andreani]: browser-automated, intercepts the tracking page's JSON call
//   - [viacargo]: browser-automated
//   - [oca]: hybrid, clicks the detail button to trigger the JSON call
//   - [correoargentino]: direct form POST and HTML table scraping
//   - [registry]: builds the dispatcher over all of the above
//
// # Shared Infrastructure
//
//   - [Client]: outbound HTTP with per-call timeout and user agent
//   - [Automation]: the browser capture state machine
//   - [Cached]: per-provider memoization backed by [cache.Store]
//   - [Classify]: the single translation from library errors to the
//     provider error taxonomy
//
// # Adding a Carrier
//
//  1. Create a subpackage: pkg/carriers/<carrier>/
//  2. Define the upstream payload with optional (pointer) fields
//  3. Write a pure normalize or Parse function and test it on fixtures
//  4. Implement tracking.Provider on top of [Client] or [Automation]
//  5. Register it in [registry]
//
// [andreani]: github.com/matzehuels/parceltrack/pkg/carriers/andreani
// [viacargo]: github.com/matzehuels/parceltrack/pkg/carriers/viacargo
// [oca]: github.com/matzehuels/parceltrack/pkg/carriers/oca
// [correoargentino]: github.com/matzehuels/parceltrack/pkg/carriers/correoargentino
// [registry]: github.com/matzehuels/parceltrack/pkg/carriers/registry
// [cache.Store]: github.com/matzehuels/parceltrack/pkg/cache.Store
package carriers
