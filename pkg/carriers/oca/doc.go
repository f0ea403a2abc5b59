// Package oca tracks OCA shipments.
//
// OCA is a hybrid: the search page loads first, then a "detail" button has
// to be clicked before the page requests the shipment history as JSON. The
// provider performs that click (selector configurable as detail_selector)
// and captures the response. Numbers are 12 to 19 digits.
//
// The endpoint answers with a single object or, for some searches, a one
// element array; both are accepted.
package oca
