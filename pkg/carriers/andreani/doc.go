// Package andreani tracks Andreani shipments.
//
// Andreani's tracking page is a single-page app that loads the shipment
// from its own JSON API. The provider opens the page in a browser, captures
// that response and normalizes it. Numbers are 10 to 20 digits.
package andreani
