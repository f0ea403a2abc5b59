// Package correoargentino tracks Correo Argentino items by posting the
// public search form and scraping the results table.
//
// Numbers follow the UPU S10 layout: two-letter product prefix, nine
// digits, two-letter country suffix (e.g. "CP123456789AR"). Items from
// countries outside the configured list are reported as NOT_FOUND without
// contacting the carrier.
//
// [Parse] is a pure function of the returned markup.
package correoargentino
