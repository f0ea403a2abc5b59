// Package viacargo tracks Via Cargo shipments through the JSON call made by
// the public tracking page.
package viacargo
