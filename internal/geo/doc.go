// Package geo holds the location logic of the marketplace: great-circle
// distance, coordinate quantization for the geocode cache, location
// filters, campaign eligibility and sponsored ranking.
//
// Everything here is pure and operates on values the caller has already
// loaded; nothing in this package performs I/O.
package geo
