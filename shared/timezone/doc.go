// Package timezone pins every wall-clock computation to the rental shop's
// zone (APP_TIMEZONE, Europe/Warsaw by default).
//
// Rental periods are calendar days in that zone: DateOf and Today truncate to
// local midnight, Parse reads dates and clock times as local values. Only IANA
// zone names are accepted. An unknown name falls back to UTC with an error in
// the log, since the binaries embed time/tzdata.
package timezone
