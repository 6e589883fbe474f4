// Package dataset loads the hourly and daily bike-sharing record sets into an
// immutable Dataset. Records can come from the original CSV files, the SQLite
// cache built by `pedal import`, or a Google spreadsheet; the row parsing
// helpers here are shared by every tabular source.
package dataset
