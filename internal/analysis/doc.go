// Package analysis implements the filtering and aggregation pipeline behind the
// dashboard: records are filtered by a model.FilterSpec, grouped by season, hour
// or weather, averaged, and then reduced to extrema and High/Medium/Low bands.
//
// Every function here is pure. Engine.Run recomputes a complete Dashboard from
// the immutable dataset on each call, so the caller can rerun it whenever a
// filter control changes.
package analysis
