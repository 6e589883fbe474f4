// Package testutil provides synthetic bike-sharing datasets and storage
// fixtures for tests.
//
// Example usage:
//
//	ds := testutil.NewDatasetBuilder().
//		WithDay("2011-01-01", model.SeasonSpring, model.WeatherClear, 985).
//		WithHours("2011-01-01", model.SeasonSpring, model.WeatherClear, 16, 40, 32).
//		Build()
//
//	store := testutil.SetupTestDB(t, ds)
package testutil
