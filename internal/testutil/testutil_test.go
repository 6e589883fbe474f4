package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/model"
)

func TestWithSyntheticDays(t *testing.T) {
	b := NewDatasetBuilder().WithSyntheticDays("2011-01-01", 8)

	require.Len(t, b.Daily(), 8)
	require.Len(t, b.Hourly(), 8*24)

	for _, d := range b.Daily() {
		sum := 0
		for _, h := range b.Hourly() {
			if h.Date.Equal(d.Date) {
				sum += h.Count
			}
		}
		assert.Equal(t, d.Count, sum, "daily count equals hourly sum for %s", d.Date)
		assert.Equal(t, model.SeasonWinter, d.Season)
	}
}

func TestSetupTestDB_SeedsStore(t *testing.T) {
	ds := NewDatasetBuilder().
		WithDay("2011-06-01", model.SeasonSummer, model.WeatherClear, 4000).
		WithHours("2011-06-01", model.SeasonSummer, model.WeatherClear, 10, 20).
		Build()

	store := SetupTestDB(t, ds)

	loaded, err := dataset.Load(context.Background(), store)
	require.NoError(t, err)
	daily, hourly := loaded.Len()
	assert.Equal(t, 1, daily)
	assert.Equal(t, 2, hourly)
}
