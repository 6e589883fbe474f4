package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/testutil"
)

func TestMeanBy(t *testing.T) {
	type row struct {
		k int
		v float64
	}
	rows := []row{{3, 10}, {1, 4}, {3, 20}, {1, 6}, {2, 7}}

	got := MeanBy(rows,
		func(r row) int { return r.k },
		func(r row) float64 { return r.v })

	assert.Equal(t, []model.GroupMean{
		{Key: 1, Mean: 5, Count: 2},
		{Key: 2, Mean: 7, Count: 1},
		{Key: 3, Mean: 15, Count: 2},
	}, got)
}

func TestMeanBy_EmptyInput(t *testing.T) {
	got := MeanBy([]model.DailyRecord{},
		func(r model.DailyRecord) int { return r.Season.Code() },
		func(r model.DailyRecord) float64 { return float64(r.Count) })
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestMeanBySeason_KeysAreDistinctSeasons(t *testing.T) {
	b := testutil.NewDatasetBuilder().
		WithDay("2011-01-01", model.SeasonSpring, model.WeatherClear, 100).
		WithDay("2011-01-02", model.SeasonSpring, model.WeatherClear, 300).
		WithDay("2011-07-01", model.SeasonFall, model.WeatherCloudy, 500)

	got := MeanBySeason(b.Daily())

	assert.Equal(t, []int{model.SeasonSpring.Code(), model.SeasonFall.Code()}, Keys(got))
	assert.InDelta(t, 200.0, got[0].Mean, 1e-9)
	assert.Equal(t, 2, got[0].Count)
}

func TestMeanByHourAndWeather(t *testing.T) {
	b := testutil.NewDatasetBuilder().
		WithHours("2011-01-01", model.SeasonSpring, model.WeatherClear, 10, 20).
		WithHours("2011-01-02", model.SeasonSpring, model.WeatherLightRain, 30, 40)

	byHour := MeanByHour(b.Hourly())
	require.Len(t, byHour, 2)
	assert.InDelta(t, 20.0, byHour[0].Mean, 1e-9)
	assert.InDelta(t, 30.0, byHour[1].Mean, 1e-9)

	byWeather := MeanByWeather(b.Hourly())
	assert.Equal(t, []int{1, 3}, Keys(byWeather))
	assert.InDelta(t, 15.0, byWeather[0].Mean, 1e-9)
	assert.InDelta(t, 35.0, byWeather[1].Mean, 1e-9)
}

func TestReindex(t *testing.T) {
	groups := []model.GroupMean{{Key: 1, Mean: 1}, {Key: 2, Mean: 2}, {Key: 4, Mean: 4}}

	tests := []struct {
		name  string
		valid []int
		want  []int
	}{
		{"subset", []int{1, 4}, []int{1, 4}},
		{"absent keys dropped", []int{2, 3}, []int{2}},
		{"empty subset", nil, []int{}},
		{"all", []int{1, 2, 3, 4}, []int{1, 2, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Keys(Reindex(groups, tt.valid)))
		})
	}
}
