package viewmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pedalstats/internal/analysis"
	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/testutil"
)

func TestFormatInt(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{3292679, "3,292,679"},
		{-12345, "-12,345"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatInt(tt.in))
	}
}

func TestFormatMean(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{189.46, "189.5"},
		{4504.3488, "4,504.3"},
		{1234567.04, "1,234,567.0"},
		{-1500.25, "-1,500.3"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMean(tt.in))
	}
}

func TestHourLabel(t *testing.T) {
	assert.Equal(t, "00:00", HourLabel(0))
	assert.Equal(t, "17:00", HourLabel(17))
}

func sampleDashboard() analysis.Dashboard {
	return analysis.Dashboard{
		Spec:    model.DefaultFilterSpec(testutil.Date("2011-01-01"), testutil.Date("2012-12-31")),
		Summary: analysis.Summary{Days: 731, TotalRentals: 3292679, MeanPerDay: 4504.3488},
		Season: analysis.SeasonPanel{Groups: []model.GroupMean{
			{Key: 1, Mean: 2604.13},
			{Key: 3, Mean: 5644.30},
		}},
		Hour: analysis.HourPanel{
			Groups:  []model.GroupMean{{Key: 4, Mean: 6.32}, {Key: 17, Mean: 461.47}},
			Extrema: analysis.Extrema{MaxKey: 17, MaxValue: 461.47, MinKey: 4, MinValue: 6.32},
		},
		Weather: analysis.WeatherPanel{
			Groups: []model.GroupMean{{Key: 1, Mean: 204.87}, {Key: 3, Mean: 111.58}},
			Rows: []analysis.WeatherRow{
				{Weather: model.WeatherClear, Mean: 204.87, Category: model.CategoryHigh},
				{Weather: model.WeatherLightRain, Mean: 111.58, Category: model.CategoryLow},
			},
		},
		Insights: []string{"insight"},
	}
}

func TestBuild(t *testing.T) {
	v := Build(sampleDashboard())

	assert.Equal(t, "2011-01-01 to 2012-12-31", v.Period)
	assert.Equal(t, []Metric{
		{Label: "Days", Value: "731"},
		{Label: "Total rentals", Value: "3,292,679"},
		{Label: "Mean per day", Value: "4,504.3"},
	}, v.Metrics)

	require.Len(t, v.Seasons.Bars, 2)
	assert.Equal(t, "Spring", v.Seasons.Bars[0].Label)
	assert.Equal(t, 2604.1, v.Seasons.Bars[0].Value)
	assert.Equal(t, "5,644.3", v.Seasons.Bars[1].Display)
	assert.InDelta(t, 1.0, v.Seasons.Bars[1].Fraction, 1e-9)
	assert.Equal(t, ToneNormal, v.Seasons.Bars[0].Tone)

	assert.Equal(t, "17:00 (461.5)", v.Hours.Peak)
	assert.Equal(t, "04:00 (6.3)", v.Hours.Lowest)
	assert.Equal(t, 17, v.Hours.PeakHour)
	assert.Equal(t, 461.5, v.Hours.PeakMean)
	assert.Equal(t, 4, v.Hours.LowestHour)
	assert.Equal(t, 6.3, v.Hours.LowestMean)
	assert.Equal(t, "04:00", v.Hours.Bars[0].Label)

	require.Len(t, v.Weather.Bars, 2)
	assert.Equal(t, ToneDark, v.Weather.Bars[0].Tone)
	assert.Equal(t, ToneLight, v.Weather.Bars[1].Tone)
	assert.Equal(t, []WeatherRowView{
		{Condition: "Clear", Mean: "204.9", Category: "High", Value: 204.9},
		{Condition: "Light Rain", Mean: "111.6", Category: "Low", Value: 111.6},
	}, v.Weather.Rows)

	assert.Equal(t, []string{"insight"}, v.Insights)
}

func TestBuild_PanelWarnings(t *testing.T) {
	d := sampleDashboard()
	d.Season = analysis.SeasonPanel{Err: &analysis.PanelError{
		Panel: analysis.PanelSeason, Kind: analysis.KindEmptySelection, Err: analysis.ErrEmptySelection,
	}}
	d.Hour = analysis.HourPanel{Err: &analysis.PanelError{
		Panel: analysis.PanelHour, Kind: analysis.KindNoData, Err: analysis.ErrNoData,
	}}
	d.Weather = analysis.WeatherPanel{Err: &analysis.PanelError{
		Panel: analysis.PanelWeather, Kind: analysis.KindComputation, Err: analysis.ErrComputation,
	}}
	d.Insights = nil

	v := Build(d)

	assert.True(t, v.Seasons.HasWarning())
	assert.Contains(t, v.Seasons.Warning, "Select at least one")
	assert.Empty(t, v.Seasons.Bars)
	assert.Contains(t, v.Hours.Warning, "Try different filters")
	assert.Empty(t, v.Hours.Peak)
	assert.Contains(t, v.Weather.Warning, "could not be computed")
	assert.Empty(t, v.Weather.Rows)
	assert.NotNil(t, v.Insights)
}

func TestBars_ToneTiesAreAllDark(t *testing.T) {
	got := bars([]model.GroupMean{{Key: 1, Mean: 5}, {Key: 2, Mean: 5}, {Key: 3, Mean: 1}}, HourLabel, true)
	assert.Equal(t, []Tone{ToneDark, ToneDark, ToneLight}, []Tone{got[0].Tone, got[1].Tone, got[2].Tone})
}
