package analysis

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/testutil"
)

func newTestEngine(t *testing.T, ds *dataset.Dataset) *Engine {
	t.Helper()
	e, err := NewEngine(Deps{
		Data:       ds,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Thresholds: DefaultThresholds(),
	})
	require.NoError(t, err)
	return e
}

func engineFixture() *dataset.Dataset {
	return testutil.NewDatasetBuilder().
		WithDay("2011-01-01", model.SeasonSpring, model.WeatherClear, 1000).
		WithDay("2011-01-02", model.SeasonSpring, model.WeatherCloudy, 2000).
		WithDay("2011-07-01", model.SeasonSummer, model.WeatherClear, 6000).
		WithDay("2011-10-01", model.SeasonFall, model.WeatherLightRain, 3000).
		WithHour("2011-01-01", 8, model.SeasonSpring, model.WeatherClear, 200).
		WithHour("2011-01-01", 17, model.SeasonSpring, model.WeatherClear, 400).
		WithHour("2011-01-02", 8, model.SeasonSpring, model.WeatherCloudy, 150).
		WithHour("2011-07-01", 17, model.SeasonSummer, model.WeatherClear, 500).
		WithHour("2011-10-01", 3, model.SeasonFall, model.WeatherLightRain, 10).
		Build()
}

func fullSpec(ds *dataset.Dataset) model.FilterSpec {
	return ds.DefaultFilter()
}

func TestNewEngine_Validation(t *testing.T) {
	_, err := NewEngine(Deps{Thresholds: DefaultThresholds()})
	assert.Error(t, err)

	_, err = NewEngine(Deps{Data: engineFixture(), Thresholds: Thresholds{High: 1, Medium: 2}})
	assert.Error(t, err)
}

func TestEngine_Run_Unfiltered(t *testing.T) {
	ds := engineFixture()
	e := newTestEngine(t, ds)

	d := e.Run(fullSpec(ds))

	total := 0
	for _, r := range ds.Daily() {
		total += r.Count
	}
	assert.Equal(t, total, d.Summary.TotalRentals)
	assert.Equal(t, 4, d.Summary.Days)
	assert.InDelta(t, 3000.0, d.Summary.MeanPerDay, 1e-9)

	require.Nil(t, d.Season.Err)
	assert.Equal(t, []int{1, 2, 3}, Keys(d.Season.Groups))
	assert.InDelta(t, 1500.0, d.Season.Groups[0].Mean, 1e-9)

	require.Nil(t, d.Hour.Err)
	assert.Equal(t, []int{3, 8, 17}, Keys(d.Hour.Groups))
	assert.Equal(t, 17, d.Hour.Extrema.MaxKey)
	assert.Equal(t, 3, d.Hour.Extrema.MinKey)

	require.Nil(t, d.Weather.Err)
	require.Len(t, d.Weather.Rows, 3)
	assert.Equal(t, model.WeatherClear, d.Weather.Rows[0].Weather)
	assert.InDelta(t, 1100.0/3, d.Weather.Rows[0].Mean, 1e-9)
	assert.Equal(t, model.CategoryHigh, d.Weather.Rows[0].Category)
	assert.Equal(t, model.CategoryMedium, d.Weather.Rows[1].Category)
	assert.Equal(t, model.CategoryLow, d.Weather.Rows[2].Category)

	assert.Len(t, d.Insights, 3)
}

func TestEngine_Run_Idempotent(t *testing.T) {
	ds := engineFixture()
	e := newTestEngine(t, ds)
	spec := fullSpec(ds)
	spec.Seasons = []model.Season{model.SeasonSpring, model.SeasonFall}

	assert.Equal(t, e.Run(spec), e.Run(spec))
}

func TestEngine_Run_EmptySeasonSelection(t *testing.T) {
	ds := engineFixture()
	e := newTestEngine(t, ds)
	spec := fullSpec(ds)
	spec.Seasons = nil

	d := e.Run(spec)

	assert.Zero(t, d.Summary.Days)
	for _, perr := range []*PanelError{d.Season.Err, d.Hour.Err, d.Weather.Err} {
		require.NotNil(t, perr)
		assert.Equal(t, KindEmptySelection, perr.Kind)
		assert.ErrorIs(t, perr, ErrEmptySelection)
	}
	assert.Empty(t, d.Season.Groups)
	assert.Empty(t, d.Insights)
}

func TestEngine_Run_NoDataIsScopedPerPanel(t *testing.T) {
	ds := engineFixture()
	e := newTestEngine(t, ds)
	spec := fullSpec(ds)
	spec.Weather = []model.Weather{model.WeatherHeavyRain}

	d := e.Run(spec)

	for _, perr := range []*PanelError{d.Season.Err, d.Hour.Err, d.Weather.Err} {
		require.NotNil(t, perr)
		assert.Equal(t, KindNoData, perr.Kind)
	}
}

func TestEngine_Run_HourRangeOnlyAffectsHourlyPanels(t *testing.T) {
	ds := engineFixture()
	e := newTestEngine(t, ds)
	spec := fullSpec(ds)
	spec.HourLo, spec.HourHi = 9, 9

	d := e.Run(spec)

	assert.Nil(t, d.Season.Err)
	require.NotNil(t, d.Hour.Err)
	assert.Equal(t, KindNoData, d.Hour.Err.Kind)
	require.NotNil(t, d.Weather.Err)
	assert.Equal(t, 4, d.Summary.Days)
}

func TestEngine_Run_ReindexesToSelectedSeasons(t *testing.T) {
	ds := engineFixture()
	e := newTestEngine(t, ds)
	spec := fullSpec(ds)
	spec.Seasons = []model.Season{model.SeasonWinter, model.SeasonSummer}

	d := e.Run(spec)

	require.Nil(t, d.Season.Err)
	assert.Equal(t, []int{model.SeasonSummer.Code()}, Keys(d.Season.Groups))
}

func TestEngine_Guard_RecoversPanic(t *testing.T) {
	e := newTestEngine(t, engineFixture())

	perr := e.guard(PanelHour, func() error {
		var groups []model.GroupMean
		_ = groups[3]
		return nil
	})

	require.NotNil(t, perr)
	assert.Equal(t, KindComputation, perr.Kind)
	assert.Equal(t, PanelHour, perr.Panel)
	assert.ErrorIs(t, perr, ErrComputation)
}

func TestEngine_Guard_UnknownErrorIsComputation(t *testing.T) {
	e := newTestEngine(t, engineFixture())

	perr := e.guard(PanelSeason, func() error { return errors.New("boom") })

	require.NotNil(t, perr)
	assert.Equal(t, KindComputation, perr.Kind)

	var target *PanelError
	assert.True(t, errors.As(error(perr), &target))
	assert.Equal(t, "season panel: boom", perr.Error())
}
