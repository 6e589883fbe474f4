package analysis

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/pedalstats/internal/model"
)

// Dashboard is the complete output of one pipeline cycle.
type Dashboard struct {
	Spec     model.FilterSpec
	Season   SeasonPanel
	Hour     HourPanel
	Weather  WeatherPanel
	Insights []string
	Summary  Summary
}

// SeasonPanel holds mean daily rentals per selected season.
type SeasonPanel struct {
	Err    *PanelError
	Groups []model.GroupMean
}

// HourPanel holds mean rentals per hour and the peak/lowest hour.
type HourPanel struct {
	Err     *PanelError
	Groups  []model.GroupMean
	Extrema Extrema
}

// WeatherPanel holds mean rentals per weather condition with their bands.
type WeatherPanel struct {
	Err    *PanelError
	Groups []model.GroupMean
	Rows   []WeatherRow
}

// WeatherRow is one line of the weather categorization table.
type WeatherRow struct {
	Weather  model.Weather
	Mean     float64
	Category model.Category
}

// Engine runs the filter and aggregation pipeline against a fixed dataset.
type Engine struct {
	data       Data
	logger     *slog.Logger
	thresholds Thresholds
}

// NewEngine creates a pipeline engine.
func NewEngine(deps Deps) (*Engine, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{
		data:       deps.Data,
		thresholds: deps.Thresholds,
		logger:     logger,
	}, nil
}

// Thresholds returns the categorization bands in use.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

// Run executes one full cycle for spec. Panel failures are recorded on the
// panel and never abort the other panels.
func (e *Engine) Run(spec model.FilterSpec) Dashboard {
	started := time.Now()

	daily := FilterDaily(e.data.Daily(), spec)
	hourly := FilterHourly(e.data.Hourly(), spec)
	selectionErr := ValidateSelection(spec)

	d := Dashboard{
		Spec:    spec,
		Summary: Summarize(daily),
	}

	d.Season.Err = e.guard(PanelSeason, func() error {
		if selectionErr != nil {
			return selectionErr
		}
		groups := Reindex(MeanBySeason(daily), spec.SeasonCodes())
		if len(groups) == 0 {
			return ErrNoData
		}
		d.Season.Groups = groups
		return nil
	})

	d.Hour.Err = e.guard(PanelHour, func() error {
		if selectionErr != nil {
			return selectionErr
		}
		groups := MeanByHour(hourly)
		if len(groups) == 0 {
			return ErrNoData
		}
		ext, err := FindExtrema(groups)
		if err != nil {
			return err
		}
		d.Hour.Groups = groups
		d.Hour.Extrema = ext
		return nil
	})

	d.Weather.Err = e.guard(PanelWeather, func() error {
		if selectionErr != nil {
			return selectionErr
		}
		groups := Reindex(MeanByWeather(hourly), spec.WeatherCodes())
		if len(groups) == 0 {
			return ErrNoData
		}
		rows := make([]WeatherRow, 0, len(groups))
		for _, g := range groups {
			rows = append(rows, WeatherRow{
				Weather:  model.Weather(g.Key),
				Mean:     g.Mean,
				Category: e.thresholds.Categorize(g.Mean),
			})
		}
		d.Weather.Groups = groups
		d.Weather.Rows = rows
		return nil
	})

	d.Insights = Insights(d)

	e.logger.Debug("pipeline cycle complete",
		"daily_rows", len(daily),
		"hourly_rows", len(hourly),
		"season_err", errString(d.Season.Err),
		"hour_err", errString(d.Hour.Err),
		"weather_err", errString(d.Weather.Err),
		"duration", time.Since(started))

	return d
}

// guard runs one panel computation and converts errors and panics into a
// PanelError scoped to that panel.
func (e *Engine) guard(panel Panel, compute func() error) (perr *PanelError) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("panel computation panicked", "panel", panel, "panic", r)
			perr = &PanelError{
				Panel: panel,
				Kind:  KindComputation,
				Err:   fmt.Errorf("%w: %v", ErrComputation, r),
			}
		}
	}()

	if err := compute(); err != nil {
		return newPanelError(panel, err)
	}
	return nil
}

func errString(err *PanelError) string {
	if err == nil {
		return ""
	}
	return err.Kind.String()
}
