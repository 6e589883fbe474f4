package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/service"
)

// Dataset is the read-only pair of record sets loaded once per process.
type Dataset struct {
	start  time.Time
	end    time.Time
	daily  []model.DailyRecord
	hourly []model.HourlyRecord
}

// New builds a Dataset from already parsed records. The slices are copied.
func New(daily []model.DailyRecord, hourly []model.HourlyRecord) *Dataset {
	ds := &Dataset{
		daily:  slices.Clone(daily),
		hourly: slices.Clone(hourly),
	}
	for i, r := range ds.daily {
		if i == 0 || r.Date.Before(ds.start) {
			ds.start = r.Date
		}
		if i == 0 || r.Date.After(ds.end) {
			ds.end = r.Date
		}
	}
	return ds
}

// Load reads both record sets from source. Any failure is reported as
// common.ErrDataUnavailable, which callers treat as fatal.
func Load(ctx context.Context, source service.DatasetSource) (*Dataset, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no dataset source configured", common.ErrDataUnavailable)
	}

	daily, err := source.LoadDaily(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: daily records: %w", common.ErrDataUnavailable, err)
	}
	hourly, err := source.LoadHourly(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: hourly records: %w", common.ErrDataUnavailable, err)
	}
	if len(daily) == 0 {
		return nil, fmt.Errorf("%w: daily dataset is empty", common.ErrDataUnavailable)
	}

	ds := New(daily, hourly)
	slog.Info("Dataset loaded",
		"daily_rows", len(ds.daily),
		"hourly_rows", len(ds.hourly),
		"start", ds.start.Format(model.DateLayout),
		"end", ds.end.Format(model.DateLayout))

	return ds, nil
}

// Daily returns a copy of the daily records.
func (d *Dataset) Daily() []model.DailyRecord {
	return slices.Clone(d.daily)
}

// Hourly returns a copy of the hourly records.
func (d *Dataset) Hourly() []model.HourlyRecord {
	return slices.Clone(d.hourly)
}

// Bounds returns the first and last date of the daily records.
func (d *Dataset) Bounds() (time.Time, time.Time) {
	return d.start, d.end
}

// DefaultFilter selects the whole dataset.
func (d *Dataset) DefaultFilter() model.FilterSpec {
	return model.DefaultFilterSpec(d.start, d.end)
}

// Len returns the number of daily and hourly records.
func (d *Dataset) Len() (daily, hourly int) {
	return len(d.daily), len(d.hourly)
}
