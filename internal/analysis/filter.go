package analysis

import (
	"fmt"
	"time"

	"github.com/Veraticus/pedalstats/internal/model"
)

// ValidateSelection reports ErrEmptySelection when the season or weather set is
// empty. Filtering still works in that case and simply matches nothing.
func ValidateSelection(spec model.FilterSpec) error {
	if len(spec.Seasons) == 0 {
		return fmt.Errorf("%w: season", ErrEmptySelection)
	}
	if len(spec.Weather) == 0 {
		return fmt.Errorf("%w: weather condition", ErrEmptySelection)
	}
	return nil
}

// FilterDaily returns the daily records matching the date range, season set and
// weather set. The hour range does not apply to daily records.
func FilterDaily(records []model.DailyRecord, spec model.FilterSpec) []model.DailyRecord {
	m := newMatcher(spec)
	out := make([]model.DailyRecord, 0, len(records))
	for _, r := range records {
		if m.matches(r.Date, r.Season, r.Weather) {
			out = append(out, r)
		}
	}
	return out
}

// FilterHourly returns the hourly records matching every predicate of spec,
// including the inclusive hour range.
func FilterHourly(records []model.HourlyRecord, spec model.FilterSpec) []model.HourlyRecord {
	m := newMatcher(spec)
	out := make([]model.HourlyRecord, 0, len(records))
	for _, r := range records {
		if !spec.InHourRange(r.Hour) {
			continue
		}
		if m.matches(r.Date, r.Season, r.Weather) {
			out = append(out, r)
		}
	}
	return out
}

type matcher struct {
	spec    model.FilterSpec
	seasons map[model.Season]bool
	weather map[model.Weather]bool
}

func newMatcher(spec model.FilterSpec) matcher {
	m := matcher{
		spec:    spec,
		seasons: make(map[model.Season]bool, len(spec.Seasons)),
		weather: make(map[model.Weather]bool, len(spec.Weather)),
	}
	for _, s := range spec.Seasons {
		m.seasons[s] = true
	}
	for _, w := range spec.Weather {
		m.weather[w] = true
	}
	return m
}

func (m matcher) matches(date time.Time, season model.Season, weather model.Weather) bool {
	return m.spec.InDateRange(date) && m.seasons[season] && m.weather[weather]
}
