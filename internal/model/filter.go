package model

import (
	"slices"
	"time"
)

// Hour bounds of the hourly dataset.
const (
	MinHour = 0
	MaxHour = 23
)

// FilterSpec is the conjunction of user selections applied before aggregation.
// It is rebuilt from the current controls on every render cycle.
type FilterSpec struct {
	Start   time.Time
	End     time.Time
	Seasons []Season
	Weather []Weather
	HourLo  int
	HourHi  int
}

// DefaultFilterSpec selects everything between start and end.
func DefaultFilterSpec(start, end time.Time) FilterSpec {
	return FilterSpec{
		Start:   NormalizeDate(start),
		End:     NormalizeDate(end),
		Seasons: AllSeasons(),
		Weather: AllWeather(),
		HourLo:  MinHour,
		HourHi:  MaxHour,
	}
}

// HasSeason reports whether s is selected.
func (f FilterSpec) HasSeason(s Season) bool {
	return slices.Contains(f.Seasons, s)
}

// HasWeather reports whether w is selected.
func (f FilterSpec) HasWeather(w Weather) bool {
	return slices.Contains(f.Weather, w)
}

// SeasonCodes returns the selected season codes in ascending order.
func (f FilterSpec) SeasonCodes() []int {
	codes := make([]int, 0, len(f.Seasons))
	for _, s := range f.Seasons {
		codes = append(codes, s.Code())
	}
	slices.Sort(codes)
	return slices.Compact(codes)
}

// WeatherCodes returns the selected weather codes in ascending order.
func (f FilterSpec) WeatherCodes() []int {
	codes := make([]int, 0, len(f.Weather))
	for _, w := range f.Weather {
		codes = append(codes, w.Code())
	}
	slices.Sort(codes)
	return slices.Compact(codes)
}

// InDateRange reports whether t falls inside [Start, End] by calendar day.
func (f FilterSpec) InDateRange(t time.Time) bool {
	day := NormalizeDate(t)
	return !day.Before(NormalizeDate(f.Start)) && !day.After(NormalizeDate(f.End))
}

// InHourRange reports whether hour falls inside [HourLo, HourHi].
func (f FilterSpec) InHourRange(hour int) bool {
	return hour >= f.HourLo && hour <= f.HourHi
}
