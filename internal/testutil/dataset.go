package testutil

import (
	"time"

	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/model"
)

// DatasetBuilder assembles daily and hourly records with a fluent API.
type DatasetBuilder struct {
	daily  []model.DailyRecord
	hourly []model.HourlyRecord
}

// NewDatasetBuilder returns an empty builder.
func NewDatasetBuilder() *DatasetBuilder {
	return &DatasetBuilder{}
}

// Date parses a YYYY-MM-DD string and panics on malformed input.
func Date(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

// WithDay adds one daily record.
func (b *DatasetBuilder) WithDay(date string, season model.Season, weather model.Weather, count int) *DatasetBuilder {
	b.daily = append(b.daily, model.DailyRecord{
		Date:    Date(date),
		Season:  season,
		Weather: weather,
		Count:   count,
	})
	return b
}

// WithHour adds one hourly record.
func (b *DatasetBuilder) WithHour(date string, hour int, season model.Season, weather model.Weather, count int) *DatasetBuilder {
	b.hourly = append(b.hourly, model.HourlyRecord{
		Date:    Date(date),
		Hour:    hour,
		Season:  season,
		Weather: weather,
		Count:   count,
	})
	return b
}

// WithHours adds consecutive hourly records starting at hour 0.
func (b *DatasetBuilder) WithHours(date string, season model.Season, weather model.Weather, counts ...int) *DatasetBuilder {
	for hour, count := range counts {
		b.WithHour(date, hour, season, weather, count)
	}
	return b
}

// WithSyntheticDays adds n consecutive days starting at start, each with 24
// hourly rows. Seasons follow the calendar, weather cycles through all four
// codes and hourly counts peak at 17:00, so every aggregate is populated.
func (b *DatasetBuilder) WithSyntheticDays(start string, n int) *DatasetBuilder {
	first := Date(start)
	for i := range n {
		date := first.AddDate(0, 0, i)
		season := seasonOf(date)
		weather := model.Weather(i%4 + 1)

		total := 0
		for hour := model.MinHour; hour <= model.MaxHour; hour++ {
			count := hourlyCount(hour, weather)
			total += count
			b.hourly = append(b.hourly, model.HourlyRecord{
				Date:    date,
				Hour:    hour,
				Season:  season,
				Weather: weather,
				Count:   count,
			})
		}
		b.daily = append(b.daily, model.DailyRecord{
			Date:    date,
			Season:  season,
			Weather: weather,
			Count:   total,
		})
	}
	return b
}

// Daily returns the accumulated daily records.
func (b *DatasetBuilder) Daily() []model.DailyRecord {
	return b.daily
}

// Hourly returns the accumulated hourly records.
func (b *DatasetBuilder) Hourly() []model.HourlyRecord {
	return b.hourly
}

// Build returns an immutable dataset of the accumulated records.
func (b *DatasetBuilder) Build() *dataset.Dataset {
	return dataset.New(b.daily, b.hourly)
}

func seasonOf(t time.Time) model.Season {
	switch t.Month() {
	case time.March, time.April, time.May:
		return model.SeasonSpring
	case time.June, time.July, time.August:
		return model.SeasonSummer
	case time.September, time.October, time.November:
		return model.SeasonFall
	default:
		return model.SeasonWinter
	}
}

func hourlyCount(hour int, weather model.Weather) int {
	distance := hour - 17
	if distance < 0 {
		distance = -distance
	}
	base := 400 - distance*20
	if hour < 5 {
		base = 5 + hour
	}
	return base / weather.Code()
}
