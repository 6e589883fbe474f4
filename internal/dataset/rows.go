package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/model"
)

// Column names of the bike-sharing CSV files.
const (
	ColumnDate    = "dteday"
	ColumnSeason  = "season"
	ColumnHour    = "hr"
	ColumnWeather = "weathersit"
	ColumnCount   = "cnt"
)

// columnIndex maps required column names to their position in a header row.
type columnIndex map[string]int

func indexColumns(header []string, required ...string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: %s", common.ErrMissingColumn, name)
		}
	}
	return idx, nil
}

func (c columnIndex) value(row []string, name string) (string, error) {
	i := c[name]
	if i >= len(row) {
		return "", fmt.Errorf("%w: column %s missing", common.ErrMalformedRow, name)
	}
	return strings.TrimSpace(row[i]), nil
}

// ParseDailyRows converts a header and data rows into daily records.
// Auxiliary columns are ignored.
func ParseDailyRows(header []string, rows [][]string) ([]model.DailyRecord, error) {
	idx, err := indexColumns(header, ColumnDate, ColumnSeason, ColumnWeather, ColumnCount)
	if err != nil {
		return nil, err
	}

	records := make([]model.DailyRecord, 0, len(rows))
	for i, row := range rows {
		r, err := parseDaily(idx, row)
		if err != nil {
			return nil, fmt.Errorf("daily row %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return records, nil
}

// ParseHourlyRows converts a header and data rows into hourly records.
func ParseHourlyRows(header []string, rows [][]string) ([]model.HourlyRecord, error) {
	idx, err := indexColumns(header, ColumnDate, ColumnSeason, ColumnHour, ColumnWeather, ColumnCount)
	if err != nil {
		return nil, err
	}

	records := make([]model.HourlyRecord, 0, len(rows))
	for i, row := range rows {
		r, err := parseHourly(idx, row)
		if err != nil {
			return nil, fmt.Errorf("hourly row %d: %w", i+1, err)
		}
		records = append(records, r)
	}
	return records, nil
}

func parseDaily(idx columnIndex, row []string) (model.DailyRecord, error) {
	f, err := parseShared(idx, row)
	if err != nil {
		return model.DailyRecord{}, err
	}
	return model.DailyRecord{Date: f.date, Season: f.season, Weather: f.weather, Count: f.count}, nil
}

func parseHourly(idx columnIndex, row []string) (model.HourlyRecord, error) {
	f, err := parseShared(idx, row)
	if err != nil {
		return model.HourlyRecord{}, err
	}

	raw, err := idx.value(row, ColumnHour)
	if err != nil {
		return model.HourlyRecord{}, err
	}
	hour, err := strconv.Atoi(raw)
	if err != nil || hour < model.MinHour || hour > model.MaxHour {
		return model.HourlyRecord{}, fmt.Errorf("%w: hour %q", common.ErrMalformedRow, raw)
	}

	return model.HourlyRecord{Date: f.date, Hour: hour, Season: f.season, Weather: f.weather, Count: f.count}, nil
}

// sharedFields are the columns present in both files.
type sharedFields struct {
	date    time.Time
	season  model.Season
	weather model.Weather
	count   int
}

func parseShared(idx columnIndex, row []string) (sharedFields, error) {
	var f sharedFields

	raw, err := idx.value(row, ColumnDate)
	if err != nil {
		return f, err
	}
	date, err := time.Parse(model.DateLayout, raw)
	if err != nil {
		return f, fmt.Errorf("%w: date %q", common.ErrMalformedRow, raw)
	}
	f.date = model.NormalizeDate(date)

	if raw, err = idx.value(row, ColumnSeason); err != nil {
		return f, err
	}
	if f.season, err = model.ParseSeason(raw); err != nil {
		return f, fmt.Errorf("%w: %w", common.ErrMalformedRow, err)
	}

	if raw, err = idx.value(row, ColumnWeather); err != nil {
		return f, err
	}
	if f.weather, err = model.ParseWeather(raw); err != nil {
		return f, fmt.Errorf("%w: %w", common.ErrMalformedRow, err)
	}

	if raw, err = idx.value(row, ColumnCount); err != nil {
		return f, err
	}
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		return f, fmt.Errorf("%w: count %q", common.ErrMalformedRow, raw)
	}
	f.count = count

	return f, nil
}
