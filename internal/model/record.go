package model

import (
	"errors"
	"time"
)

// ErrUnknownCode is returned when a season or weather value is outside its enumeration.
var ErrUnknownCode = errors.New("unknown code")

// DateLayout is the on-disk date format of the dataset.
const DateLayout = "2006-01-02"

// DailyRecord is one calendar day of rentals.
type DailyRecord struct {
	Date    time.Time
	Season  Season
	Weather Weather
	Count   int
}

// HourlyRecord is one hour of rentals on a given date.
type HourlyRecord struct {
	Date    time.Time
	Hour    int
	Season  Season
	Weather Weather
	Count   int
}

// NormalizeDate truncates t to midnight UTC so dates compare by calendar day.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
