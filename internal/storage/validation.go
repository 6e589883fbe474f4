package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/pedalstats/internal/model"
)

// Validation errors.
var (
	ErrNilContext    = errors.New("context cannot be nil")
	ErrEmptyString   = errors.New("string parameter cannot be empty")
	ErrInvalidRecord = errors.New("invalid record")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateDaily(r model.DailyRecord) error {
	switch {
	case r.Date.IsZero():
		return fmt.Errorf("%w: missing date", ErrInvalidRecord)
	case !r.Season.Valid():
		return fmt.Errorf("%w: season %d", ErrInvalidRecord, r.Season)
	case !r.Weather.Valid():
		return fmt.Errorf("%w: weather %d", ErrInvalidRecord, r.Weather)
	case r.Count < 0:
		return fmt.Errorf("%w: negative count", ErrInvalidRecord)
	}
	return nil
}

func validateHourly(r model.HourlyRecord) error {
	if r.Hour < model.MinHour || r.Hour > model.MaxHour {
		return fmt.Errorf("%w: hour %d", ErrInvalidRecord, r.Hour)
	}
	return validateDaily(model.DailyRecord{Date: r.Date, Season: r.Season, Weather: r.Weather, Count: r.Count})
}
