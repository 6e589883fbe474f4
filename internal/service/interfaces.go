// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/pedalstats/internal/model"
)

// DatasetSource delivers the two raw record sets. Implementations read from
// CSV files, the SQLite cache or a Google spreadsheet.
type DatasetSource interface {
	LoadDaily(ctx context.Context) ([]model.DailyRecord, error)
	LoadHourly(ctx context.Context) ([]model.HourlyRecord, error)
}

// DatasetStore persists imported records so later runs can load them without
// re-reading the CSV files.
type DatasetStore interface {
	DatasetSource
	ReplaceRecords(ctx context.Context, daily []model.DailyRecord, hourly []model.HourlyRecord, progress func(n int)) error
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
