package analysis

import (
	"fmt"
	"log/slog"

	"github.com/Veraticus/pedalstats/internal/model"
)

// Data gives read-only access to the loaded record sets.
type Data interface {
	Daily() []model.DailyRecord
	Hourly() []model.HourlyRecord
}

// Deps contains everything the pipeline engine needs.
type Deps struct {
	// Data is the immutable dataset the pipeline reads from.
	Data Data
	// Logger receives per-cycle debug output. Defaults to slog.Default().
	Logger *slog.Logger
	// Thresholds drive the weather categorization.
	Thresholds Thresholds
}

// Validate ensures all required dependencies are provided.
func (d *Deps) Validate() error {
	if d.Data == nil {
		return fmt.Errorf("data dependency is required")
	}
	if err := d.Thresholds.Validate(); err != nil {
		return fmt.Errorf("invalid thresholds: %w", err)
	}
	return nil
}
