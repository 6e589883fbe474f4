package analysis

import (
	"fmt"

	"github.com/Veraticus/pedalstats/internal/model"
)

// Default category boundaries for mean hourly rentals.
const (
	DefaultHighThreshold   = 180.0
	DefaultMediumThreshold = 120.0
)

// Thresholds are the band boundaries used by Categorize. Values above High are
// High, values above Medium up to and including High are Medium, the rest Low.
type Thresholds struct {
	High   float64
	Medium float64
}

// DefaultThresholds returns the boundaries tuned for the bike-sharing dataset.
func DefaultThresholds() Thresholds {
	return Thresholds{High: DefaultHighThreshold, Medium: DefaultMediumThreshold}
}

// Validate ensures the bands are ordered.
func (t Thresholds) Validate() error {
	if t.High <= t.Medium {
		return fmt.Errorf("high threshold %.2f must be greater than medium threshold %.2f", t.High, t.Medium)
	}
	return nil
}

// Categorize maps a mean value to its band.
func (t Thresholds) Categorize(mean float64) model.Category {
	switch {
	case mean > t.High:
		return model.CategoryHigh
	case mean > t.Medium:
		return model.CategoryMedium
	default:
		return model.CategoryLow
	}
}

// Categorize bands mean using the default thresholds.
func Categorize(mean float64) model.Category {
	return DefaultThresholds().Categorize(mean)
}
