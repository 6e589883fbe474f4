package analysis

import (
	"fmt"

	"github.com/Veraticus/pedalstats/internal/model"
)

// Insights turns the computed panels into short narrative sentences. Panels
// that failed contribute nothing.
func Insights(d Dashboard) []string {
	var out []string

	if d.Season.Err == nil {
		if s := seasonInsight(d.Season.Groups); s != "" {
			out = append(out, s)
		}
	}
	if d.Hour.Err == nil && len(d.Hour.Groups) > 0 {
		out = append(out, hourInsight(d.Hour.Extrema))
	}
	if d.Weather.Err == nil {
		if s := weatherInsight(d.Weather.Groups); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func seasonInsight(groups []model.GroupMean) string {
	ext, err := FindExtrema(groups)
	if err != nil {
		return ""
	}
	best := model.Season(ext.MaxKey)
	if len(groups) == 1 {
		return fmt.Sprintf("Only %s is selected, averaging %.1f rentals per day.", best, ext.MaxValue)
	}
	return fmt.Sprintf("Rentals are highest in %s (%.1f per day) and lowest in %s (%.1f per day).",
		best, ext.MaxValue, model.Season(ext.MinKey), ext.MinValue)
}

func hourInsight(ext Extrema) string {
	return fmt.Sprintf("Rentals peak at %02d:00 (%.1f per hour) and bottom out at %02d:00 (%.1f per hour).",
		ext.MaxKey, ext.MaxValue, ext.MinKey, ext.MinValue)
}

func weatherInsight(groups []model.GroupMean) string {
	if len(groups) == 0 {
		return ""
	}
	first := model.Weather(groups[0].Key)
	last := model.Weather(groups[len(groups)-1].Key)
	if len(groups) == 1 {
		return fmt.Sprintf("Only %s conditions are selected, averaging %.1f rentals per hour.", first, groups[0].Mean)
	}

	declining := true
	for i := 1; i < len(groups); i++ {
		if groups[i].Mean >= groups[i-1].Mean {
			declining = false
			break
		}
	}
	if declining {
		return fmt.Sprintf("Rentals fall steadily as the weather worsens, from %.1f per hour in %s to %.1f in %s.",
			groups[0].Mean, first, groups[len(groups)-1].Mean, last)
	}

	ext, err := FindExtrema(groups)
	if err != nil {
		return ""
	}
	return fmt.Sprintf("%s weather sees the most rentals (%.1f per hour); %s sees the fewest (%.1f per hour).",
		model.Weather(ext.MaxKey), ext.MaxValue, model.Weather(ext.MinKey), ext.MinValue)
}
