package analysis

import "github.com/Veraticus/pedalstats/internal/model"

// Summary holds the headline metrics of the filtered daily dataset.
type Summary struct {
	Days         int
	TotalRentals int
	MeanPerDay   float64
}

// Summarize computes the headline metrics. An empty input yields a zero Summary.
func Summarize(daily []model.DailyRecord) Summary {
	s := Summary{Days: len(daily)}
	for _, r := range daily {
		s.TotalRentals += r.Count
	}
	if s.Days > 0 {
		s.MeanPerDay = float64(s.TotalRentals) / float64(s.Days)
	}
	return s
}
