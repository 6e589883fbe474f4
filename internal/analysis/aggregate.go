package analysis

import (
	"slices"

	"github.com/Veraticus/pedalstats/internal/model"
)

// MeanBy groups records by key and averages value within each group. Only keys
// present in records are emitted, ordered ascending.
func MeanBy[R any](records []R, key func(R) int, value func(R) float64) []model.GroupMean {
	if len(records) == 0 {
		return []model.GroupMean{}
	}

	sums := make(map[int]float64)
	counts := make(map[int]int)
	for _, r := range records {
		k := key(r)
		sums[k] += value(r)
		counts[k]++
	}

	keys := make([]int, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]model.GroupMean, 0, len(keys))
	for _, k := range keys {
		out = append(out, model.GroupMean{
			Key:   k,
			Mean:  sums[k] / float64(counts[k]),
			Count: counts[k],
		})
	}
	return out
}

// Reindex keeps only the groups whose key is in valid. Keys of valid that have
// no group are dropped rather than emitted as zero.
func Reindex(groups []model.GroupMean, valid []int) []model.GroupMean {
	out := make([]model.GroupMean, 0, len(groups))
	for _, g := range groups {
		if slices.Contains(valid, g.Key) {
			out = append(out, g)
		}
	}
	return out
}

// Keys returns the group keys in result order.
func Keys(groups []model.GroupMean) []int {
	keys := make([]int, len(groups))
	for i, g := range groups {
		keys[i] = g.Key
	}
	return keys
}

// MeanBySeason averages daily rentals per season.
func MeanBySeason(records []model.DailyRecord) []model.GroupMean {
	return MeanBy(records,
		func(r model.DailyRecord) int { return r.Season.Code() },
		func(r model.DailyRecord) float64 { return float64(r.Count) })
}

// MeanByHour averages hourly rentals per hour of day.
func MeanByHour(records []model.HourlyRecord) []model.GroupMean {
	return MeanBy(records,
		func(r model.HourlyRecord) int { return r.Hour },
		func(r model.HourlyRecord) float64 { return float64(r.Count) })
}

// MeanByWeather averages hourly rentals per weather condition.
func MeanByWeather(records []model.HourlyRecord) []model.GroupMean {
	return MeanBy(records,
		func(r model.HourlyRecord) int { return r.Weather.Code() },
		func(r model.HourlyRecord) float64 { return float64(r.Count) })
}
