package analysis

import "github.com/Veraticus/pedalstats/internal/model"

// Extrema holds the groups with the highest and lowest mean.
type Extrema struct {
	MaxKey   int
	MinKey   int
	MaxValue float64
	MinValue float64
}

// FindExtrema scans an ordered aggregate result. On ties the earliest key wins.
// Callers should check for emptiness first and show a no-data state instead.
func FindExtrema(groups []model.GroupMean) (Extrema, error) {
	if len(groups) == 0 {
		return Extrema{}, ErrEmptyInput
	}

	ext := Extrema{
		MaxKey:   groups[0].Key,
		MaxValue: groups[0].Mean,
		MinKey:   groups[0].Key,
		MinValue: groups[0].Mean,
	}
	for _, g := range groups[1:] {
		if g.Mean > ext.MaxValue {
			ext.MaxKey, ext.MaxValue = g.Key, g.Mean
		}
		if g.Mean < ext.MinValue {
			ext.MinKey, ext.MinValue = g.Key, g.Mean
		}
	}
	return ext, nil
}
