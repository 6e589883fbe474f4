package model

// GroupMean is one row of an aggregate result.
type GroupMean struct {
	Key   int
	Mean  float64
	Count int
}

// Category is the ordinal band of a mean rental value.
type Category int

// Categories, ordered low to high.
const (
	CategoryLow Category = iota
	CategoryMedium
	CategoryHigh
)

func (c Category) String() string {
	switch c {
	case CategoryHigh:
		return "High"
	case CategoryMedium:
		return "Medium"
	default:
		return "Low"
	}
}
