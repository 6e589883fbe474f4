package components

import "github.com/Veraticus/pedalstats/internal/model"

// FilterChangedMsg is emitted whenever the filter panel produces a new spec.
type FilterChangedMsg struct {
	Spec model.FilterSpec
}
