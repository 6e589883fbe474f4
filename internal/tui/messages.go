package tui

import "github.com/Veraticus/pedalstats/internal/dataset"

// datasetLoadedMsg carries the result of the one-time dataset load.
type datasetLoadedMsg struct {
	dataset *dataset.Dataset
	err     error
}
