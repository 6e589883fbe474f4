package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/service"
)

// loadDataset reads the dataset once from source.
func loadDataset(ctx context.Context, source service.DatasetSource) tea.Cmd {
	return func() tea.Msg {
		ds, err := dataset.Load(ctx, source)
		return datasetLoadedMsg{dataset: ds, err: err}
	}
}
