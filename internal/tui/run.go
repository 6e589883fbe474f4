package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pedalstats/internal/service"
)

// Run starts the dashboard and blocks until the user quits or ctx is
// cancelled. A dataset load failure is returned after the user leaves the
// data-unavailable screen.
func Run(ctx context.Context, source service.DatasetSource, opts ...Option) error {
	if source == nil {
		return fmt.Errorf("dataset source is required")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	p := tea.NewProgram(
		newModel(ctx, source, cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("TUI error: %w", err)
	}

	if m, ok := final.(Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
