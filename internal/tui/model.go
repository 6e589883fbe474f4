// Package tui implements the interactive bike-sharing dashboard.
package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/pedalstats/internal/analysis"
	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/service"
	"github.com/Veraticus/pedalstats/internal/tui/components"
	"github.com/Veraticus/pedalstats/internal/tui/themes"
	"github.com/Veraticus/pedalstats/internal/tui/viewmodel"
)

// State represents the current state of the TUI.
type State int

const (
	// StateLoading is shown until the dataset load finishes.
	StateLoading State = iota
	// StateReady is the interactive dashboard.
	StateReady
	// StateFatal is terminal: the dataset could not be loaded.
	StateFatal
)

// Tab selects the panel shown in the main area.
type Tab int

// Dashboard tabs.
const (
	TabSeasons Tab = iota
	TabHours
	TabWeather
	TabInsights
	tabCount
)

var tabNames = []string{"Seasons", "Hours", "Weather", "Insights"}

// Model holds the dashboard state.
type Model struct {
	ctx       context.Context
	source    service.DatasetSource
	theme     themes.Theme
	logger    *slog.Logger
	err       error
	engine    *analysis.Engine
	dataset   *dataset.Dataset
	config    Config
	keymap    KeyMap
	help      help.Model
	filters   components.FilterPanelModel
	dashboard analysis.Dashboard
	view      viewmodel.DashboardView
	state     State
	tab       Tab
	width     int
	height    int
	showHelp  bool
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(ctx context.Context, source service.DatasetSource, cfg Config) Model {
	h := help.New()
	h.Styles.ShortKey = h.Styles.ShortKey.Foreground(cfg.Theme.Primary)
	h.Styles.FullKey = h.Styles.FullKey.Foreground(cfg.Theme.Primary)

	return Model{
		ctx:    ctx,
		source: source,
		config: cfg,
		theme:  cfg.Theme,
		logger: cfg.Logger,
		keymap: DefaultKeyMap(),
		help:   h,
		width:  cfg.Width,
		height: cfg.Height,
		state:  StateLoading,
	}
}

// Init starts the dataset load.
func (m Model) Init() tea.Cmd {
	return loadDataset(m.ctx, m.source)
}

// Err returns the fatal load error, if any.
func (m Model) Err() error {
	return m.err
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filters.Resize(m.filterWidth())
		return m, nil

	case datasetLoadedMsg:
		m.handleDatasetLoaded(msg)
		return m, nil

	case components.FilterChangedMsg:
		if m.state == StateReady {
			m.recompute(msg.Spec)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleDatasetLoaded(msg datasetLoadedMsg) {
	if msg.err != nil {
		m.fail(msg.err)
		return
	}

	engine, err := analysis.NewEngine(analysis.Deps{
		Data:       msg.dataset,
		Logger:     m.logger,
		Thresholds: m.config.Thresholds,
	})
	if err != nil {
		m.fail(err)
		return
	}

	m.engine = engine
	m.dataset = msg.dataset
	m.filters = components.NewFilterPanel(msg.dataset.DefaultFilter(), m.theme)
	m.filters.Resize(m.filterWidth())
	m.state = StateReady
	m.recompute(m.filters.Spec())
}

func (m *Model) fail(err error) {
	m.logger.Error("Dataset unavailable", "error", err)
	m.err = err
	m.state = StateFatal
}

// recompute runs one synchronous pipeline cycle for spec.
func (m *Model) recompute(spec model.FilterSpec) {
	m.dashboard = m.engine.Run(spec)
	m.view = viewmodel.Build(m.dashboard)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state != StateReady {
		if key.Matches(msg, m.keymap.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.showHelp {
		switch {
		case key.Matches(msg, m.keymap.Help), key.Matches(msg, m.keymap.Leave):
			m.showHelp = false
		case key.Matches(msg, m.keymap.Quit):
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	}

	if m.filters.Focused() {
		var cmd tea.Cmd
		m.filters, cmd = m.filters.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Help):
		m.showHelp = true
	case key.Matches(msg, m.keymap.FocusFilters):
		m.filters.Focus()
	case key.Matches(msg, m.keymap.Reset):
		cmd := m.filters.Reset()
		return m, cmd
	case key.Matches(msg, m.keymap.NextTab):
		m.tab = (m.tab + 1) % tabCount
	case key.Matches(msg, m.keymap.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
	case key.Matches(msg, m.keymap.Tab1):
		m.tab = TabSeasons
	case key.Matches(msg, m.keymap.Tab2):
		m.tab = TabHours
	case key.Matches(msg, m.keymap.Tab3):
		m.tab = TabWeather
	case key.Matches(msg, m.keymap.Tab4):
		m.tab = TabInsights
	case key.Matches(msg, m.keymap.ClearScreen):
		return m, tea.ClearScreen
	}
	return m, nil
}

// filterWidth is the width of the filter column in the full layout.
func (m Model) filterWidth() int {
	if m.compact() {
		return max(20, m.width-4)
	}
	return 30
}

func (m Model) compact() bool {
	return m.width < 80
}
