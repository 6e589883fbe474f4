package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pedalstats/internal/tui/components"
)

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case StateLoading:
		return m.renderLoading()
	case StateFatal:
		return m.renderFatal()
	}

	if m.showHelp {
		return m.renderHelp()
	}

	if m.compact() {
		return m.renderCompactView()
	}
	return m.renderFullView()
}

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Loading bike-sharing dataset..."),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Reading daily and hourly records"),
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderFatal renders the terminal data-unavailable screen.
func (m Model) renderFatal() string {
	msg := "unknown error"
	if m.err != nil {
		msg = m.err.Error()
	}
	content := m.theme.BorderedBox.
		BorderForeground(m.theme.Error).
		Width(min(70, max(30, m.width-4))).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.StatusError.Render("Data unavailable"),
			"",
			m.theme.Normal.Render(msg),
			"",
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Check the data source settings and press q to quit."),
		))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	h := m.help
	h.ShowAll = true

	content := m.theme.BorderedBox.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Keyboard shortcuts"),
		h.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Press ? or Esc to close help"),
	))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	title := m.theme.Bold.Foreground(m.theme.Primary).Render("Bike Sharing Dashboard")
	period := m.theme.Subtitle.Render(m.view.Period)
	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", period)
}

// renderFullView renders the filter column beside the dashboard.
func (m Model) renderFullView() string {
	mainWidth := max(40, m.width-m.filterWidth()-5)

	left := m.theme.RoundedBox.Render(m.filters.View())
	right := lipgloss.JoinVertical(
		lipgloss.Left,
		components.RenderMetrics(m.view.Metrics, m.theme, mainWidth),
		"",
		components.RenderTabs(tabNames, int(m.tab), m.theme),
		"",
		m.renderTab(mainWidth),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), "", body, "", m.help.View(m.keymap))
}

// renderCompactView stacks everything for narrow terminals.
func (m Model) renderCompactView() string {
	width := max(30, m.width-2)
	sections := []string{m.renderHeader(), ""}
	if m.filters.Focused() {
		sections = append(sections, m.filters.View(), "")
	}
	sections = append(sections,
		components.RenderMetrics(m.view.Metrics, m.theme, width),
		components.RenderTabs(tabNames, int(m.tab), m.theme),
		"",
		m.renderTab(width),
		"",
		m.help.View(m.keymap),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTab(width int) string {
	chart := components.NewBarChart(m.theme, width)

	switch m.tab {
	case TabHours:
		out := chart.Render(m.view.Hours.ChartView)
		if !m.view.Hours.HasWarning() {
			out = lipgloss.JoinVertical(lipgloss.Left, out, "",
				m.theme.Normal.Render("Peak hour: "+m.view.Hours.Peak+"   Lowest hour: "+m.view.Hours.Lowest))
		}
		return out
	case TabWeather:
		out := chart.Render(m.view.Weather.ChartView)
		if len(m.view.Weather.Rows) > 0 {
			out = lipgloss.JoinVertical(lipgloss.Left, out, "", components.RenderWeatherTable(m.view.Weather.Rows, m.theme))
		}
		return out
	case TabInsights:
		return m.renderInsights(width)
	default:
		return chart.Render(m.view.Seasons)
	}
}

func (m Model) renderInsights(width int) string {
	title := m.theme.Bold.Render("Insights")
	if len(m.view.Insights) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, "",
			m.theme.StatusWarning.Render("No insights for the current filters. Try different filters."))
	}

	style := m.theme.Normal.Width(width)
	lines := make([]string, 0, len(m.view.Insights))
	for _, insight := range m.view.Insights {
		lines = append(lines, style.Render("• "+insight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, "", strings.Join(lines, "\n"))
}
