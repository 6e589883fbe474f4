package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/pedalstats/internal/tui/themes"
	"github.com/Veraticus/pedalstats/internal/tui/viewmodel"
)

const minBarWidth = 10

// BarChart renders a horizontal bar chart with one row per bar.
type BarChart struct {
	theme themes.Theme
	width int
}

// NewBarChart creates a chart that fits in width columns.
func NewBarChart(theme themes.Theme, width int) BarChart {
	return BarChart{theme: theme, width: width}
}

// Render draws chart, or its warning when the panel failed.
func (c BarChart) Render(chart viewmodel.ChartView) string {
	title := c.theme.Bold.Render(chart.Title)
	if chart.HasWarning() {
		return lipgloss.JoinVertical(lipgloss.Left, title, "", c.theme.StatusWarning.Render(chart.Warning))
	}

	labelWidth, valueWidth := 0, 0
	for _, b := range chart.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		valueWidth = max(valueWidth, lipgloss.Width(b.Display))
	}
	barWidth := max(minBarWidth, c.width-labelWidth-valueWidth-4)

	bars := map[viewmodel.Tone]progress.Model{
		viewmodel.ToneNormal: c.newBar(c.theme.Primary, barWidth),
		viewmodel.ToneLight:  c.newBar(c.theme.BarLight, barWidth),
		viewmodel.ToneDark:   c.newBar(c.theme.BarDark, barWidth),
	}

	lines := []string{title, ""}
	for _, b := range chart.Bars {
		label := c.theme.Subtitle.Render(fmt.Sprintf("%-*s", labelWidth, b.Label))
		bar := bars[b.Tone].ViewAs(b.Fraction)
		value := c.theme.Normal.Render(fmt.Sprintf("%*s", valueWidth, b.Display))
		lines = append(lines, label+" "+bar+" "+value)
	}
	return strings.Join(lines, "\n")
}

func (c BarChart) newBar(color lipgloss.Color, width int) progress.Model {
	p := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithoutPercentage(),
		progress.WithWidth(width),
	)
	p.EmptyColor = string(c.theme.BarEmpty)
	return p
}

// RenderMetrics draws the headline metric cards side by side.
func RenderMetrics(metrics []viewmodel.Metric, theme themes.Theme, width int) string {
	if len(metrics) == 0 {
		return ""
	}
	// Each card adds a border (2) and padding (4).
	cardWidth := max(12, width/len(metrics)-6)

	cards := make([]string, 0, len(metrics))
	for _, metric := range metrics {
		content := lipgloss.JoinVertical(lipgloss.Left,
			theme.MetricLabel.Render(metric.Label),
			theme.MetricValue.Render(metric.Value),
		)
		cards = append(cards, theme.MetricCard.Width(cardWidth).Render(content))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

// RenderTabs draws the tab bar with active highlighted.
func RenderTabs(names []string, active int, theme themes.Theme) string {
	tabs := make([]string, 0, len(names))
	for i, name := range names {
		label := fmt.Sprintf("%d %s", i+1, name)
		if i == active {
			tabs = append(tabs, theme.TabActive.Render(label))
		} else {
			tabs = append(tabs, theme.TabInactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// RenderWeatherTable draws the weather categorization table.
func RenderWeatherTable(rows []viewmodel.WeatherRowView, theme themes.Theme) string {
	columns := []table.Column{
		{Title: "Condition", Width: 12},
		{Title: "Mean / hour", Width: 12},
		{Title: "Category", Width: 10},
	}

	tableRows := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		tableRows = append(tableRows, table.Row{r.Condition, r.Mean, r.Category})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows),
		table.WithHeight(len(rows)+2),
		table.WithFocused(false),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(true)
	styles.Cell = styles.Cell.Foreground(theme.Foreground)
	styles.Selected = styles.Cell
	t.SetStyles(styles)

	return t.View()
}
