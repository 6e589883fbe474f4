package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Veraticus/pedalstats/internal/analysis"
	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/tui/components"
	"github.com/Veraticus/pedalstats/internal/tui/themes"
	"github.com/Veraticus/pedalstats/internal/tui/viewmodel"
)

const reportWidth = 72

func reportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print a dashboard summary",
		Long: `Print the dashboard panels for one filter selection without
starting the interactive interface.

Examples:
  pedal report --season summer,fall --hour-min 7 --hour-max 19
  pedal report --start-date 2012-01-01 --weather clear --output json`,
		RunE: runReport,
	}

	addFilterFlags(cmd)
	cmd.Flags().StringP("output", "o", "text", "Output format (text, json)")

	return cmd
}

func runReport(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	output, _ := cmd.Flags().GetString("output")
	if output != "text" && output != "json" {
		return common.NewUserError(fmt.Sprintf("--output must be text or json, got %q", output), nil)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	source, closeSource, err := openSource(ctx, settings, slog.Default())
	if err != nil {
		return common.NewUserError("Data unavailable", err)
	}
	defer closeSource()

	ds, err := dataset.Load(ctx, source)
	if err != nil {
		return common.NewUserError("Data unavailable", err)
	}

	spec, err := filterFromFlags(cmd, ds.DefaultFilter())
	if err != nil {
		return err
	}

	engine, err := analysis.NewEngine(analysis.Deps{
		Data:       ds,
		Logger:     slog.Default(),
		Thresholds: thresholdsFrom(settings),
	})
	if err != nil {
		return err
	}

	view := viewmodel.Build(engine.Run(spec))

	if output == "json" {
		return writeJSONReport(cmd.OutOrStdout(), view)
	}
	return writeTextReport(cmd.OutOrStdout(), view, themes.GetTheme(settings.UI.Theme), reportWidth)
}

func writeJSONReport(w io.Writer, view viewmodel.DashboardView) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}

// writeTextReport renders every panel in sequence. Panel warnings are part of
// the output and never fail the command.
func writeTextReport(w io.Writer, view viewmodel.DashboardView, theme themes.Theme, width int) error {
	chart := components.NewBarChart(theme, width)

	sections := []string{
		theme.Title.Render("Bike Sharing Report"),
		theme.Subtitle.Render(view.Period),
		"",
		components.RenderMetrics(view.Metrics, theme, width),
		"",
		chart.Render(view.Seasons),
		"",
		chart.Render(view.Hours.ChartView),
	}
	if !view.Hours.HasWarning() {
		sections = append(sections, theme.Normal.Render("Peak hour: "+view.Hours.Peak+"   Lowest hour: "+view.Hours.Lowest))
	}
	sections = append(sections, "", chart.Render(view.Weather.ChartView))
	if len(view.Weather.Rows) > 0 {
		sections = append(sections, "", components.RenderWeatherTable(view.Weather.Rows, theme))
	}

	sections = append(sections, "", theme.Bold.Render("Insights"))
	if len(view.Insights) == 0 {
		sections = append(sections, theme.StatusWarning.Render("No insights for the current filters. Try different filters."))
	}
	for _, insight := range view.Insights {
		sections = append(sections, theme.Normal.Width(width).Render("• "+insight))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, sections...)
	_, err := fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return err
}
