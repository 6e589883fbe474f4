package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/tui"
	"github.com/Veraticus/pedalstats/internal/tui/themes"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive bike-sharing dashboard.

Use the filter panel (f) to narrow the date range, seasons, hours and
weather conditions. Every change recomputes all panels immediately.`,
		RunE: runDashboard,
	}
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs go to a file.
	var logOut io.Writer = io.Discard
	if settings.Logging.File != "" {
		f, err := logFile(settings.Logging.File)
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()
		logOut = f
	}
	if err := setupLogging(logOut); err != nil {
		return err
	}

	source, closeSource, err := openSource(ctx, settings, slog.Default())
	if err != nil {
		return common.NewUserError("Data unavailable", err)
	}
	defer closeSource()

	slog.Info("Starting dashboard", "source", settings.Data.Source, "theme", settings.UI.Theme)

	err = tui.Run(ctx, source,
		tui.WithTheme(themes.GetTheme(settings.UI.Theme)),
		tui.WithLogger(slog.Default()),
		tui.WithThresholds(thresholdsFrom(settings)),
	)
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		return nil
	case errors.Is(err, common.ErrDataUnavailable):
		return common.NewUserError("Data unavailable", err)
	default:
		return err
	}
}
