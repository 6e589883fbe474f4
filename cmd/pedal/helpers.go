package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/pedalstats/internal/analysis"
	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/config"
	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/service"
	"github.com/Veraticus/pedalstats/internal/sheets"
	"github.com/Veraticus/pedalstats/internal/storage"
)

// initStorage opens the dataset cache at dbPath and runs migrations.
func initStorage(ctx context.Context, dbPath string) (*storage.SQLiteStorage, error) {
	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// openSource builds the dataset source selected by data.source. The returned
// func releases it.
func openSource(ctx context.Context, s config.Settings, logger *slog.Logger) (service.DatasetSource, func(), error) {
	noop := func() {}

	switch s.Data.Source {
	case config.SourceSQLite:
		store, err := initStorage(ctx, s.Database.Path)
		if err != nil {
			return nil, noop, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("Failed to close database", "error", err)
			}
		}, nil

	case config.SourceSheets:
		src, err := sheets.NewSource(ctx, sheets.FromSettings(s.Sheets), logger)
		if err != nil {
			return nil, noop, err
		}
		return src, noop, nil

	default:
		return dataset.NewCSVSource(s.Data.DayPath, s.Data.HourPath), noop, nil
	}
}

func thresholdsFrom(s config.Settings) analysis.Thresholds {
	return analysis.Thresholds{High: s.Thresholds.High, Medium: s.Thresholds.Medium}
}

// addFilterFlags registers the filter selection flags on cmd.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("start-date", "s", "", "First day to include (format: 2006-01-02, default: first day in the dataset)")
	cmd.Flags().StringP("end-date", "e", "", "Last day to include (format: 2006-01-02, default: last day in the dataset)")
	cmd.Flags().StringSlice("season", nil, "Seasons to include, by name or code (default: all)")
	cmd.Flags().StringSlice("weather", nil, "Weather conditions to include, by name or code (default: all)")
	cmd.Flags().Int("hour-min", model.MinHour, "First hour of day to include")
	cmd.Flags().Int("hour-max", model.MaxHour, "Last hour of day to include")
}

// filterFromFlags overlays the filter flags set on cmd onto defaults.
func filterFromFlags(cmd *cobra.Command, defaults model.FilterSpec) (model.FilterSpec, error) {
	spec := defaults
	flags := cmd.Flags()

	for name, target := range map[string]*time.Time{"start-date": &spec.Start, "end-date": &spec.End} {
		if !flags.Changed(name) {
			continue
		}
		raw, _ := flags.GetString(name)
		t, err := time.Parse(model.DateLayout, raw)
		if err != nil {
			return model.FilterSpec{}, common.NewUserError(fmt.Sprintf("--%s must be a date like %s", name, model.DateLayout), err)
		}
		*target = model.NormalizeDate(t)
	}

	if flags.Changed("season") {
		raw, _ := flags.GetStringSlice("season")
		seasons := make([]model.Season, 0, len(raw))
		for _, v := range raw {
			s, err := model.ParseSeason(v)
			if err != nil {
				return model.FilterSpec{}, common.NewUserError("Unknown season "+v, err)
			}
			if !slices.Contains(seasons, s) {
				seasons = append(seasons, s)
			}
		}
		slices.Sort(seasons)
		spec.Seasons = seasons
	}

	if flags.Changed("weather") {
		raw, _ := flags.GetStringSlice("weather")
		weather := make([]model.Weather, 0, len(raw))
		for _, v := range raw {
			w, err := model.ParseWeather(v)
			if err != nil {
				return model.FilterSpec{}, common.NewUserError("Unknown weather condition "+v, err)
			}
			if !slices.Contains(weather, w) {
				weather = append(weather, w)
			}
		}
		slices.Sort(weather)
		spec.Weather = weather
	}

	for name, target := range map[string]*int{"hour-min": &spec.HourLo, "hour-max": &spec.HourHi} {
		if !flags.Changed(name) {
			continue
		}
		hour, _ := flags.GetInt(name)
		if hour < model.MinHour || hour > model.MaxHour {
			return model.FilterSpec{}, common.NewUserError(
				fmt.Sprintf("--%s must be between %d and %d", name, model.MinHour, model.MaxHour), nil)
		}
		*target = hour
	}

	return spec, nil
}
