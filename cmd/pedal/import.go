package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/pedalstats/internal/cli"
	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/config"
	"github.com/Veraticus/pedalstats/internal/dataset"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Load the CSV files into the local database",
		Long: `Read day.csv and hour.csv and store them in the SQLite dataset cache.

The previous import is replaced in a single transaction, so an interrupted or
failed import leaves the stored dataset unchanged. Set data.source to sqlite to
have the dashboard read from the cache.`,
		RunE: runImport,
	}

	cmd.Flags().String("day", "", "Path to the daily CSV file (default: data.day_path)")
	cmd.Flags().String("hour", "", "Path to the hourly CSV file (default: data.hour_path)")
	cmd.Flags().String("db", "", "Database path (default: database.path)")

	_ = viper.BindPFlag("data.day_path", cmd.Flags().Lookup("day"))
	_ = viper.BindPFlag("data.hour_path", cmd.Flags().Lookup("hour"))
	_ = viper.BindPFlag("database.path", cmd.Flags().Lookup("db"))

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx, cancel := handler.HandleInterrupts(cmd.Context(), "The stored dataset is unchanged.")
	defer cancel()

	_, err = importDataset(ctx, cmd, settings)
	return err
}

// importResult summarizes one completed import.
type importResult struct {
	dbPath string
	daily  int
	hourly int
}

func importDataset(ctx context.Context, cmd *cobra.Command, settings config.Settings) (importResult, error) {
	out := cmd.OutOrStdout()
	src := dataset.NewCSVSource(settings.Data.DayPath, settings.Data.HourPath)

	fmt.Fprintln(out, cli.FormatTitle("Importing bike-sharing dataset"))
	slog.Info("Reading CSV files", "day", src.DayPath, "hour", src.HourPath)

	ds, err := dataset.Load(ctx, src)
	if err != nil {
		return importResult{}, common.NewUserError("Data unavailable", err)
	}
	daily, hourly := ds.Daily(), ds.Hourly()
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Read %d daily and %d hourly records", len(daily), len(hourly))))

	store, err := initStorage(ctx, settings.Database.Path)
	if err != nil {
		return importResult{}, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to close database", "error", err)
		}
	}()

	progress := cli.NewProgress(cmd.ErrOrStderr(), len(daily)+len(hourly), "Storing records...")
	if err := store.ReplaceRecords(ctx, daily, hourly, progress.Add); err != nil {
		return importResult{}, fmt.Errorf("failed to store records: %w", err)
	}
	progress.Finish()

	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Stored dataset in %s", store.Path())))
	if settings.Data.Source != config.SourceSQLite {
		fmt.Fprintln(out, cli.FormatInfo("Set data.source to sqlite to load the dashboard from the database."))
	}

	return importResult{dbPath: store.Path(), daily: len(daily), hourly: len(hourly)}, nil
}
