package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/Veraticus/pedalstats/internal/model"
)

// ReplaceRecords swaps the stored dataset for the given records in a single
// transaction. progress, when non-nil, is called with the number of rows
// written since the previous call.
func (s *SQLiteStorage) ReplaceRecords(ctx context.Context, daily []model.DailyRecord, hourly []model.HourlyRecord, progress func(n int)) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for i, r := range daily {
		if err := validateDaily(r); err != nil {
			return fmt.Errorf("daily record at index %d: %w", i, err)
		}
	}
	for i, r := range hourly {
		if err := validateHourly(r); err != nil {
			return fmt.Errorf("hourly record at index %d: %w", i, err)
		}
	}
	if progress == nil {
		progress = func(int) {}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"daily_records", "hourly_records"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if err := insertDaily(ctx, tx, daily, progress); err != nil {
		return err
	}
	if err := insertHourly(ctx, tx, hourly, progress); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO imports (daily_rows, hourly_rows) VALUES (?, ?)`,
		len(daily), len(hourly)); err != nil {
		return fmt.Errorf("failed to record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit import: %w", err)
	}

	slog.Info("Stored dataset", "daily_rows", len(daily), "hourly_rows", len(hourly))
	return nil
}

func insertDaily(ctx context.Context, tx *sql.Tx, records []model.DailyRecord, progress func(int)) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO daily_records (date, season, weather, count) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare daily insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Date.Format(model.DateLayout), r.Season.Code(), r.Weather.Code(), r.Count); err != nil {
			return fmt.Errorf("failed to insert daily record %s: %w", r.Date.Format(model.DateLayout), err)
		}
		progress(1)
	}
	return nil
}

func insertHourly(ctx context.Context, tx *sql.Tx, records []model.HourlyRecord, progress func(int)) error {
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO hourly_records (date, hour, season, weather, count) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare hourly insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, r.Date.Format(model.DateLayout), r.Hour, r.Season.Code(), r.Weather.Code(), r.Count); err != nil {
			return fmt.Errorf("failed to insert hourly record %s %02d: %w", r.Date.Format(model.DateLayout), r.Hour, err)
		}
		progress(1)
	}
	return nil
}

// LoadDaily implements service.DatasetSource.
func (s *SQLiteStorage) LoadDaily(ctx context.Context) ([]model.DailyRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, season, weather, count FROM daily_records ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("failed to query daily records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.DailyRecord
	for rows.Next() {
		var (
			date string
			r    model.DailyRecord
		)
		if err := rows.Scan(&date, &r.Season, &r.Weather, &r.Count); err != nil {
			return nil, fmt.Errorf("failed to scan daily record: %w", err)
		}
		if r.Date, err = parseStoredDate(date); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// LoadHourly implements service.DatasetSource.
func (s *SQLiteStorage) LoadHourly(ctx context.Context) ([]model.HourlyRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT date, hour, season, weather, count FROM hourly_records ORDER BY date, hour`)
	if err != nil {
		return nil, fmt.Errorf("failed to query hourly records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.HourlyRecord
	for rows.Next() {
		var (
			date string
			r    model.HourlyRecord
		)
		if err := rows.Scan(&date, &r.Hour, &r.Season, &r.Weather, &r.Count); err != nil {
			return nil, fmt.Errorf("failed to scan hourly record: %w", err)
		}
		if r.Date, err = parseStoredDate(date); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// LastImport returns when the dataset was last imported and the row counts.
func (s *SQLiteStorage) LastImport(ctx context.Context) (time.Time, int, int, error) {
	var (
		at     time.Time
		daily  int
		hourly int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT imported_at, daily_rows, hourly_rows FROM imports ORDER BY id DESC LIMIT 1`).
		Scan(&at, &daily, &hourly)
	if err != nil {
		return time.Time{}, 0, 0, fmt.Errorf("failed to get last import: %w", err)
	}
	return at, daily, hourly, nil
}

func parseStoredDate(value string) (time.Time, error) {
	t, err := time.Parse(model.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid stored date %q: %w", value, err)
	}
	return t, nil
}
