package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/pedalstats/internal/model"
)

// Helper function to create test storage.
func createTestStorage(t *testing.T) (*SQLiteStorage, func()) {
	t.Helper()

	store, err := NewSQLiteStorage(":memory:")
	require.NoError(t, err)

	if err := store.Migrate(context.Background()); err != nil {
		_ = store.Close()
		t.Fatalf("Failed to migrate: %v", err)
	}

	return store, func() { _ = store.Close() }
}

func day(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func testRecords() ([]model.DailyRecord, []model.HourlyRecord) {
	daily := []model.DailyRecord{
		{Date: day("2011-01-02"), Season: model.SeasonSpring, Weather: model.WeatherCloudy, Count: 801},
		{Date: day("2011-01-01"), Season: model.SeasonSpring, Weather: model.WeatherClear, Count: 985},
	}
	hourly := []model.HourlyRecord{
		{Date: day("2011-01-01"), Hour: 1, Season: model.SeasonSpring, Weather: model.WeatherClear, Count: 40},
		{Date: day("2011-01-01"), Hour: 0, Season: model.SeasonSpring, Weather: model.WeatherClear, Count: 16},
		{Date: day("2011-01-02"), Hour: 0, Season: model.SeasonSpring, Weather: model.WeatherCloudy, Count: 17},
	}
	return daily, hourly
}

func TestNewSQLiteStorage(t *testing.T) {
	t.Run("creates parent directories", func(t *testing.T) {
		dbPath := filepath.Join(t.TempDir(), "nested", "dir", "pedal.db")
		store, err := NewSQLiteStorage(dbPath)
		require.NoError(t, err)
		defer func() { _ = store.Close() }()
		assert.Equal(t, dbPath, store.Path())
	})

	t.Run("rejects empty path", func(t *testing.T) {
		_, err := NewSQLiteStorage("  ")
		assert.ErrorIs(t, err, ErrEmptyString)
	})
}

func TestMigrate(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	var version int
	require.NoError(t, store.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&version))
	assert.Equal(t, ExpectedSchemaVersion, version)

	// Running again is a no-op.
	require.NoError(t, store.Migrate(ctx))

	for _, table := range []string{"daily_records", "hourly_records", "imports"} {
		var name string
		err := store.db.QueryRowContext(ctx,
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
	}
}

func TestReplaceRecords_RoundTrip(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	daily, hourly := testRecords()
	progressed := 0
	require.NoError(t, store.ReplaceRecords(ctx, daily, hourly, func(n int) { progressed += n }))
	assert.Equal(t, len(daily)+len(hourly), progressed)

	gotDaily, err := store.LoadDaily(ctx)
	require.NoError(t, err)
	require.Len(t, gotDaily, 2)
	assert.Equal(t, day("2011-01-01"), gotDaily[0].Date)
	assert.Equal(t, 985, gotDaily[0].Count)
	assert.Equal(t, model.WeatherCloudy, gotDaily[1].Weather)

	gotHourly, err := store.LoadHourly(ctx)
	require.NoError(t, err)
	require.Len(t, gotHourly, 3)
	assert.Equal(t, 0, gotHourly[0].Hour)
	assert.Equal(t, 1, gotHourly[1].Hour)
	assert.Equal(t, day("2011-01-02"), gotHourly[2].Date)

	_, dailyRows, hourlyRows, err := store.LastImport(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, dailyRows)
	assert.Equal(t, 3, hourlyRows)
}

func TestReplaceRecords_ReplacesPreviousImport(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	daily, hourly := testRecords()
	require.NoError(t, store.ReplaceRecords(ctx, daily, hourly, nil))
	require.NoError(t, store.ReplaceRecords(ctx, daily[:1], hourly[:1], nil))

	gotDaily, err := store.LoadDaily(ctx)
	require.NoError(t, err)
	assert.Len(t, gotDaily, 1)

	gotHourly, err := store.LoadHourly(ctx)
	require.NoError(t, err)
	assert.Len(t, gotHourly, 1)
}

func TestReplaceRecords_InvalidRecordLeavesStoreUntouched(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	daily, hourly := testRecords()
	require.NoError(t, store.ReplaceRecords(ctx, daily, hourly, nil))

	tests := []struct {
		name   string
		daily  []model.DailyRecord
		hourly []model.HourlyRecord
	}{
		{
			name:  "unknown season",
			daily: []model.DailyRecord{{Date: day("2011-01-03"), Season: 9, Weather: model.WeatherClear, Count: 1}},
		},
		{
			name:  "negative count",
			daily: []model.DailyRecord{{Date: day("2011-01-03"), Season: model.SeasonFall, Weather: model.WeatherClear, Count: -1}},
		},
		{
			name:   "hour out of range",
			hourly: []model.HourlyRecord{{Date: day("2011-01-03"), Hour: 24, Season: model.SeasonFall, Weather: model.WeatherClear}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := store.ReplaceRecords(ctx, tt.daily, tt.hourly, nil)
			assert.ErrorIs(t, err, ErrInvalidRecord)

			gotDaily, err := store.LoadDaily(ctx)
			require.NoError(t, err)
			assert.Len(t, gotDaily, len(daily))
		})
	}
}

func TestReplaceRecords_DuplicateDateRollsBack(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()
	ctx := context.Background()

	daily, hourly := testRecords()
	require.NoError(t, store.ReplaceRecords(ctx, daily, hourly, nil))

	dup := []model.DailyRecord{daily[0], daily[0]}
	require.Error(t, store.ReplaceRecords(ctx, dup, nil, nil))

	gotHourly, err := store.LoadHourly(ctx)
	require.NoError(t, err)
	assert.Len(t, gotHourly, len(hourly))
}

func TestLoad_EmptyStore(t *testing.T) {
	store, cleanup := createTestStorage(t)
	defer cleanup()

	records, err := store.LoadDaily(context.Background())
	require.NoError(t, err)
	assert.Empty(t, records)

	//nolint:staticcheck // nil context is the case under test
	_, err = store.LoadHourly(nil)
	assert.ErrorIs(t, err, ErrNilContext)
}
