package dataset

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/Veraticus/pedalstats/internal/config"
	"github.com/Veraticus/pedalstats/internal/model"
)

// CSVSource reads the day.csv and hour.csv files of the original dataset.
type CSVSource struct {
	DayPath  string
	HourPath string
}

// NewCSVSource creates a source for the given file paths. `~` and environment
// variables are expanded.
func NewCSVSource(dayPath, hourPath string) *CSVSource {
	return &CSVSource{
		DayPath:  config.ExpandPath(dayPath),
		HourPath: config.ExpandPath(hourPath),
	}
}

// LoadDaily implements service.DatasetSource.
func (s *CSVSource) LoadDaily(ctx context.Context) ([]model.DailyRecord, error) {
	header, rows, err := readCSVFile(ctx, s.DayPath)
	if err != nil {
		return nil, err
	}
	return ParseDailyRows(header, rows)
}

// LoadHourly implements service.DatasetSource.
func (s *CSVSource) LoadHourly(ctx context.Context) ([]model.HourlyRecord, error) {
	header, rows, err := readCSVFile(ctx, s.HourPath)
	if err != nil {
		return nil, err
	}
	return ParseHourlyRows(header, rows)
}

func readCSVFile(ctx context.Context, path string) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	f, err := os.Open(path) //nolint:gosec // path comes from user configuration
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	header, rows, err := ReadCSV(f)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return header, rows, nil
}

// ReadCSV splits CSV content into its header and data rows.
func ReadCSV(r io.Reader) ([]string, [][]string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, nil, fmt.Errorf("empty file")
		}
		return nil, nil, err
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	return header, rows, nil
}
