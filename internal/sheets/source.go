package sheets

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/Veraticus/pedalstats/internal/dataset"
	"github.com/Veraticus/pedalstats/internal/model"
	"github.com/Veraticus/pedalstats/internal/service"
)

// ValuesReader fetches a cell range as rows of values.
type ValuesReader interface {
	ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]any, error)
}

// Source implements service.DatasetSource on top of a spreadsheet holding a
// day sheet and an hour sheet, each with a header row.
type Source struct {
	reader ValuesReader
	logger *slog.Logger
	config Config
}

var _ service.DatasetSource = (*Source)(nil)

// NewSource creates a Source backed by the Google Sheets API.
func NewSource(ctx context.Context, config Config, logger *slog.Logger) (*Source, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	srv, err := createSheetsService(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return NewSourceWithReader(&apiReader{service: srv}, config, logger), nil
}

// NewSourceWithReader creates a Source reading through r.
func NewSourceWithReader(r ValuesReader, config Config, logger *slog.Logger) *Source {
	if logger == nil {
		logger = slog.Default()
	}
	return &Source{
		reader: r,
		config: config,
		logger: logger,
	}
}

// LoadDaily reads and parses the day range.
func (s *Source) LoadDaily(ctx context.Context) ([]model.DailyRecord, error) {
	header, rows, err := s.fetch(ctx, s.config.DayRange)
	if err != nil {
		return nil, err
	}
	return dataset.ParseDailyRows(header, rows)
}

// LoadHourly reads and parses the hour range.
func (s *Source) LoadHourly(ctx context.Context) ([]model.HourlyRecord, error) {
	header, rows, err := s.fetch(ctx, s.config.HourRange)
	if err != nil {
		return nil, err
	}
	return dataset.ParseHourlyRows(header, rows)
}

func (s *Source) fetch(ctx context.Context, readRange string) ([]string, [][]string, error) {
	var values [][]any
	err := common.WithRetry(ctx, func() error {
		var readErr error
		values, readErr = s.reader.ReadRange(ctx, s.config.SpreadsheetID, readRange)
		return classifyError(readErr)
	}, service.RetryOptions{
		MaxAttempts:  s.config.RetryAttempts,
		InitialDelay: s.config.RetryDelay,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}

	rows := ToStrings(values)
	if len(rows) == 0 {
		return nil, nil, fmt.Errorf("%w: range %s is empty", common.ErrMissingColumn, readRange)
	}

	s.logger.Info("Read spreadsheet range",
		"range", readRange,
		"rows", len(rows)-1)

	return rows[0], rows[1:], nil
}

// ToStrings converts API cell values to strings. Sheets returns formatted
// values, so numbers arrive as strings already; anything else is printed.
func ToStrings(values [][]any) [][]string {
	out := make([][]string, 0, len(values))
	for _, row := range values {
		cells := make([]string, len(row))
		for i, v := range row {
			switch val := v.(type) {
			case nil:
				cells[i] = ""
			case string:
				cells[i] = val
			default:
				cells[i] = fmt.Sprint(val)
			}
		}
		out = append(out, cells)
	}
	return out
}

// classifyError marks API errors as retryable or permanent.
func classifyError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.Code == http.StatusTooManyRequests:
			return fmt.Errorf("%w: %w", common.ErrRateLimit, err)
		case apiErr.Code >= http.StatusInternalServerError:
			return &common.RetryableError{Err: err, Retryable: true}
		default:
			return &common.RetryableError{Err: err, Retryable: false}
		}
	}
	return err
}

type apiReader struct {
	service *sheets.Service
}

func (r *apiReader) ReadRange(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	resp, err := r.service.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	return resp.Values, nil
}

// createSheetsService creates a read-only Google Sheets API service.
func createSheetsService(ctx context.Context, config Config) (*sheets.Service, error) {
	var tokenSource oauth2.TokenSource

	if config.ServiceAccountPath != "" {
		jsonKey, err := os.ReadFile(config.ServiceAccountPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read service account key file: %w", err)
		}

		jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsReadonlyScope)
		if err != nil {
			return nil, fmt.Errorf("unable to parse service account key: %w", err)
		}

		tokenSource = jwtConfig.TokenSource(ctx)
	} else {
		client := &oauth2.Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{sheets.SpreadsheetsReadonlyScope},
		}

		token := &oauth2.Token{
			RefreshToken: config.RefreshToken,
			TokenType:    "Bearer",
		}

		tokenSource = client.TokenSource(ctx, token)
	}

	httpClient := oauth2.NewClient(ctx, tokenSource)
	srv, err := sheets.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("unable to create sheets service: %w", err)
	}

	return srv, nil
}
