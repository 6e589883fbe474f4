package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Veraticus/pedalstats/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Dataset source kinds.
const (
	SourceCSV    = "csv"
	SourceSQLite = "sqlite"
	SourceSheets = "sheets"
)

// Settings is the fully resolved application configuration.
type Settings struct {
	Data       DataSettings      `mapstructure:"data"`
	Database   DatabaseSettings  `mapstructure:"database"`
	Logging    LoggingSettings   `mapstructure:"logging"`
	Sheets     SheetsSettings    `mapstructure:"sheets"`
	UI         UISettings        `mapstructure:"ui"`
	Thresholds ThresholdSettings `mapstructure:"thresholds"`
}

// DataSettings selects where the dataset is read from.
type DataSettings struct {
	Source   string `mapstructure:"source" validate:"oneof=csv sqlite sheets"`
	DayPath  string `mapstructure:"day_path" validate:"required_if=Source csv"`
	HourPath string `mapstructure:"hour_path" validate:"required_if=Source csv"`
}

// DatabaseSettings locates the SQLite dataset cache.
type DatabaseSettings struct {
	Path string `mapstructure:"path" validate:"required"`
}

// LoggingSettings controls slog output.
type LoggingSettings struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console json"`
	File   string `mapstructure:"file"`
}

// SheetsSettings configures the Google Sheets dataset source.
type SheetsSettings struct {
	SpreadsheetID      string        `mapstructure:"spreadsheet_id"`
	DayRange           string        `mapstructure:"day_range"`
	HourRange          string        `mapstructure:"hour_range"`
	ServiceAccountPath string        `mapstructure:"service_account_path"`
	ClientID           string        `mapstructure:"client_id"`
	ClientSecret       string        `mapstructure:"client_secret"`
	RefreshToken       string        `mapstructure:"refresh_token"`
	RetryAttempts      int           `mapstructure:"retry_attempts" validate:"gte=0"`
	RetryDelay         time.Duration `mapstructure:"retry_delay" validate:"gte=0"`
}

// UISettings configures the terminal dashboard.
type UISettings struct {
	Theme string `mapstructure:"theme" validate:"oneof=default catppuccin-mocha"`
}

// ThresholdSettings are the High/Medium/Low boundaries for weather averages.
type ThresholdSettings struct {
	High   float64 `mapstructure:"high" validate:"gt=0,gtfield=Medium"`
	Medium float64 `mapstructure:"medium" validate:"gte=0"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("data.source", SourceCSV)
	v.SetDefault("data.day_path", "day.csv")
	v.SetDefault("data.hour_path", "hour.csv")
	v.SetDefault("database.path", "$HOME/.local/share/pedal/pedal.db")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.file", "$HOME/.local/share/pedal/pedal.log")
	v.SetDefault("sheets.day_range", "day!A:Z")
	v.SetDefault("sheets.hour_range", "hour!A:Z")
	v.SetDefault("sheets.retry_attempts", 3)
	v.SetDefault("sheets.retry_delay", time.Second)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("thresholds.high", 180.0)
	v.SetDefault("thresholds.medium", 120.0)
}

// EnvKeyReplacer maps nested keys to environment names, so data.source is
// read from PEDAL_DATA_SOURCE.
func EnvKeyReplacer() *strings.Replacer {
	return strings.NewReplacer(".", "_")
}

// Load unmarshals and validates the settings held by v.
func Load(v *viper.Viper) (Settings, error) {
	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	s.Sheets.ApplySheetsEnv()
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field constraints and cross-field rules.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, formatFieldError(fe))
			}
			return fmt.Errorf("%w: %s", common.ErrInvalidConfig, strings.Join(msgs, "; "))
		}
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	if s.Data.Source == SourceSheets {
		if s.Sheets.SpreadsheetID == "" {
			return fmt.Errorf("%w: sheets.spreadsheet_id", common.ErrMissingConfig)
		}
		hasOAuth := s.Sheets.ClientID != "" && s.Sheets.ClientSecret != "" && s.Sheets.RefreshToken != ""
		if !hasOAuth && s.Sheets.ServiceAccountPath == "" {
			return fmt.Errorf("%w: sheets credentials (service account or OAuth2)", common.ErrMissingConfig)
		}
	}

	return nil
}

func formatFieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Namespace())
	field = strings.TrimPrefix(field, "settings.")
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fe.Value())
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "gtfield":
		return fmt.Sprintf("%s must be greater than %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
	}
}
