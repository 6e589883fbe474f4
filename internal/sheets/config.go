// Package sheets reads the bike-sharing dataset from a Google Sheets spreadsheet.
package sheets

import (
	"fmt"
	"time"

	"github.com/Veraticus/pedalstats/internal/config"
)

// Config holds the configuration for the Google Sheets source.
type Config struct {
	ClientID           string
	ClientSecret       string
	RefreshToken       string
	ServiceAccountPath string
	SpreadsheetID      string
	DayRange           string
	HourRange          string
	RetryAttempts      int
	RetryDelay         time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DayRange:      "day!A:Z",
		HourRange:     "hour!A:Z",
		RetryAttempts: 3,
		RetryDelay:    time.Second,
	}
}

// FromSettings builds a Config from resolved application settings. Empty
// ranges and retry settings keep their defaults.
func FromSettings(s config.SheetsSettings) Config {
	c := DefaultConfig()
	c.ClientID = s.ClientID
	c.ClientSecret = s.ClientSecret
	c.RefreshToken = s.RefreshToken
	c.ServiceAccountPath = s.ServiceAccountPath
	c.SpreadsheetID = s.SpreadsheetID
	if s.DayRange != "" {
		c.DayRange = s.DayRange
	}
	if s.HourRange != "" {
		c.HourRange = s.HourRange
	}
	if s.RetryAttempts > 0 {
		c.RetryAttempts = s.RetryAttempts
	}
	if s.RetryDelay > 0 {
		c.RetryDelay = s.RetryDelay
	}
	return c
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	hasOAuth := c.ClientID != "" && c.ClientSecret != "" && c.RefreshToken != ""
	hasServiceAccount := c.ServiceAccountPath != ""

	if !hasOAuth && !hasServiceAccount {
		return fmt.Errorf("no authentication method configured")
	}

	if hasOAuth && hasServiceAccount {
		return fmt.Errorf("multiple authentication methods configured; use either OAuth2 or service account")
	}

	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet ID is required")
	}

	if c.DayRange == "" || c.HourRange == "" {
		return fmt.Errorf("day and hour ranges are required")
	}

	if c.RetryAttempts < 0 {
		return fmt.Errorf("retry attempts cannot be negative")
	}

	if c.RetryDelay < 0 {
		return fmt.Errorf("retry delay cannot be negative")
	}

	return nil
}
