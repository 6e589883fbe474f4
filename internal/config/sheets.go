package config

import "os"

// ApplySheetsEnv fills unset Google Sheets credentials from the GOOGLE_SHEETS_*
// environment variables. Values from the config file or PEDAL_ variables win.
func (s *SheetsSettings) ApplySheetsEnv() {
	if s.ServiceAccountPath == "" {
		s.ServiceAccountPath = os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH")
	}
	if s.ClientID == "" {
		s.ClientID = os.Getenv("GOOGLE_SHEETS_CLIENT_ID")
	}
	if s.ClientSecret == "" {
		s.ClientSecret = os.Getenv("GOOGLE_SHEETS_CLIENT_SECRET")
	}
	if s.RefreshToken == "" {
		s.RefreshToken = os.Getenv("GOOGLE_SHEETS_REFRESH_TOKEN")
	}
	if s.SpreadsheetID == "" {
		s.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	s.ServiceAccountPath = ExpandPath(s.ServiceAccountPath)
}
