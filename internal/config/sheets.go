package config

import (
	"os"

	"github.com/spf13/viper"

	"github.com/fincontrol/fincontrol/internal/sheets"
)

// LoadSheetsConfig loads the Google Sheets report configuration. Precedence:
// Viper configuration (config file or FINCONTROL_ env vars), then direct
// GOOGLE_SHEETS_* environment variables.
func LoadSheetsConfig() (sheets.Config, error) {
	cfg := sheets.Config{
		SheetName: "Report",
	}

	if v := viper.GetString("sheets.spreadsheet_id"); v != "" {
		cfg.SpreadsheetID = v
	}
	if v := viper.GetString("sheets.sheet_name"); v != "" {
		cfg.SheetName = v
	}
	if v := viper.GetString("sheets.service_account_path"); v != "" {
		cfg.ServiceAccountPath = ExpandPath(v)
	}

	if cfg.SpreadsheetID == "" {
		cfg.SpreadsheetID = os.Getenv("GOOGLE_SHEETS_SPREADSHEET_ID")
	}
	if cfg.ServiceAccountPath == "" {
		cfg.ServiceAccountPath = ExpandPath(os.Getenv("GOOGLE_SHEETS_SERVICE_ACCOUNT_PATH"))
	}

	if err := cfg.Validate(); err != nil {
		return sheets.Config{}, err
	}
	return cfg, nil
}
