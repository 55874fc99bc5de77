// Package sheets exports monthly budget reports to Google Sheets.
package sheets

import (
	"errors"
)

// Config holds the settings for the Google Sheets report writer.
type Config struct {
	// SpreadsheetID is the target spreadsheet.
	SpreadsheetID string
	// SheetName is the tab the report is written to.
	SheetName string
	// ServiceAccountPath points to a service account JSON key file.
	ServiceAccountPath string
}

// Validate checks that the config is complete.
func (c Config) Validate() error {
	if c.SpreadsheetID == "" {
		return errors.New("spreadsheet ID is required")
	}
	if c.SheetName == "" {
		return errors.New("sheet name is required")
	}
	if c.ServiceAccountPath == "" {
		return errors.New("service account key path is required")
	}
	return nil
}
