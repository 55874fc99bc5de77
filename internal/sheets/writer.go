package sheets

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/common"
)

// Writer publishes one month's budget summary to a spreadsheet tab.
type Writer struct {
	service *sheets.Service
	config  Config
}

// NewWriter authenticates with a service account key and creates a writer.
func NewWriter(ctx context.Context, config Config) (*Writer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	jsonKey, err := os.ReadFile(config.ServiceAccountPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read service account key file: %w", err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(jsonKey, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("unable to parse service account key: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Writer{service: service, config: config}, nil
}

// WriteMonthlyReport clears the configured tab and writes the month's
// installments, incomes and leftover.
func (w *Writer) WriteMonthlyReport(ctx context.Context, monthKey string, installments budget.MonthInstallments, incomes budget.MonthIncomes) error {
	slog.Info("writing monthly report",
		"month", monthKey,
		"installments", len(installments.List),
		"incomes", len(incomes.List))

	retryOpts := common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
		Multiplier:   2.0,
	}

	clearRange := fmt.Sprintf("%s!A:Z", w.config.SheetName)
	err := common.WithRetry(ctx, func() error {
		_, clearErr := w.service.Spreadsheets.Values.
			Clear(w.config.SpreadsheetID, clearRange, &sheets.ClearValuesRequest{}).
			Context(ctx).Do()
		return clearErr
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to clear sheet: %w", err)
	}

	values := buildReportValues(monthKey, installments, incomes)

	writeRange := fmt.Sprintf("%s!A1", w.config.SheetName)
	err = common.WithRetry(ctx, func() error {
		_, writeErr := w.service.Spreadsheets.Values.
			Update(w.config.SpreadsheetID, writeRange, &sheets.ValueRange{Values: values}).
			ValueInputOption("USER_ENTERED").
			Context(ctx).Do()
		return writeErr
	}, retryOpts)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("monthly report written", "rows", len(values))
	return nil
}

// buildReportValues lays the report out as spreadsheet rows.
func buildReportValues(monthKey string, installments budget.MonthInstallments, incomes budget.MonthIncomes) [][]any {
	values := [][]any{
		{fmt.Sprintf("Report %s", monthKey)},
		{},
		{"Expense", "Installment", "Payment", "Amount", "Paid"},
	}

	for _, inst := range installments.List {
		paid := "no"
		if inst.Paid {
			paid = "yes"
		}
		values = append(values, []any{
			inst.Name,
			fmt.Sprintf("%d/%d", inst.N, inst.Total),
			string(inst.PaymentType),
			inst.Amount,
			paid,
		})
	}

	values = append(values,
		[]any{},
		[]any{"Income", "", "", "Amount"},
	)
	for _, income := range incomes.List {
		values = append(values, []any{income.Name, "", "", income.Amount})
	}

	values = append(values,
		[]any{},
		[]any{"Total expenses", "", "", installments.Total},
		[]any{"Total paid", "", "", installments.TotalPaid},
		[]any{"Total income", "", "", incomes.Total},
		[]any{"Leftover", "", "", incomes.Total - installments.Total},
	)

	return values
}
