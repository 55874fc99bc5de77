package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/cli"
	"github.com/fincontrol/fincontrol/internal/config"
	"github.com/fincontrol/fincontrol/internal/sheets"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data as a JSON backup",
		Long: `Write the full application state as a versioned JSON envelope, suitable
for backup or for importing into another backend. The default file name is
controle-gastos-<date>.json; use -o - to print to stdout.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			export, err := ledgerSvc.BuildExport(ctx)
			if err != nil {
				return fmt.Errorf("failed to build export: %w", err)
			}

			data, err := json.MarshalIndent(export, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode export: %w", err)
			}

			if output == "-" {
				fmt.Println(string(data))
				return nil
			}

			if output == "" {
				output = fmt.Sprintf("controle-gastos-%s.json", time.Now().Format("2006-01-02"))
			}

			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Exported to %s", output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default controle-gastos-<date>.json, - for stdout)")
	cmd.AddCommand(exportSheetsCmd())

	return cmd
}

func exportSheetsCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "sheets",
		Short: "Publish a month's summary to Google Sheets",
		Long: `Write the month's installments, incomes and leftover to the configured
spreadsheet tab, replacing its previous contents.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			sheetsCfg, err := config.LoadSheetsConfig()
			if err != nil {
				return fmt.Errorf("sheets is not configured: %w", err)
			}

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := ledgerSvc.State(ctx)
			if err != nil {
				return err
			}

			if month == "" {
				month = budget.CurrentMonthKey()
			}

			writer, err := sheets.NewWriter(ctx, sheetsCfg)
			if err != nil {
				return fmt.Errorf("failed to create sheets writer: %w", err)
			}

			installments := budget.InstallmentsInMonth(state.Installments, month)
			incomes := budget.IncomesInMonth(state.Incomes, month)

			if err := writer.WriteMonthlyReport(ctx, month, installments, incomes); err != nil {
				return fmt.Errorf("failed to publish report: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Report for %s published", month)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to publish (YYYY-MM, default current)")

	return cmd
}
