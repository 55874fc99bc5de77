package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/cli"
)

func payCmd() *cobra.Command {
	var unpay bool

	cmd := &cobra.Command{
		Use:   "pay <installment-id>",
		Short: "Mark an installment as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := ledgerSvc.SetInstallmentPaid(ctx, args[0], !unpay); err != nil {
				return fmt.Errorf("failed to update installment: %w", err)
			}

			if unpay {
				fmt.Println(cli.FormatSuccess("Installment marked as unpaid"))
			} else {
				fmt.Println(cli.FormatSuccess("Installment marked as paid"))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&unpay, "unpay", false, "mark as unpaid instead")
	cmd.AddCommand(payCardCmd())

	return cmd
}

func payCardCmd() *cobra.Command {
	var (
		month string
		unpay bool
	)

	cmd := &cobra.Command{
		Use:   "card <card-id>",
		Short: "Mark a card's whole statement for a month as paid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if month == "" {
				month = budget.CurrentMonthKey()
			}

			if err := ledgerSvc.SetCardMonthPaid(ctx, args[0], month, !unpay); err != nil {
				return fmt.Errorf("failed to update card statement: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Card statement for %s updated", month)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "due month (YYYY-MM, default current)")
	cmd.Flags().BoolVar(&unpay, "unpay", false, "mark as unpaid instead")

	return cmd
}
