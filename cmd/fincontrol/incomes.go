package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/cli"
	"github.com/fincontrol/fincontrol/internal/model"
)

func incomesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "incomes",
		Short: "Manage incomes",
		Long: `List, add, update, and delete incomes. An income counts toward every
month in its window: from its start month through start plus months minus one.`,
	}

	cmd.AddCommand(listIncomesCmd())
	cmd.AddCommand(addIncomeCmd())
	cmd.AddCommand(updateIncomeCmd())
	cmd.AddCommand(deleteIncomeCmd())

	return cmd
}

func listIncomesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all incomes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := ledgerSvc.State(ctx)
			if err != nil {
				return err
			}

			if len(state.Incomes) == 0 {
				fmt.Println(cli.InfoStyle.Render("No incomes found. Use 'fincontrol incomes add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Amount"),
				headerStyle.Render("Start"),
				headerStyle.Render("Months"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 10),
				strings.Repeat("-", 6))

			for _, income := range state.Incomes {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n",
					income.ID, income.Name, cli.FormatMoney(income.Amount), income.StartDate, income.Months)
			}

			return nil
		},
	}
}

func incomeFlags(cmd *cobra.Command, income *model.Income) {
	cmd.Flags().Float64Var(&income.Amount, "amount", 0, "monthly amount")
	cmd.Flags().IntVar(&income.Months, "months", 1, "how many months the income lasts")
	cmd.Flags().StringVar(&income.StartDate, "start", "", "start date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&income.CategoryID, "category", "", "category id")
}

func addIncomeCmd() *cobra.Command {
	var income model.Income

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			income.Name = args[0]
			created, err := ledgerSvc.AddIncome(ctx, income)
			if err != nil {
				return fmt.Errorf("failed to add income: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added income %q: %s from %s for %d month(s)",
				created.Name, cli.FormatMoney(created.Amount), created.StartDate, created.Months)))
			return nil
		},
	}

	incomeFlags(cmd, &income)
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

// mergeIncomeUpdate starts from the stored record and overrides only the
// fields whose flags were actually set, so an omitted flag never resets a
// stored value to its default.
func mergeIncomeUpdate(stored, flags model.Income, changed func(string) bool) model.Income {
	updated := stored
	updated.Name = flags.Name
	if changed("amount") {
		updated.Amount = flags.Amount
	}
	if changed("months") {
		updated.Months = flags.Months
	}
	if changed("start") {
		updated.StartDate = flags.StartDate
	}
	if changed("category") {
		updated.CategoryID = flags.CategoryID
	}
	return updated
}

func updateIncomeCmd() *cobra.Command {
	var income model.Income

	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Update an income",
		Long: `Update an income. Only the fields whose flags are given change; omitted
flags keep the stored values.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			state, err := ledgerSvc.State(ctx)
			if err != nil {
				return err
			}

			var stored *model.Income
			for i := range state.Incomes {
				if state.Incomes[i].ID == args[0] {
					stored = &state.Incomes[i]
					break
				}
			}
			if stored == nil {
				return fmt.Errorf("income %s not found", args[0])
			}

			income.Name = args[1]
			updated := mergeIncomeUpdate(*stored, income, cmd.Flags().Changed)
			if err := ledgerSvc.UpdateIncome(ctx, updated); err != nil {
				return fmt.Errorf("failed to update income: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Income updated"))
			return nil
		},
	}

	incomeFlags(cmd, &income)

	return cmd
}

func deleteIncomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an income",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := ledgerSvc.RemoveIncome(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete income: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Income deleted"))
			return nil
		},
	}
}
