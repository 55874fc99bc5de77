package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/cli"
	"github.com/fincontrol/fincontrol/internal/ledger"
	"github.com/fincontrol/fincontrol/internal/model"
)

func expensesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Manage expenses",
		Long: `List, add, update, and delete expenses. Adding an expense immediately
creates its installment schedule: one record for a single payment, or one
per month for a parcelado purchase.`,
	}

	cmd.AddCommand(listExpensesCmd())
	cmd.AddCommand(addExpenseCmd())
	cmd.AddCommand(updateExpenseCmd())
	cmd.AddCommand(deleteExpenseCmd())

	return cmd
}

func listExpensesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all expenses",
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

			if len(state.Expenses) == 0 {
				fmt.Println(cli.InfoStyle.Render("No expenses found. Use 'fincontrol expenses add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer w.Flush()

			headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				headerStyle.Render("ID"),
				headerStyle.Render("Name"),
				headerStyle.Render("Total"),
				headerStyle.Render("Payment"),
				headerStyle.Render("First month"),
				headerStyle.Render("Months"))
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				strings.Repeat("-", 36),
				strings.Repeat("-", 20),
				strings.Repeat("-", 12),
				strings.Repeat("-", 8),
				strings.Repeat("-", 11),
				strings.Repeat("-", 6))

			for _, expense := range state.Expenses {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
					expense.ID, expense.Name, cli.FormatMoney(expense.TotalAmount),
					expense.PaymentType, expense.StartBillingMonth, expense.EffectiveMonths())
			}

			return nil
		},
	}
}

func expenseValueFlags(cmd *cobra.Command, expense *model.Expense) {
	cmd.Flags().Float64Var(&expense.TotalAmount, "total", 0, "total amount of the purchase")
	cmd.Flags().Float64Var(&expense.PerInstallment, "per", 0, "per-installment amount (overrides division of --total)")
	cmd.Flags().StringVar(&expense.CategoryID, "category", "", "category id")
	cmd.Flags().StringVar((*string)(&expense.PaymentType), "payment", "cash", "payment type (cash, card)")
	cmd.Flags().StringVar(&expense.CardID, "card", "", "card id (required for card payments)")
}

func expenseScheduleFlags(cmd *cobra.Command, expense *model.Expense, months *int) {
	cmd.Flags().StringVar(&expense.PurchaseDate, "date", "", "purchase date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&expense.StartBillingMonth, "billing-month", "", "first billed month (YYYY-MM, default current)")
	cmd.Flags().IntVar(months, "parcelado", 0, "split into this many monthly installments")
}

func applyExpenseFlags(expense *model.Expense, months int) {
	if months > 0 {
		expense.Type = model.ExpenseTypeParcelado
		expense.Months = months
	} else {
		expense.Type = model.ExpenseTypeSingle
		expense.Months = 1
	}
	if expense.PerInstallment > 0 {
		expense.IsPerInstallmentValue = true
	}
}

func addExpenseCmd() *cobra.Command {
	var (
		expense model.Expense
		months  int
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a new expense",
		Example: `  fincontrol expenses add "Mercado" --total 250
  fincontrol expenses add "Notebook" --total 3000 --parcelado 10 --payment card --card <id>
  fincontrol expenses add "Academia" --per 89.90 --parcelado 12`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			expense.Name = args[0]
			applyExpenseFlags(&expense, months)

			created, installments, err := ledgerSvc.AddExpense(ctx, expense)
			if err != nil {
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Added expense %q with %d installment(s)",
				created.Name, len(installments))))
			for _, inst := range installments {
				fmt.Printf("  %s  %d/%d  %s\n",
					inst.DueMonth, inst.N, inst.Total, cli.FormatMoney(inst.Amount))
			}
			return nil
		},
	}

	expenseValueFlags(cmd, &expense)
	expenseScheduleFlags(cmd, &expense, &months)

	return cmd
}

// mergeExpenseUpdate starts from the stored record and overrides only the
// fields whose flags were actually set. Schedule fields (type, months,
// billing month, purchase date) are never touched on update.
func mergeExpenseUpdate(stored, flags model.Expense, changed func(string) bool) model.Expense {
	updated := stored
	updated.Name = flags.Name
	if changed("total") {
		updated.TotalAmount = flags.TotalAmount
	}
	if changed("per") {
		updated.PerInstallment = flags.PerInstallment
		updated.IsPerInstallmentValue = flags.PerInstallment > 0
	}
	if changed("category") {
		updated.CategoryID = flags.CategoryID
	}
	if changed("payment") {
		updated.PaymentType = flags.PaymentType
	}
	if changed("card") {
		updated.CardID = flags.CardID
	}
	return updated
}

func updateExpenseCmd() *cobra.Command {
	var expense model.Expense

	cmd := &cobra.Command{
		Use:   "update <id> <name>",
		Short: "Update an expense",
		Long: `Update an expense's name, value, category or payment. Only the fields
whose flags are given change, and the new value is propagated to the existing
installments; their count and months never change.`,
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

			var stored *model.Expense
			for i := range state.Expenses {
				if state.Expenses[i].ID == args[0] {
					stored = &state.Expenses[i]
					break
				}
			}
			if stored == nil {
				return fmt.Errorf("expense %s not found", args[0])
			}

			expense.Name = args[1]
			updated := mergeExpenseUpdate(*stored, expense, cmd.Flags().Changed)

			if err := ledgerSvc.UpdateExpense(ctx, updated); err != nil {
				return fmt.Errorf("failed to update expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Expense updated"))
			return nil
		},
	}

	expenseValueFlags(cmd, &expense)

	return cmd
}

func deleteExpenseCmd() *cobra.Command {
	var (
		scope         string
		installmentID string
	)

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense",
		Long: `Delete an expense. Scope "all" removes the expense and its whole
installment series; scope "one" removes only the installment named by
--installment and keeps the rest.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			ledgerSvc, store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			err = ledgerSvc.RemoveExpense(ctx, args[0], ledger.DeleteScope(scope), installmentID)
			if err != nil {
				return fmt.Errorf("failed to delete expense: %w", err)
			}

			fmt.Println(cli.FormatSuccess("Expense deleted"))
			return nil
		},
	}

	cmd.Flags().StringVar(&scope, "scope", "all", "delete scope (all, one)")
	cmd.Flags().StringVar(&installmentID, "installment", "", "installment id (required for scope one)")

	return cmd
}
