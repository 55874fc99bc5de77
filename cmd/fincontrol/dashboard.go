package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/cli"
	"github.com/fincontrol/fincontrol/internal/model"
)

func dashboardCmd() *cobra.Command {
	var (
		month       string
		next        int
		prev        int
		noCash      bool
		noCard      bool
		noSingle    bool
		noParcelado bool
		cardIDs     []string
		categoryIDs []string
		minAmount   float64
		maxAmount   float64
	)

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show a month's budget summary",
		Long: `Show the month's installments, incomes and leftover. Filters narrow the
installment list; the totals always reflect what is shown.`,
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

			if month == "" {
				month = budget.CurrentMonthKey()
			}
			for i := 0; i < next; i++ {
				month = budget.NextMonthKey(month)
			}
			for i := 0; i < prev; i++ {
				month = budget.PrevMonthKey(month)
			}

			filter := budget.NewFilter()
			filter.Cash = !noCash
			filter.Card = !noCard
			filter.SinglePay = !noSingle
			filter.Installment = !noParcelado
			filter.CardIDs = cardIDs
			filter.CategoryIDs = categoryIDs
			if cmd.Flags().Changed("min") {
				filter.MinAmount = &minAmount
			}
			if cmd.Flags().Changed("max") {
				filter.MaxAmount = &maxAmount
			}

			filtered := filter.Apply(state.Installments)
			installments := budget.InstallmentsInMonth(filtered, month)
			incomes := budget.IncomesInMonth(state.Incomes, month)

			fmt.Println(cli.FormatTitle("Dashboard " + month))
			fmt.Println()

			if len(installments.List) == 0 {
				fmt.Println(cli.SubtleStyle.Render("No installments due this month."))
			}
			for _, inst := range installments.List {
				status := cli.SubtleStyle.Render("pending")
				if inst.Paid {
					status = cli.SuccessStyle.Render("paid")
				}
				label := inst.Name
				if !inst.IsSinglePayment() {
					label = fmt.Sprintf("%s (%d/%d)", inst.Name, inst.N, inst.Total)
				}
				if inst.PaymentType == model.PaymentTypeCard {
					label = cli.CardIcon + " " + label
				}
				fmt.Printf("  %-40s %12s  %s\n", label, cli.FormatMoney(inst.Amount), status)
			}

			fmt.Println()
			for _, income := range incomes.List {
				fmt.Printf("  %-40s %12s\n", income.Name, cli.FormatMoney(income.Amount))
			}

			summary := []string{
				fmt.Sprintf("Expenses  %s", cli.FormatMoney(installments.Total)),
				fmt.Sprintf("Paid      %s", cli.FormatMoney(installments.TotalPaid)),
				fmt.Sprintf("Income    %s", cli.FormatMoney(incomes.Total)),
				fmt.Sprintf("Leftover  %s", cli.FormatMoney(incomes.Total-installments.Total)),
			}
			fmt.Println()
			fmt.Println(cli.RenderBox(cli.ChartIcon+" Totals", strings.Join(summary, "\n")))

			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "month to show (YYYY-MM, default current)")
	cmd.Flags().IntVar(&next, "next", 0, "shift forward this many months")
	cmd.Flags().IntVar(&prev, "prev", 0, "shift back this many months")
	cmd.Flags().BoolVar(&noCash, "no-cash", false, "hide cash installments")
	cmd.Flags().BoolVar(&noCard, "no-card", false, "hide card installments")
	cmd.Flags().BoolVar(&noSingle, "no-single", false, "hide single payments")
	cmd.Flags().BoolVar(&noParcelado, "no-parcelado", false, "hide multi-installment purchases")
	cmd.Flags().StringSliceVar(&cardIDs, "card-id", nil, "only these cards (card payments)")
	cmd.Flags().StringSliceVar(&categoryIDs, "category", nil, "only these categories")
	cmd.Flags().Float64Var(&minAmount, "min", 0, "minimum installment amount")
	cmd.Flags().Float64Var(&maxAmount, "max", 0, "maximum installment amount")

	return cmd
}
