package budget

import (
	"github.com/fincontrol/fincontrol/internal/model"
)

// MonthInstallments is the month-scoped view over the installment collection.
type MonthInstallments struct {
	List      []model.Installment
	Total     float64
	TotalPaid float64
}

// MonthIncomes is the month-scoped view over the income collection.
type MonthIncomes struct {
	List  []model.Income
	Total float64
}

// InstallmentsInMonth filters installments due in the given month and sums
// their amounts, overall and paid-only.
func InstallmentsInMonth(installments []model.Installment, month string) MonthInstallments {
	var out MonthInstallments
	for _, inst := range installments {
		if inst.DueMonth != month {
			continue
		}
		out.List = append(out.List, inst)
		out.Total += inst.Amount
		if inst.Paid {
			out.TotalPaid += inst.Amount
		}
	}
	return out
}

// IncomesInMonth selects incomes active in the given month. An income is
// active for a fixed window of consecutive months: from the month of its
// start date through months-1 later, inclusive.
func IncomesInMonth(incomes []model.Income, month string) MonthIncomes {
	target := ParseYMD(month)
	anchor := AddMonths(target, 0)

	var out MonthIncomes
	for _, inc := range incomes {
		months := inc.Months
		if months < 1 {
			months = 1
		}
		first := AddMonths(ParseYMD(inc.StartDate), 0)
		last := AddMonths(first, months-1)
		if anchor.Before(first) || anchor.After(last) {
			continue
		}
		out.List = append(out.List, inc)
		out.Total += inc.Amount
	}
	return out
}

// Leftover is the month's income total minus its installment total. It may
// be negative; no clamping.
func Leftover(incomes []model.Income, installments []model.Installment, month string) float64 {
	return IncomesInMonth(incomes, month).Total - InstallmentsInMonth(installments, month).Total
}
