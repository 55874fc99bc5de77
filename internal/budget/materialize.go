package budget

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ErrInvalidMonths is returned when an expense would produce no installments.
var ErrInvalidMonths = errors.New("expense months must be at least 1")

// PerInstallmentAmount returns the amount charged on each installment of the
// expense: the user-specified per-installment value verbatim, or the total
// divided by the installment count rounded half-up to cents. The sum of
// rounded installments may drift from the stated total by a few cents; that
// drift is documented behavior and is not redistributed.
func PerInstallmentAmount(e model.Expense) float64 {
	if e.IsPerInstallmentValue {
		return e.PerInstallment
	}
	months := e.EffectiveMonths()
	if months < 1 {
		months = 1
	}
	return RoundCents(e.TotalAmount / float64(months))
}

// RoundCents rounds to two decimal places, half away from zero.
func RoundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// Materialize expands an expense into its ordered installment series: one
// record per consecutive calendar month starting at StartBillingMonth, or a
// single record for non-parcelado expenses. Materialization happens once at
// creation time; the records it returns are persisted independently and
// never recomputed on read.
func Materialize(e model.Expense) ([]model.Installment, error) {
	months := e.EffectiveMonths()
	if months < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMonths, months)
	}

	per := PerInstallmentAmount(e)
	start := ParseYMD(e.StartBillingMonth)
	now := time.Now().UTC()

	installments := make([]model.Installment, 0, months)
	for i := 0; i < months; i++ {
		installments = append(installments, model.Installment{
			ID:          uuid.NewString(),
			ExpenseID:   e.ID,
			N:           i + 1,
			Total:       months,
			Amount:      per,
			DueMonth:    MonthKey(AddMonths(start, i)),
			Paid:        false,
			PaymentType: e.PaymentType,
			CardID:      e.CardID,
			Name:        e.Name,
			CategoryID:  e.CategoryID,
			OwnerID:     e.OwnerID,
			CreatedAt:   now,
		})
	}
	return installments, nil
}
