package model

import "time"

// Installment is one billing-cycle charge derived from an Expense. N is the
// 1-based sequence index and Total the installment count for the series;
// both are copied onto every installment for display.
type Installment struct {
	CreatedAt   time.Time   `json:"createdAt"`
	ID          string      `json:"id"`
	ExpenseID   string      `json:"expenseId"`
	N           int         `json:"n"`
	Total       int         `json:"total"`
	Amount      float64     `json:"amount"`
	DueMonth    string      `json:"dueMonth"` // YYYY-MM
	Paid        bool        `json:"paid"`
	PaymentType PaymentType `json:"paymentType"`
	CardID      string      `json:"cardId,omitempty"`
	Name        string      `json:"name"`
	CategoryID  string      `json:"categoryId,omitempty"`
	OwnerID     string      `json:"ownerId,omitempty"`
}

// IsSinglePayment reports whether the installment belongs to an "à vista"
// purchase rather than an "a prazo" series.
func (i Installment) IsSinglePayment() bool {
	return i.Total <= 1
}
