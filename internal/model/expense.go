package model

import "time"

// PaymentType indicates how an expense is paid.
type PaymentType string

const (
	// PaymentTypeCash covers cash, PIX and debit payments.
	PaymentTypeCash PaymentType = "cash"
	// PaymentTypeCard covers credit-card payments tied to a Card.
	PaymentTypeCard PaymentType = "card"
)

// ExpenseType distinguishes lump-sum purchases from multi-month ones.
type ExpenseType string

const (
	// ExpenseTypeSingle produces exactly one installment.
	ExpenseTypeSingle ExpenseType = "single"
	// ExpenseTypeParcelado produces one installment per month of the series.
	ExpenseTypeParcelado ExpenseType = "parcelado"
)

// Expense is the user-facing record of a purchase. It is never itself shown
// in monthly views; only its materialized installments are.
type Expense struct {
	CreatedAt             time.Time   `json:"createdAt"`
	ID                    string      `json:"id"`
	Name                  string      `json:"name"`
	TotalAmount           float64     `json:"totalAmount"`
	PerInstallment        float64     `json:"perInstallment"`
	IsPerInstallmentValue bool        `json:"isPerInstallmentValue"`
	CategoryID            string      `json:"categoryId,omitempty"`
	PurchaseDate          string      `json:"purchaseDate"` // YYYY-MM-DD
	PaymentType           PaymentType `json:"paymentType"`
	CardID                string      `json:"cardId,omitempty"`
	StartBillingMonth     string      `json:"startBillingMonth"` // YYYY-MM
	Type                  ExpenseType `json:"type"`
	Months                int         `json:"months"`
	OwnerID               string      `json:"ownerId,omitempty"`
}

// EffectiveMonths returns the number of installments the expense produces.
func (e Expense) EffectiveMonths() int {
	if e.Type == ExpenseTypeParcelado {
		return e.Months
	}
	return 1
}
