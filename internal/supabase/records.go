package supabase

import (
	"time"

	"github.com/fincontrol/fincontrol/internal/model"
)

// Wire records mirror the remote snake_case schema. Conversions in this file
// are the single place where the two field spellings meet.

type cardRecord struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (r cardRecord) toModel() model.Card {
	return model.Card{ID: r.ID, OwnerID: r.UserID, Name: r.Name, CreatedAt: r.CreatedAt}
}

func toCardRecord(c model.Card) cardRecord {
	return cardRecord{ID: c.ID, UserID: c.OwnerID, Name: c.Name}
}

type categoryRecord struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id,omitempty"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

func (r categoryRecord) toModel() model.Category {
	return model.Category{
		ID: r.ID, OwnerID: r.UserID, Name: r.Name,
		Type: model.CategoryType(r.Type), CreatedAt: r.CreatedAt,
	}
}

func toCategoryRecord(c model.Category) categoryRecord {
	return categoryRecord{ID: c.ID, UserID: c.OwnerID, Name: c.Name, Type: string(c.Type)}
}

type incomeRecord struct {
	ID         string    `json:"id,omitempty"`
	UserID     string    `json:"user_id,omitempty"`
	Name       string    `json:"name"`
	Amount     float64   `json:"amount"`
	Months     int       `json:"months"`
	StartDate  string    `json:"start_date"`
	CategoryID *string   `json:"category_id"`
	CreatedAt  time.Time `json:"created_at,omitempty"`
}

func (r incomeRecord) toModel() model.Income {
	return model.Income{
		ID: r.ID, OwnerID: r.UserID, Name: r.Name, Amount: r.Amount,
		Months: r.Months, StartDate: r.StartDate,
		CategoryID: deref(r.CategoryID), CreatedAt: r.CreatedAt,
	}
}

func toIncomeRecord(i model.Income) incomeRecord {
	return incomeRecord{
		ID: i.ID, UserID: i.OwnerID, Name: i.Name, Amount: i.Amount,
		Months: i.Months, StartDate: i.StartDate, CategoryID: optional(i.CategoryID),
	}
}

type expenseRecord struct {
	ID                    string    `json:"id,omitempty"`
	UserID                string    `json:"user_id,omitempty"`
	Name                  string    `json:"name"`
	TotalAmount           float64   `json:"total_amount"`
	PerInstallment        float64   `json:"per_installment"`
	IsPerInstallmentValue bool      `json:"is_per_installment_value"`
	CategoryID            *string   `json:"category_id"`
	PurchaseDate          string    `json:"purchase_date,omitempty"`
	PaymentType           string    `json:"payment_type"`
	CardID                *string   `json:"card_id"`
	StartBillingMonth     string    `json:"start_billing_month"`
	Type                  string    `json:"type"`
	Months                int       `json:"months"`
	CreatedAt             time.Time `json:"created_at,omitempty"`
}

func (r expenseRecord) toModel() model.Expense {
	return model.Expense{
		ID: r.ID, OwnerID: r.UserID, Name: r.Name,
		TotalAmount: r.TotalAmount, PerInstallment: r.PerInstallment,
		IsPerInstallmentValue: r.IsPerInstallmentValue,
		CategoryID:            deref(r.CategoryID), PurchaseDate: r.PurchaseDate,
		PaymentType: model.PaymentType(r.PaymentType), CardID: deref(r.CardID),
		StartBillingMonth: r.StartBillingMonth, Type: model.ExpenseType(r.Type),
		Months: r.Months, CreatedAt: r.CreatedAt,
	}
}

func toExpenseRecord(e model.Expense) expenseRecord {
	return expenseRecord{
		ID: e.ID, UserID: e.OwnerID, Name: e.Name,
		TotalAmount: e.TotalAmount, PerInstallment: e.PerInstallment,
		IsPerInstallmentValue: e.IsPerInstallmentValue,
		CategoryID:            optional(e.CategoryID), PurchaseDate: e.PurchaseDate,
		PaymentType: string(e.PaymentType), CardID: optional(e.CardID),
		StartBillingMonth: e.StartBillingMonth, Type: string(e.Type), Months: e.Months,
	}
}

type installmentRecord struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id,omitempty"`
	ExpenseID   string    `json:"expense_id"`
	N           int       `json:"n"`
	Total       int       `json:"total"`
	Amount      float64   `json:"amount"`
	DueMonth    string    `json:"due_month"`
	Paid        bool      `json:"paid"`
	PaymentType string    `json:"payment_type"`
	CardID      *string   `json:"card_id"`
	Name        string    `json:"name"`
	CategoryID  *string   `json:"category_id"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
}

func (r installmentRecord) toModel() model.Installment {
	return model.Installment{
		ID: r.ID, OwnerID: r.UserID, ExpenseID: r.ExpenseID,
		N: r.N, Total: r.Total, Amount: r.Amount, DueMonth: r.DueMonth,
		Paid: r.Paid, PaymentType: model.PaymentType(r.PaymentType),
		CardID: deref(r.CardID), Name: r.Name,
		CategoryID: deref(r.CategoryID), CreatedAt: r.CreatedAt,
	}
}

func toInstallmentRecord(i model.Installment) installmentRecord {
	return installmentRecord{
		ID: i.ID, UserID: i.OwnerID, ExpenseID: i.ExpenseID,
		N: i.N, Total: i.Total, Amount: i.Amount, DueMonth: i.DueMonth,
		Paid: i.Paid, PaymentType: string(i.PaymentType),
		CardID: optional(i.CardID), Name: i.Name, CategoryID: optional(i.CategoryID),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
