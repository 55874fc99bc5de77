package model

import "time"

// CategoryType indicates whether a category tags incomes or expenses.
type CategoryType string

const (
	// CategoryTypeIncome represents categories applied to incomes.
	CategoryTypeIncome CategoryType = "income"
	// CategoryTypeExpense represents categories applied to expenses.
	CategoryTypeExpense CategoryType = "expense"
)

// IsValid reports whether the category type is one of the known values.
func (t CategoryType) IsValid() bool {
	return t == CategoryTypeIncome || t == CategoryTypeExpense
}

// Category is a tag applied to incomes or expenses. A category referenced by
// a deleted record is tolerated; display logic renders it as removed.
type Category struct {
	CreatedAt time.Time    `json:"createdAt"`
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	OwnerID   string       `json:"ownerId,omitempty"`
}
