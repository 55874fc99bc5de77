package supabase

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fincontrol/fincontrol/internal/model"
)

// ListCards returns the owner's cards.
func (c *Client) ListCards(ctx context.Context, owner string) ([]model.Card, error) {
	var records []cardRecord
	if err := c.do(ctx, http.MethodGet, c.restURL("cards", listQuery(owner)), nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	cards := make([]model.Card, 0, len(records))
	for _, r := range records {
		cards = append(cards, r.toModel())
	}
	return cards, nil
}

// InsertCard inserts a card and returns the stored row.
func (c *Client) InsertCard(ctx context.Context, card model.Card) (model.Card, error) {
	var rows []cardRecord
	if err := c.do(ctx, http.MethodPost, c.restURL("cards", nil), []cardRecord{toCardRecord(card)}, &rows); err != nil {
		return model.Card{}, fmt.Errorf("failed to insert card: %w", err)
	}
	if len(rows) == 0 {
		return model.Card{}, fmt.Errorf("insert returned no card row")
	}
	return rows[0].toModel(), nil
}

// DeleteCard deletes a card by id and owner.
func (c *Client) DeleteCard(ctx context.Context, owner, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.restURL("cards", matchQuery(owner, "id", id)), nil, nil); err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}
	return nil
}

// ListCategories returns the owner's categories.
func (c *Client) ListCategories(ctx context.Context, owner string) ([]model.Category, error) {
	var records []categoryRecord
	if err := c.do(ctx, http.MethodGet, c.restURL("categories", listQuery(owner)), nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	categories := make([]model.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.toModel())
	}
	return categories, nil
}

// InsertCategory inserts a category and returns the stored row.
func (c *Client) InsertCategory(ctx context.Context, category model.Category) (model.Category, error) {
	var rows []categoryRecord
	if err := c.do(ctx, http.MethodPost, c.restURL("categories", nil), []categoryRecord{toCategoryRecord(category)}, &rows); err != nil {
		return model.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	if len(rows) == 0 {
		return model.Category{}, fmt.Errorf("insert returned no category row")
	}
	return rows[0].toModel(), nil
}

// DeleteCategory deletes a category; dangling references stay behind.
func (c *Client) DeleteCategory(ctx context.Context, owner, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.restURL("categories", matchQuery(owner, "id", id)), nil, nil); err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	return nil
}

// ListIncomes returns the owner's incomes.
func (c *Client) ListIncomes(ctx context.Context, owner string) ([]model.Income, error) {
	var records []incomeRecord
	if err := c.do(ctx, http.MethodGet, c.restURL("incomes", listQuery(owner)), nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list incomes: %w", err)
	}
	incomes := make([]model.Income, 0, len(records))
	for _, r := range records {
		incomes = append(incomes, r.toModel())
	}
	return incomes, nil
}

// InsertIncome inserts an income and returns the stored row.
func (c *Client) InsertIncome(ctx context.Context, income model.Income) (model.Income, error) {
	var rows []incomeRecord
	if err := c.do(ctx, http.MethodPost, c.restURL("incomes", nil), []incomeRecord{toIncomeRecord(income)}, &rows); err != nil {
		return model.Income{}, fmt.Errorf("failed to insert income: %w", err)
	}
	if len(rows) == 0 {
		return model.Income{}, fmt.Errorf("insert returned no income row")
	}
	return rows[0].toModel(), nil
}

// UpdateIncome patches an income's mutable fields.
func (c *Client) UpdateIncome(ctx context.Context, income model.Income) error {
	patch := map[string]any{
		"name":        income.Name,
		"amount":      income.Amount,
		"months":      income.Months,
		"start_date":  income.StartDate,
		"category_id": optional(income.CategoryID),
	}
	if err := c.do(ctx, http.MethodPatch, c.restURL("incomes", matchQuery(income.OwnerID, "id", income.ID)), patch, nil); err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	return nil
}

// DeleteIncome deletes an income.
func (c *Client) DeleteIncome(ctx context.Context, owner, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.restURL("incomes", matchQuery(owner, "id", id)), nil, nil); err != nil {
		return fmt.Errorf("failed to delete income: %w", err)
	}
	return nil
}

// ListExpenses returns the owner's expenses.
func (c *Client) ListExpenses(ctx context.Context, owner string) ([]model.Expense, error) {
	var records []expenseRecord
	if err := c.do(ctx, http.MethodGet, c.restURL("expenses", listQuery(owner)), nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	expenses := make([]model.Expense, 0, len(records))
	for _, r := range records {
		expenses = append(expenses, r.toModel())
	}
	return expenses, nil
}

// InsertExpense inserts an expense and returns the stored row.
func (c *Client) InsertExpense(ctx context.Context, expense model.Expense) (model.Expense, error) {
	var rows []expenseRecord
	if err := c.do(ctx, http.MethodPost, c.restURL("expenses", nil), []expenseRecord{toExpenseRecord(expense)}, &rows); err != nil {
		return model.Expense{}, fmt.Errorf("failed to insert expense: %w", err)
	}
	if len(rows) == 0 {
		return model.Expense{}, fmt.Errorf("insert returned no expense row")
	}
	return rows[0].toModel(), nil
}

// UpdateExpense patches an expense's mutable fields. Schedule fields are
// immutable after creation and are not sent.
func (c *Client) UpdateExpense(ctx context.Context, expense model.Expense) error {
	patch := map[string]any{
		"name":                     expense.Name,
		"total_amount":             expense.TotalAmount,
		"per_installment":          expense.PerInstallment,
		"is_per_installment_value": expense.IsPerInstallmentValue,
		"category_id":              optional(expense.CategoryID),
		"payment_type":             string(expense.PaymentType),
		"card_id":                  optional(expense.CardID),
	}
	if err := c.do(ctx, http.MethodPatch, c.restURL("expenses", matchQuery(expense.OwnerID, "id", expense.ID)), patch, nil); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

// DeleteExpense deletes the expense record; installment cleanup is the
// caller's second write.
func (c *Client) DeleteExpense(ctx context.Context, owner, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.restURL("expenses", matchQuery(owner, "id", id)), nil, nil); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ListInstallments returns the owner's installments.
func (c *Client) ListInstallments(ctx context.Context, owner string) ([]model.Installment, error) {
	var records []installmentRecord
	if err := c.do(ctx, http.MethodGet, c.restURL("installments", listQuery(owner)), nil, &records); err != nil {
		return nil, fmt.Errorf("failed to list installments: %w", err)
	}
	installments := make([]model.Installment, 0, len(records))
	for _, r := range records {
		installments = append(installments, r.toModel())
	}
	return installments, nil
}

// InsertInstallments batch-inserts a materialized series.
func (c *Client) InsertInstallments(ctx context.Context, installments []model.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	rows := make([]installmentRecord, 0, len(installments))
	for _, inst := range installments {
		rows = append(rows, toInstallmentRecord(inst))
	}
	if err := c.do(ctx, http.MethodPost, c.restURL("installments", nil), rows, nil); err != nil {
		return fmt.Errorf("failed to insert installments: %w", err)
	}
	return nil
}

// UpdateInstallmentPaid toggles a single paid flag.
func (c *Client) UpdateInstallmentPaid(ctx context.Context, owner, id string, paid bool) error {
	patch := map[string]any{"paid": paid}
	if err := c.do(ctx, http.MethodPatch, c.restURL("installments", matchQuery(owner, "id", id)), patch, nil); err != nil {
		return fmt.Errorf("failed to update installment: %w", err)
	}
	return nil
}

// UpdateInstallmentsPaidByCard toggles a card's month of charges.
func (c *Client) UpdateInstallmentsPaidByCard(ctx context.Context, owner, cardID, dueMonth string, paid bool) error {
	q := matchQuery(owner, "card_id", cardID)
	q.Set("due_month", eq(dueMonth))
	patch := map[string]any{"paid": paid}
	if err := c.do(ctx, http.MethodPatch, c.restURL("installments", q), patch, nil); err != nil {
		return fmt.Errorf("failed to update card statement: %w", err)
	}
	return nil
}

// RewriteInstallmentsForExpense propagates an expense edit to its series.
func (c *Client) RewriteInstallmentsForExpense(ctx context.Context, owner, expenseID string, amount float64, name, categoryID string) error {
	patch := map[string]any{
		"amount":      amount,
		"name":        name,
		"category_id": optional(categoryID),
	}
	if err := c.do(ctx, http.MethodPatch, c.restURL("installments", matchQuery(owner, "expense_id", expenseID)), patch, nil); err != nil {
		return fmt.Errorf("failed to rewrite installments: %w", err)
	}
	return nil
}

// DeleteInstallment deletes a single installment.
func (c *Client) DeleteInstallment(ctx context.Context, owner, id string) error {
	if err := c.do(ctx, http.MethodDelete, c.restURL("installments", matchQuery(owner, "id", id)), nil, nil); err != nil {
		return fmt.Errorf("failed to delete installment: %w", err)
	}
	return nil
}

// DeleteInstallmentsByExpense deletes an expense's whole series.
func (c *Client) DeleteInstallmentsByExpense(ctx context.Context, owner, expenseID string) error {
	if err := c.do(ctx, http.MethodDelete, c.restURL("installments", matchQuery(owner, "expense_id", expenseID)), nil, nil); err != nil {
		return fmt.Errorf("failed to delete installments: %w", err)
	}
	return nil
}

// matchQuery is the common mutation filter: one column equality plus owner.
func matchQuery(owner, column, value string) url.Values {
	q := url.Values{}
	q.Set(column, eq(value))
	q.Set("user_id", eq(owner))
	return q
}
