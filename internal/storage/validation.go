package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fincontrol/fincontrol/internal/model"
)

// Validation errors.
var (
	ErrNilContext         = errors.New("context cannot be nil")
	ErrEmptyString        = errors.New("string parameter cannot be empty")
	ErrEmptySlice         = errors.New("slice cannot be empty")
	ErrInvalidRecord      = errors.New("invalid record")
	ErrInvalidExpense     = errors.New("invalid expense")
	ErrInvalidInstallment = errors.New("invalid installment")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

func validateExpense(e model.Expense) error {
	if e.ID == "" {
		return fmt.Errorf("%w: missing ID", ErrInvalidExpense)
	}
	if e.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidExpense)
	}
	if e.StartBillingMonth == "" {
		return fmt.Errorf("%w: missing start billing month", ErrInvalidExpense)
	}
	return nil
}

func validateInstallments(installments []model.Installment) error {
	if len(installments) == 0 {
		return fmt.Errorf("%w: installments", ErrEmptySlice)
	}
	for i, inst := range installments {
		if inst.ID == "" {
			return fmt.Errorf("installment at index %d: %w: missing ID", i, ErrInvalidInstallment)
		}
		if inst.ExpenseID == "" {
			return fmt.Errorf("installment at index %d: %w: missing expense ID", i, ErrInvalidInstallment)
		}
		if inst.DueMonth == "" {
			return fmt.Errorf("installment at index %d: %w: missing due month", i, ErrInvalidInstallment)
		}
		if inst.N < 1 {
			return fmt.Errorf("installment at index %d: %w: sequence index must be positive", i, ErrInvalidInstallment)
		}
	}
	return nil
}
