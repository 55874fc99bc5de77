package budget

import (
	"github.com/fincontrol/fincontrol/internal/model"
)

// CategoryInUse reports whether any income, expense or installment still
// references the category. Deleting an in-use category requires explicit
// confirmation but is never blocked; dangling references are tolerated.
func CategoryInUse(state model.AppState, categoryID string) bool {
	for _, inc := range state.Incomes {
		if inc.CategoryID == categoryID {
			return true
		}
	}
	for _, exp := range state.Expenses {
		if exp.CategoryID == categoryID {
			return true
		}
	}
	for _, inst := range state.Installments {
		if inst.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// CardInUse reports whether any expense or installment still references the card.
func CardInUse(state model.AppState, cardID string) bool {
	for _, exp := range state.Expenses {
		if exp.CardID == cardID {
			return true
		}
	}
	for _, inst := range state.Installments {
		if inst.CardID == cardID {
			return true
		}
	}
	return false
}
