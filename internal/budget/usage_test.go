package budget

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fincontrol/fincontrol/internal/model"
)

func TestCategoryInUse(t *testing.T) {
	state := model.AppState{
		Incomes:      []model.Income{{ID: "i1", CategoryID: "salary"}},
		Expenses:     []model.Expense{{ID: "e1", CategoryID: "food"}},
		Installments: []model.Installment{{ID: "n1", CategoryID: "transport"}},
	}

	assert.True(t, CategoryInUse(state, "salary"))
	assert.True(t, CategoryInUse(state, "food"))
	assert.True(t, CategoryInUse(state, "transport"))
	assert.False(t, CategoryInUse(state, "unused"))
	assert.False(t, CategoryInUse(model.AppState{}, "salary"))
}

func TestCardInUse(t *testing.T) {
	state := model.AppState{
		Expenses:     []model.Expense{{ID: "e1", CardID: "nubank"}},
		Installments: []model.Installment{{ID: "n1", CardID: "itau"}},
	}

	assert.True(t, CardInUse(state, "nubank"))
	assert.True(t, CardInUse(state, "itau"))
	assert.False(t, CardInUse(state, "visa"))
}
