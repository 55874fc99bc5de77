package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fincontrol/fincontrol/internal/budget"
	"github.com/fincontrol/fincontrol/internal/model"
)

func TestConfigValidate(t *testing.T) {
	valid := Config{
		SpreadsheetID:      "sheet-id",
		SheetName:          "Report",
		ServiceAccountPath: "/tmp/key.json",
	}
	assert.NoError(t, valid.Validate())

	missing := valid
	missing.SpreadsheetID = ""
	assert.Error(t, missing.Validate())

	missing = valid
	missing.SheetName = ""
	assert.Error(t, missing.Validate())

	missing = valid
	missing.ServiceAccountPath = ""
	assert.Error(t, missing.Validate())
}

func TestBuildReportValues(t *testing.T) {
	installments := budget.MonthInstallments{
		List: []model.Installment{
			{Name: "Notebook", N: 2, Total: 3, Amount: 100, Paid: true, PaymentType: model.PaymentTypeCard},
			{Name: "Mercado", N: 1, Total: 1, Amount: 250, PaymentType: model.PaymentTypeCash},
		},
		Total:     350,
		TotalPaid: 100,
	}
	incomes := budget.MonthIncomes{
		List:  []model.Income{{Name: "Salário", Amount: 5000}},
		Total: 5000,
	}

	values := buildReportValues("2024-05", installments, incomes)
	require.NotEmpty(t, values)

	assert.Equal(t, []any{"Report 2024-05"}, values[0])
	assert.Equal(t, []any{"Expense", "Installment", "Payment", "Amount", "Paid"}, values[2])
	assert.Equal(t, []any{"Notebook", "2/3", "card", 100.0, "yes"}, values[3])
	assert.Equal(t, []any{"Mercado", "1/1", "cash", 250.0, "no"}, values[4])

	last := values[len(values)-1]
	assert.Equal(t, "Leftover", last[0])
	assert.InDelta(t, 4650.0, last[3].(float64), 0.001)
}

func TestBuildReportValuesEmptyMonth(t *testing.T) {
	values := buildReportValues("2024-01", budget.MonthInstallments{}, budget.MonthIncomes{})

	last := values[len(values)-1]
	assert.Equal(t, "Leftover", last[0])
	assert.InDelta(t, 0.0, last[3].(float64), 0.001)
}
