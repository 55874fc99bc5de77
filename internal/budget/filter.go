package budget

import (
	"github.com/fincontrol/fincontrol/internal/model"
)

// Filter is a composable predicate over installments used to narrow a
// month's list. All conditions are ANDed; an empty card or category
// restriction set means no restriction.
type Filter struct {
	Cash        bool
	Card        bool
	CardIDs     []string
	SinglePay   bool // à vista: total <= 1
	Installment bool // a prazo: total > 1
	CategoryIDs []string
	MinAmount   *float64
	MaxAmount   *float64
}

// NewFilter returns a filter that matches every installment.
func NewFilter() Filter {
	return Filter{Cash: true, Card: true, SinglePay: true, Installment: true}
}

// Match reports whether the installment passes every enabled condition. The
// predicate is pure and reads only fields present on the installment.
func (f Filter) Match(inst model.Installment) bool {
	switch inst.PaymentType {
	case model.PaymentTypeCard:
		if !f.Card {
			return false
		}
		if len(f.CardIDs) > 0 && !contains(f.CardIDs, inst.CardID) {
			return false
		}
	default:
		if !f.Cash {
			return false
		}
	}

	if inst.IsSinglePayment() {
		if !f.SinglePay {
			return false
		}
	} else if !f.Installment {
		return false
	}

	if len(f.CategoryIDs) > 0 && !contains(f.CategoryIDs, inst.CategoryID) {
		return false
	}

	if f.MinAmount != nil && inst.Amount < *f.MinAmount {
		return false
	}
	if f.MaxAmount != nil && inst.Amount > *f.MaxAmount {
		return false
	}
	return true
}

// Apply returns the installments that pass the filter, preserving order.
func (f Filter) Apply(installments []model.Installment) []model.Installment {
	var out []model.Installment
	for _, inst := range installments {
		if f.Match(inst) {
			out = append(out, inst)
		}
	}
	return out
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
