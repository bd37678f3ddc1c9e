package pricing

import (
	"net/http"

	"github.com/shopspring/decimal"

	"github.com/nekogravitycat/experience-booking/internal/pkg/apperror"
)

var (
	ErrInvalidInput     = apperror.New(http.StatusBadRequest, "quantity must be at least 1 and price must not be negative")
	ErrInvalidPromoCode = apperror.New(http.StatusUnprocessableEntity, "invalid promo code")
	ErrEmptyPromoCode   = apperror.New(http.StatusBadRequest, "please enter a promo code")
)

// DefaultTaxRate is applied to subtotals when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.06")

type RuleKind string

const (
	RulePercentage RuleKind = "percentage"
	RuleFlat       RuleKind = "flat"
)

// Rule describes how a promo code discounts a subtotal.
// Rate is used by percentage rules (0.10 is ten percent), Amount by flat rules.
type Rule struct {
	Kind   RuleKind
	Rate   decimal.Decimal
	Amount int64
}

// Discount computes the discount this rule grants on subtotal.
// The discount never exceeds the subtotal and is never negative.
func (r Rule) Discount(subtotal int64) int64 {
	var d int64
	switch r.Kind {
	case RulePercentage:
		d = roundHalfUp(decimal.NewFromInt(subtotal).Mul(r.Rate))
	case RuleFlat:
		d = r.Amount
	}
	return max(min(d, subtotal), 0)
}

// Breakdown is the derived price of a selection.
type Breakdown struct {
	Subtotal  int64
	Tax       int64
	Discount  int64
	Total     int64
	PromoCode string
}

// DefaultRules is the built-in promo table.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"SAVE10":  {Kind: RulePercentage, Rate: decimal.RequireFromString("0.10")},
		"FLAT100": {Kind: RuleFlat, Amount: 100},
	}
}

func roundHalfUp(d decimal.Decimal) int64 {
	return d.Round(0).IntPart()
}
