// Package pricing computes subtotals, taxes, promo discounts and totals.
// All amounts are integers in the smallest currency unit.
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ComputeSubtotal returns unitPrice × quantity.
func ComputeSubtotal(unitPrice int64, quantity int) (int64, error) {
	if quantity < 1 || unitPrice < 0 {
		return 0, ErrInvalidInput
	}
	return unitPrice * int64(quantity), nil
}

// ComputeTax returns subtotal × rate rounded half-up to the smallest unit.
func ComputeTax(subtotal int64, rate decimal.Decimal) int64 {
	return roundHalfUp(decimal.NewFromInt(subtotal).Mul(rate))
}

// ComputeTotal returns subtotal + tax − discount, floored at zero.
func ComputeTotal(subtotal, tax, discount int64) int64 {
	return max(subtotal+tax-discount, 0)
}

// NormalizeCode trims and upper-cases a user supplied promo code.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Engine prices selections with a fixed tax rate and promo table.
type Engine struct {
	taxRate decimal.Decimal
	rules   map[string]Rule
}

// NewEngine creates an Engine. A nil rules map selects DefaultRules.
func NewEngine(taxRate decimal.Decimal, rules map[string]Rule) *Engine {
	if rules == nil {
		rules = DefaultRules()
	}
	table := make(map[string]Rule, len(rules))
	for code, r := range rules {
		table[NormalizeCode(code)] = r
	}
	return &Engine{taxRate: taxRate, rules: table}
}

// Lookup resolves a promo code against the rule table.
func (e *Engine) Lookup(code string) (string, Rule, error) {
	code = NormalizeCode(code)
	if code == "" {
		return "", Rule{}, ErrEmptyPromoCode
	}
	rule, ok := e.rules[code]
	if !ok {
		return "", Rule{}, ErrInvalidPromoCode
	}
	return code, rule, nil
}

// ApplyPromo makes code the single active promo of p and returns the
// discount it grants on subtotal. On error p is left untouched.
func (e *Engine) ApplyPromo(p *ActivePromo, code string, subtotal int64) (int64, error) {
	normalized, rule, err := e.Lookup(code)
	if err != nil {
		return 0, err
	}
	p.code = normalized
	p.rule = rule
	return rule.Discount(subtotal), nil
}

// Quote computes the full breakdown for unitPrice × quantity with the
// promo held by p, if any. p may be nil.
func (e *Engine) Quote(unitPrice int64, quantity int, p *ActivePromo) (Breakdown, error) {
	subtotal, err := ComputeSubtotal(unitPrice, quantity)
	if err != nil {
		return Breakdown{}, err
	}

	b := Breakdown{
		Subtotal: subtotal,
		Tax:      ComputeTax(subtotal, e.taxRate),
	}
	if p != nil && p.Active() {
		b.Discount = p.Discount(subtotal)
		b.PromoCode = p.Code()
	}
	b.Total = ComputeTotal(b.Subtotal, b.Tax, b.Discount)
	return b, nil
}

// ActivePromo holds at most one applied promo code. The zero value has no
// promo applied. Applying another code through Engine.ApplyPromo replaces
// the current one; discounts never accumulate.
type ActivePromo struct {
	code string
	rule Rule
}

// Active reports whether a promo is applied.
func (p *ActivePromo) Active() bool {
	return p.code != ""
}

// Code returns the applied code or the empty string.
func (p *ActivePromo) Code() string {
	return p.code
}

// Discount returns the discount of the applied promo on subtotal, or zero.
func (p *ActivePromo) Discount(subtotal int64) int64 {
	if !p.Active() {
		return 0
	}
	return p.rule.Discount(subtotal)
}

// Remove clears the applied promo. It is safe to call repeatedly.
func (p *ActivePromo) Remove() {
	*p = ActivePromo{}
}
