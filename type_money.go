package finbook

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money pairs an exact decimal amount with a currency code for
// display. Amounts are stored and computed as decimals; Money only
// exists at the presentation boundary.
type Money struct {
	value decimal.Decimal
	cur   string
}

// M builds a Money from an exact decimal value and a currency code.
func M(value decimal.Decimal, currency string) Money {
	return Money{value: value, cur: currency}
}

// Currency returns the money's currency code.
func (m Money) Currency() string { return m.cur }

// Amount returns the exact decimal value.
func (m Money) Amount() decimal.Decimal { return m.value }

// currency resolves the full currency definition; go-money falls back
// to a default for unknown codes, so this never returns nil.
func (m Money) currency() *money.Currency {
	return money.New(0, m.cur).Currency()
}

// String renders the amount with the currency's symbol and fraction
// rules, e.g. "$1,234.50".
func (m Money) String() string {
	cur := m.currency()
	minor := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(minor.IntPart())
}

func (m Money) IsZero() bool     { return m.value.IsZero() }
func (m Money) IsNegative() bool { return m.value.IsNegative() }

// Add returns the sum; both operands must share a currency, the empty
// currency is weak and adopts the other's.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value), cur: mergeCur(m, n)} }

// Sub returns the difference under the same currency rules as Add.
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value), cur: mergeCur(m, n)} }

func mergeCur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch: " + a.cur + " != " + b.cur)
	}
	return a.cur
}
