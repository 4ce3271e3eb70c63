package moneyed

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is an immutable pair of a decimal amount and a Currency. Amounts are
// stored in canonical form, with trailing fractional zeros trimmed, so
// "2.000" and "2.000000" construct equal, identically rendered values.
type Money struct {
	amount   decimal.Decimal
	currency Currency
}

// New builds a Money from a decimal amount and an already-resolved Currency.
func New(amount decimal.Decimal, currency Currency) Money {
	return Money{amount: canonical(amount), currency: currency}
}

// NewFromString builds a Money from a decimal string. An empty code selects
// the process-wide default currency; unknown codes fail with
// ErrUnknownCurrency.
func NewFromString(amount, code string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	c, err := resolveCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return New(d, c), nil
}

// MustFromString is NewFromString for literals known to be valid. It panics
// on error and is intended for static initialization and tests.
func MustFromString(amount, code string) Money {
	m, err := NewFromString(amount, code)
	if err != nil {
		panic(err)
	}
	return m
}

// NewFromFloat builds a Money from a float. The float is converted through
// its shortest exact decimal representation, so 1000000.0 becomes the
// decimal 1000000 with no binary-float artifacts.
func NewFromFloat(amount float64, code string) (Money, error) {
	c, err := resolveCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return New(decimal.NewFromFloat(amount), c), nil
}

// NewFromInt builds a Money from an integer amount.
func NewFromInt(amount int64, code string) (Money, error) {
	c, err := resolveCurrency(code)
	if err != nil {
		return Money{}, err
	}
	return New(decimal.NewFromInt(amount), c), nil
}

// Zero returns a zero-amount Money in the given currency.
func Zero(currency Currency) Money {
	return Money{currency: currency}
}

// ZeroDefault returns the canonical zero value: zero amount in the
// process-wide default currency.
func ZeroDefault() Money {
	return Zero(DefaultCurrency())
}

// Amount returns the canonical decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the money's currency record.
func (m Money) Currency() Currency {
	return m.currency
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) sameCurrency(o Money) bool {
	return m.currency.Code == o.currency.Code
}

// Add returns m+o. Both operands must share a currency; otherwise the
// operation fails with ErrCurrencyMismatch.
func (m Money) Add(o Money) (Money, error) {
	if !m.sameCurrency(o) {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.currency, o.currency)
	}
	return New(m.amount.Add(o.amount), m.currency), nil
}

// Sub returns m-o, failing with ErrCurrencyMismatch across currencies.
func (m Money) Sub(o Money) (Money, error) {
	if !m.sameCurrency(o) {
		return Money{}, fmt.Errorf("%w: %s - %s", ErrCurrencyMismatch, m.currency, o.currency)
	}
	return New(m.amount.Sub(o.amount), m.currency), nil
}

// Mul scales the amount by a plain numeric scalar. Money-by-Money
// multiplication has no defined meaning and is deliberately absent.
func (m Money) Mul(scalar decimal.Decimal) Money {
	return New(m.amount.Mul(scalar), m.currency)
}

// Div divides the amount by a plain numeric scalar.
func (m Money) Div(scalar decimal.Decimal) (Money, error) {
	if scalar.IsZero() {
		return Money{}, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, m)
	}
	return New(m.amount.Div(scalar), m.currency), nil
}

// Ratio divides by a Money of the same currency, producing the
// dimensionless decimal ratio of the two amounts. Dividing by a Money of a
// different currency fails with ErrCurrencyMismatch.
func (m Money) Ratio(o Money) (decimal.Decimal, error) {
	if !m.sameCurrency(o) {
		return decimal.Decimal{}, fmt.Errorf("%w: %s / %s", ErrCurrencyMismatch, m.currency, o.currency)
	}
	if o.IsZero() {
		return decimal.Decimal{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, m, o)
	}
	return canonical(m.amount.Div(o.amount)), nil
}

// Abs returns the money with a non-negative amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency}
}

// Neg returns the money with the amount negated.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency}
}

// PercentOf computes n percent of m: m * (n / 100).
func PercentOf(n decimal.Decimal, m Money) Money {
	return m.Mul(n.Div(decimal.NewFromInt(100)))
}

// Mod is the reflected percentage modulo carried over from the source
// semantics: for a numeric n it computes n percent of m, exactly like
// PercentOf. The forward form (a Money left operand) has no defined meaning
// and fails with ErrUnsupportedOperation. The asymmetry is historical and
// preserved deliberately.
func Mod(n any, m Money) (Money, error) {
	switch v := n.(type) {
	case Money:
		return Money{}, fmt.Errorf("%w: money %% money", ErrUnsupportedOperation)
	case decimal.Decimal:
		return PercentOf(v, m), nil
	case int:
		return PercentOf(decimal.NewFromInt(int64(v)), m), nil
	case int64:
		return PercentOf(decimal.NewFromInt(v), m), nil
	case float64:
		return PercentOf(decimal.NewFromFloat(v), m), nil
	default:
		return Money{}, fmt.Errorf("%w: %T %% money", ErrUnsupportedOperation, n)
	}
}

// Equal reports whether both moneys share a currency and an amount.
// Trailing-zero representation differences never matter.
func (m Money) Equal(o Money) bool {
	return m.sameCurrency(o) && m.amount.Equal(o.amount)
}

// EqualValue compares against a value of any kind. It never fails: any
// non-Money value, numbers included, simply compares unequal.
func (m Money) EqualValue(v any) bool {
	o, ok := v.(Money)
	return ok && m.Equal(o)
}

// Cmp orders two moneys of the same currency, returning -1, 0 or 1.
// Ordering across currencies fails with ErrCurrencyMismatch.
func (m Money) Cmp(o Money) (int, error) {
	if !m.sameCurrency(o) {
		return 0, fmt.Errorf("%w: %s <> %s", ErrCurrencyMismatch, m.currency, o.currency)
	}
	return m.amount.Cmp(o.amount), nil
}

// LessThan reports m < o for same-currency operands.
func (m Money) LessThan(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c < 0, err
}

// GreaterThan reports m > o for same-currency operands.
func (m Money) GreaterThan(o Money) (bool, error) {
	c, err := m.Cmp(o)
	return c > 0, err
}

// CompareValue orders against a value of any kind. Unlike equality,
// ordering is strict about types: non-Money operands fail with
// ErrComparisonType.
func (m Money) CompareValue(v any) (int, error) {
	o, ok := v.(Money)
	if !ok {
		return 0, fmt.Errorf("%w: %T", ErrComparisonType, v)
	}
	return m.Cmp(o)
}

// String renders the display form "<amount> <CODE>" with the amount in
// canonical zero-trimmed form, e.g. "1000000 USD".
func (m Money) String() string {
	return m.amount.String() + " " + m.currency.Code
}

// canonical trims trailing fractional zeros so equal values share one
// representation regardless of how they were written.
func canonical(d decimal.Decimal) decimal.Decimal {
	s := d.String()
	if !strings.Contains(s, ".") {
		return d
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	c, err := decimal.NewFromString(s)
	if err != nil {
		return d
	}
	return c
}
