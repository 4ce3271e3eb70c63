package moneyed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// MultiMoney holds independent amounts across several currencies at once,
// at most one entry per currency code. A missing entry always means a zero
// amount in that currency, and entries that net to zero are treated as
// absent for every comparison (zero-equivalence). Values are immutable:
// arithmetic returns new aggregates.
type MultiMoney struct {
	moneys map[string]Money
}

// NewMultiMoney builds an aggregate from zero or more Money values, summing
// amounts per currency code.
func NewMultiMoney(moneys ...Money) MultiMoney {
	return MultiMoney{}.merge(moneys...)
}

// merge returns a copy with the given moneys accumulated per currency.
func (mm MultiMoney) merge(moneys ...Money) MultiMoney {
	out := make(map[string]Money, len(mm.moneys)+len(moneys))
	for code, m := range mm.moneys {
		out[code] = m
	}
	for _, m := range moneys {
		code := m.Currency().Code
		if held, ok := out[code]; ok {
			sum, err := held.Add(m)
			if err != nil {
				// entries are keyed by currency code, so this cannot happen
				panic(err)
			}
			out[code] = sum
		} else {
			out[code] = m
		}
	}
	return MultiMoney{moneys: out}
}

// nonZero returns the entries that are observationally present.
func (mm MultiMoney) nonZero() map[string]Money {
	return lo.PickBy(mm.moneys, func(_ string, m Money) bool {
		return !m.IsZero()
	})
}

func (mm MultiMoney) amountFor(code string) decimal.Decimal {
	if m, ok := mm.moneys[code]; ok {
		return m.Amount()
	}
	return decimal.Zero
}

// Get returns the Money held for a currency code, or a zero Money in that
// currency when absent. It never fails for a well-formed code: codes not in
// the currency registry get a bare record carrying only the code.
func (mm MultiMoney) Get(code string) Money {
	norm := strings.ToUpper(code)
	if m, ok := mm.moneys[norm]; ok {
		return m
	}
	c, err := Lookup(norm)
	if err != nil {
		c = Currency{Code: norm}
	}
	return Zero(c)
}

// Currencies returns the sorted codes of all non-zero components.
func (mm MultiMoney) Currencies() []string {
	codes := lo.Keys(mm.nonZero())
	sort.Strings(codes)
	return codes
}

// Moneys returns the non-zero components sorted by currency code.
func (mm MultiMoney) Moneys() []Money {
	nz := mm.nonZero()
	return lo.Map(mm.Currencies(), func(code string, _ int) Money {
		return nz[code]
	})
}

// IsZero reports whether every component nets to zero.
func (mm MultiMoney) IsZero() bool {
	return len(mm.nonZero()) == 0
}

// AddMoney returns the aggregate with one more Money merged in.
func (mm MultiMoney) AddMoney(m Money) MultiMoney {
	return mm.merge(m)
}

// SubMoney returns the aggregate with a Money subtracted.
func (mm MultiMoney) SubMoney(m Money) MultiMoney {
	return mm.merge(m.Neg())
}

// Add merges two aggregates over the union of their currencies.
func (mm MultiMoney) Add(o MultiMoney) MultiMoney {
	return mm.merge(lo.Values(o.moneys)...)
}

// Sub subtracts an aggregate component-wise, a missing side counting as zero.
func (mm MultiMoney) Sub(o MultiMoney) MultiMoney {
	return mm.Add(o.Neg())
}

// AddValue adds a Money or MultiMoney supplied dynamically. Any other kind
// fails with ErrUnsupportedOperation.
func (mm MultiMoney) AddValue(v any) (MultiMoney, error) {
	switch o := v.(type) {
	case Money:
		return mm.AddMoney(o), nil
	case MultiMoney:
		return mm.Add(o), nil
	default:
		return MultiMoney{}, fmt.Errorf("%w: multimoney + %T", ErrUnsupportedOperation, v)
	}
}

// SubValue subtracts a Money or MultiMoney supplied dynamically.
func (mm MultiMoney) SubValue(v any) (MultiMoney, error) {
	switch o := v.(type) {
	case Money:
		return mm.SubMoney(o), nil
	case MultiMoney:
		return mm.Sub(o), nil
	default:
		return MultiMoney{}, fmt.Errorf("%w: multimoney - %T", ErrUnsupportedOperation, v)
	}
}

// Neg negates every component.
func (mm MultiMoney) Neg() MultiMoney {
	return mm.mapEach(Money.Neg)
}

// Mul scales every component's amount by the scalar uniformly.
func (mm MultiMoney) Mul(scalar decimal.Decimal) MultiMoney {
	return mm.mapEach(func(m Money) Money {
		return m.Mul(scalar)
	})
}

// Div scales every component's amount by 1/scalar.
func (mm MultiMoney) Div(scalar decimal.Decimal) (MultiMoney, error) {
	if scalar.IsZero() {
		return MultiMoney{}, fmt.Errorf("%w: multimoney / 0", ErrDivisionByZero)
	}
	out := mm.mapEach(func(m Money) Money {
		d, _ := m.Div(scalar)
		return d
	})
	return out, nil
}

func (mm MultiMoney) mapEach(f func(Money) Money) MultiMoney {
	out := make(map[string]Money, len(mm.moneys))
	for code, m := range mm.moneys {
		out[code] = f(m)
	}
	return MultiMoney{moneys: out}
}

// Equal reports whether both aggregates hold identical currency-to-amount
// mappings once zero entries are dropped.
func (mm MultiMoney) Equal(o MultiMoney) bool {
	a, b := mm.nonZero(), o.nonZero()
	if len(a) != len(b) {
		return false
	}
	for code, m := range a {
		held, ok := b[code]
		if !ok || !m.Equal(held) {
			return false
		}
	}
	return true
}

// EqualMoney collapses the aggregate against a single Money: equal iff
// exactly one non-zero component remains and it matches the Money's
// currency and amount. An all-zero aggregate equals a zero Money of any
// currency.
func (mm MultiMoney) EqualMoney(m Money) bool {
	nz := mm.nonZero()
	if m.IsZero() {
		return len(nz) == 0
	}
	held, ok := nz[m.Currency().Code]
	return len(nz) == 1 && ok && held.Equal(m)
}

// EqualDecimal collapses the aggregate against a plain number: equal iff
// exactly one non-zero component remains, its currency is the process-wide
// default currency, and its amount equals the number. An all-zero aggregate
// equals 0.
func (mm MultiMoney) EqualDecimal(d decimal.Decimal) bool {
	nz := mm.nonZero()
	if d.IsZero() {
		return len(nz) == 0
	}
	held, ok := nz[DefaultCurrency().Code]
	return len(nz) == 1 && ok && held.Amount().Equal(d)
}

// EqualValue compares against a value of any kind. It never fails:
// unsupported kinds simply compare unequal.
func (mm MultiMoney) EqualValue(v any) bool {
	switch o := v.(type) {
	case MultiMoney:
		return mm.Equal(o)
	case Money:
		return mm.EqualMoney(o)
	case decimal.Decimal:
		return mm.EqualDecimal(o)
	case int:
		return mm.EqualDecimal(decimal.NewFromInt(int64(o)))
	case int64:
		return mm.EqualDecimal(decimal.NewFromInt(o))
	case float64:
		return mm.EqualDecimal(decimal.NewFromFloat(o))
	default:
		return false
	}
}

// Ordering is the outcome of comparing two MultiMoney values under the
// vector-dominance partial order. Incomparable means the currencies pull in
// opposite directions: neither value is less or greater, and callers must
// not assume trichotomy.
type Ordering int

const (
	OrderingIncomparable Ordering = iota
	OrderingLess
	OrderingEqual
	OrderingGreater
)

// String returns a short name for the ordering outcome.
func (o Ordering) String() string {
	switch o {
	case OrderingLess:
		return "less"
	case OrderingEqual:
		return "equal"
	case OrderingGreater:
		return "greater"
	default:
		return "incomparable"
	}
}

// Compare orders two aggregates by component-wise dominance over the union
// of their currency codes, a missing code contributing zero. A is less than
// B only when every component of A is <= the matching component of B and at
// least one is strictly less. Amounts in different currencies are never
// implicitly convertible, so no scalar total is involved.
func (mm MultiMoney) Compare(o MultiMoney) Ordering {
	codes := lo.Uniq(append(lo.Keys(mm.moneys), lo.Keys(o.moneys)...))

	le, ge := true, true
	for _, code := range codes {
		switch mm.amountFor(code).Cmp(o.amountFor(code)) {
		case -1:
			ge = false
		case 1:
			le = false
		}
	}

	switch {
	case le && ge:
		return OrderingEqual
	case le:
		return OrderingLess
	case ge:
		return OrderingGreater
	default:
		return OrderingIncomparable
	}
}

// LessThan reports strict component-wise dominance of o over mm. False for
// equal or incomparable values.
func (mm MultiMoney) LessThan(o MultiMoney) bool {
	return mm.Compare(o) == OrderingLess
}

// GreaterThan reports strict component-wise dominance of mm over o.
func (mm MultiMoney) GreaterThan(o MultiMoney) bool {
	return mm.Compare(o) == OrderingGreater
}

// String renders the non-zero components sorted by code, e.g.
// "1000 BTC, 1000000 USD".
func (mm MultiMoney) String() string {
	parts := lo.Map(mm.Moneys(), func(m Money, _ int) string {
		return m.String()
	})
	return strings.Join(parts, ", ")
}
