package moneyed

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewFromStringTrailingZeros(t *testing.T) {
	m1 := MustFromString("2.000", "PLN")
	m2 := MustFromString("2.000000", "PLN")

	if !m1.Equal(m2) {
		t.Errorf("%v != %v, want equal regardless of trailing zeros", m1, m2)
	}
	if m1.String() != "2 PLN" {
		t.Errorf("String() = %q, want %q", m1.String(), "2 PLN")
	}
	if m1.String() != m2.String() {
		t.Errorf("renderings differ: %q vs %q", m1.String(), m2.String())
	}
}

func TestNewFromFloatExact(t *testing.T) {
	m, err := NewFromFloat(1000000.0, "USD")
	if err != nil {
		t.Fatalf("NewFromFloat error: %v", err)
	}
	if got := m.Amount().String(); got != "1000000" {
		t.Errorf("Amount() = %q, want 1000000 with no float artifacts", got)
	}
}

func TestNewDefaultCurrency(t *testing.T) {
	m := MustFromString("5", "")
	if m.Currency().Code != DefaultCurrencyCode {
		t.Errorf("currency = %q, want default %q", m.Currency().Code, DefaultCurrencyCode)
	}
}

func TestNewUnknownCurrency(t *testing.T) {
	if _, err := NewFromString("1", "QQQ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("NewFromString error = %v, want ErrUnknownCurrency", err)
	}
	if _, err := NewFromInt(1, "QQQ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("NewFromInt error = %v, want ErrUnknownCurrency", err)
	}
	if _, err := NewFromFloat(1, "QQQ"); !errors.Is(err, ErrUnknownCurrency) {
		t.Errorf("NewFromFloat error = %v, want ErrUnknownCurrency", err)
	}
}

func TestNewFromStringBadAmount(t *testing.T) {
	if _, err := NewFromString("not-a-number", "USD"); err == nil {
		t.Error("NewFromString(not-a-number) succeeded, want error")
	}
}

func TestAdd(t *testing.T) {
	million := MustFromString("1000000", "USD")

	sum, err := million.Add(million)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}
	if want := MustFromString("2000000", "USD"); !sum.Equal(want) {
		t.Errorf("Add() = %v, want %v", sum, want)
	}
}

func TestSub(t *testing.T) {
	million := MustFromString("1000000", "USD")

	diff, err := million.Sub(million)
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}
	if want := Zero(MustLookup("USD")); !diff.Equal(want) {
		t.Errorf("Sub() = %v, want %v", diff, want)
	}
}

func TestAddCurrencyMismatch(t *testing.T) {
	usd := MustFromString("1", "USD")
	eur := MustFromString("1", "EUR")

	if _, err := usd.Add(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Add mismatch error = %v, want ErrCurrencyMismatch", err)
	}
	if _, err := usd.Sub(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Sub mismatch error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestMulRecoverableByDiv(t *testing.T) {
	m := MustFromString("111.33", "USD")
	three := decimal.NewFromInt(3)

	scaled := m.Mul(three)
	if want := MustFromString("333.99", "USD"); !scaled.Equal(want) {
		t.Errorf("Mul(3) = %v, want %v", scaled, want)
	}

	back, err := scaled.Div(three)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}
	if !back.Equal(m) {
		t.Errorf("Mul(3).Div(3) = %v, want %v", back, m)
	}
}

func TestDivByZero(t *testing.T) {
	m := MustFromString("50", "USD")
	if _, err := m.Div(decimal.Zero); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Div(0) error = %v, want ErrDivisionByZero", err)
	}
}

func TestRatio(t *testing.T) {
	x := MustFromString("50", "USD")
	y := MustFromString("2", "USD")

	ratio, err := x.Ratio(y)
	if err != nil {
		t.Fatalf("Ratio error: %v", err)
	}
	if !ratio.Equal(decimal.NewFromInt(25)) {
		t.Errorf("Ratio() = %v, want 25", ratio)
	}
}

func TestRatioCurrencyMismatch(t *testing.T) {
	x := MustFromString("50", "USD")
	y := MustFromString("2", "EUR")

	if _, err := x.Ratio(y); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Ratio mismatch error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestRatioByZero(t *testing.T) {
	x := MustFromString("50", "USD")
	if _, err := x.Ratio(Zero(MustLookup("USD"))); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("Ratio(zero) error = %v, want ErrDivisionByZero", err)
	}
}

func TestPercentOf(t *testing.T) {
	million := MustFromString("1000000", "USD")

	pct := PercentOf(decimal.NewFromInt(1), million)
	if want := MustFromString("10000", "USD"); !pct.Equal(want) {
		t.Errorf("PercentOf(1) = %v, want %v", pct, want)
	}

	hundredth := decimal.RequireFromString("0.01")
	if !pct.Equal(million.Mul(hundredth)) {
		t.Errorf("PercentOf(1) = %v, want same as Mul(0.01) = %v", pct, million.Mul(hundredth))
	}
}

func TestMod(t *testing.T) {
	twoHundred := MustFromString("200", "USD")

	got, err := Mod(5, twoHundred)
	if err != nil {
		t.Fatalf("Mod error: %v", err)
	}
	if want := MustFromString("10", "USD"); !got.Equal(want) {
		t.Errorf("Mod(5, 200 USD) = %v, want %v", got, want)
	}

	million := MustFromString("1000000", "USD")
	got, err = Mod(decimal.NewFromInt(1), million)
	if err != nil {
		t.Fatalf("Mod error: %v", err)
	}
	if want := MustFromString("10000", "USD"); !got.Equal(want) {
		t.Errorf("Mod(1, 1000000 USD) = %v, want %v", got, want)
	}
}

func TestModMoneyByMoney(t *testing.T) {
	m := MustFromString("1000000", "USD")
	if _, err := Mod(m, m); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("Mod(money, money) error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestModUnsupportedKind(t *testing.T) {
	m := MustFromString("1", "USD")
	if _, err := Mod("5", m); !errors.Is(err, ErrUnsupportedOperation) {
		t.Errorf("Mod(string, money) error = %v, want ErrUnsupportedOperation", err)
	}
}

func TestAbsNeg(t *testing.T) {
	neg := MustFromString("-1", "USD")
	pos := MustFromString("1", "USD")

	if !neg.Abs().Equal(pos) {
		t.Errorf("Abs(-1) = %v, want %v", neg.Abs(), pos)
	}
	if !pos.Neg().Equal(neg) {
		t.Errorf("Neg(1) = %v, want %v", pos.Neg(), neg)
	}
}

func TestCmp(t *testing.T) {
	one := MustFromString("1", "USD")
	million := MustFromString("1000000", "USD")

	lt, err := one.LessThan(million)
	if err != nil || !lt {
		t.Errorf("LessThan = %v, %v, want true, nil", lt, err)
	}
	gt, err := million.GreaterThan(one)
	if err != nil || !gt {
		t.Errorf("GreaterThan = %v, %v, want true, nil", gt, err)
	}
}

func TestCmpCurrencyMismatch(t *testing.T) {
	usd := MustFromString("1", "USD")
	eur := MustFromString("1", "EUR")

	if _, err := usd.Cmp(eur); !errors.Is(err, ErrCurrencyMismatch) {
		t.Errorf("Cmp mismatch error = %v, want ErrCurrencyMismatch", err)
	}
}

func TestCompareValueNonMoney(t *testing.T) {
	m := MustFromString("1000000", "USD")
	if _, err := m.CompareValue(1.0); !errors.Is(err, ErrComparisonType) {
		t.Errorf("CompareValue(float) error = %v, want ErrComparisonType", err)
	}
}

func TestEqualValueNeverFails(t *testing.T) {
	m := MustFromString("1000000", "USD")

	if m.EqualValue(nil) {
		t.Error("EqualValue(nil) = true, want false")
	}
	if m.EqualValue(map[string]string{}) {
		t.Error("EqualValue(map) = true, want false")
	}
	if m.EqualValue(1000000) {
		t.Error("EqualValue(int) = true, want false: numbers never equal Money")
	}
	if !m.EqualValue(MustFromString("1000000", "USD")) {
		t.Error("EqualValue(same money) = false, want true")
	}
}

func TestEqualDifferentCurrency(t *testing.T) {
	usd := MustFromString("1", "USD")
	eur := MustFromString("1", "EUR")
	if usd.Equal(eur) {
		t.Error("1 USD equals 1 EUR, want unequal")
	}
}

func TestString(t *testing.T) {
	if got := MustFromString("1000000", "USD").String(); got != "1000000 USD" {
		t.Errorf("String() = %q, want %q", got, "1000000 USD")
	}
}
