package moneyed

import "testing"

func TestFormatDefaultLocale(t *testing.T) {
	m := MustFromString("1000000", "USD")

	if got := Format(m); got != "US$1,000,000.00" {
		t.Errorf("Format() = %q, want %q", got, "US$1,000,000.00")
	}
	if got := FormatMoney(m, "", 0); got != "US$1,000,000" {
		t.Errorf("FormatMoney(0 places) = %q, want %q", got, "US$1,000,000")
	}
}

func TestFormatLocaleSeparators(t *testing.T) {
	zloty := MustFromString("1000000", "PLN")

	if got := FormatMoney(zloty, "pl_PL", 2); got != "1 000 000,00 zł" {
		t.Errorf("PLN in pl_PL = %q, want %q", got, "1 000 000,00 zł")
	}
	if got := FormatMoney(zloty, "pl_PL", 0); got != "1 000 000 zł" {
		t.Errorf("PLN in pl_PL, 0 places = %q, want %q", got, "1 000 000 zł")
	}

	// the sign stays currency-bound while the digits follow the locale
	bucks := MustFromString("1000000", "USD")
	if got := FormatMoney(bucks, "pl_PL", 2); got != "US$1 000 000,00" {
		t.Errorf("USD in pl_PL = %q, want %q", got, "US$1 000 000,00")
	}
}

func TestFormatUnknownLocaleFallsBack(t *testing.T) {
	m := MustFromString("1000000", "USD")

	if got := FormatMoney(m, "fr_FR", 2); got != "US$1,000,000.00" {
		t.Errorf("unregistered locale = %q, want default rendering %q", got, "US$1,000,000.00")
	}
}

func TestFormatEuroSuffixSign(t *testing.T) {
	euros := MustFromString("1000000", "EUR")

	for _, locale := range []string{"", "fr_FR", "en_US"} {
		if got := FormatMoney(euros, locale, 2); got != "1,000,000.00 €" {
			t.Errorf("EUR in %q = %q, want %q", locale, got, "1,000,000.00 €")
		}
	}
}

func TestRegisterSignOverride(t *testing.T) {
	l := NewLocales()
	l.RegisterSign("pl_PL", "usd", Sign{Prefix: "$"})

	m := MustFromString("1000000", "USD")
	if got := l.FormatMoney(m, "pl_PL", 2); got != "$1 000 000,00" {
		t.Errorf("after sign override = %q, want %q", got, "$1 000 000,00")
	}
	// other locales keep the intrinsic sign
	if got := l.FormatMoney(m, "", 2); got != "US$1,000,000.00" {
		t.Errorf("default locale after override = %q, want %q", got, "US$1,000,000.00")
	}
}

func TestRegisterFormat(t *testing.T) {
	l := NewLocales()
	l.RegisterFormat("fr_FR", NumberFormat{
		GroupSize:      3,
		GroupSeparator: " ",
		DecimalPoint:   ",",
		NegativeSign:   "-",
		Rounding:       RoundHalfEven,
	})

	euros := MustFromString("1000000", "EUR")
	if got := l.FormatMoney(euros, "fr_FR", 2); got != "1 000 000,00 €" {
		t.Errorf("EUR in fr_FR = %q, want %q", got, "1 000 000,00 €")
	}
}

func TestFormatNegative(t *testing.T) {
	m := MustFromString("-1234.5", "USD")

	if got := Format(m); got != "US$-1,234.50" {
		t.Errorf("Format(negative) = %q, want %q", got, "US$-1,234.50")
	}
}

func TestFormatRoundsHalfEven(t *testing.T) {
	cases := []struct {
		amount string
		want   string
	}{
		{"2.345", "US$2.34"},
		{"2.355", "US$2.36"},
		{"2.3449", "US$2.34"},
	}
	for _, c := range cases {
		m := MustFromString(c.amount, "USD")
		if got := Format(m); got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.amount, got, c.want)
		}
	}
}

func TestFormatFallbackSuffix(t *testing.T) {
	m := MustFromString("1000", "CZK")

	if got := Format(m); got != "1,000.00 CZK" {
		t.Errorf("Format(CZK) = %q, want %q", got, "1,000.00 CZK")
	}
}

func TestFormatDeterministic(t *testing.T) {
	m := MustFromString("1000000", "PLN")

	first := FormatMoney(m, "pl_PL", 2)
	for i := 0; i < 3; i++ {
		if got := FormatMoney(m, "pl_PL", 2); got != first {
			t.Fatalf("repeated call = %q, want %q", got, first)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		digits string
		size   int
		sep    string
		want   string
	}{
		{"1000000", 3, ",", "1,000,000"},
		{"100", 3, ",", "100"},
		{"1000", 3, " ", "1 000"},
		{"12", 3, ",", "12"},
		{"1234", 0, ",", "1234"},
		{"", 3, ",", ""},
	}
	for _, c := range cases {
		if got := groupDigits(c.digits, c.size, c.sep); got != c.want {
			t.Errorf("groupDigits(%q, %d, %q) = %q, want %q", c.digits, c.size, c.sep, got, c.want)
		}
	}
}
