package moneyed

import (
	"strings"
	"sync"

	"github.com/shopspring/decimal"
)

// Sign is a currency's symbol placement: prefix and/or suffix strings
// wrapped around a rendered number, e.g. prefix "US$" or suffix " zł".
type Sign struct {
	Prefix string
	Suffix string
}

// RoundingMethod is the policy used when truncating an amount to the
// requested number of decimal places.
type RoundingMethod int

const (
	// RoundHalfEven rounds half-values to the nearest even digit (banker's
	// rounding). This is the default.
	RoundHalfEven RoundingMethod = iota
	// RoundHalfUp rounds half-values away from zero.
	RoundHalfUp
	// RoundDown truncates toward zero.
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
)

func (r RoundingMethod) round(d decimal.Decimal, places int32) decimal.Decimal {
	switch r {
	case RoundHalfUp:
		return d.Round(places)
	case RoundDown:
		return d.RoundDown(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundFloor:
		return d.RoundFloor(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	default:
		return d.RoundBank(places)
	}
}

// NumberFormat describes how a locale renders a plain decimal number:
// digit grouping, the decimal point, and the affixes around positive and
// negative values.
type NumberFormat struct {
	GroupSize            int
	GroupSeparator       string
	DecimalPoint         string
	PositiveSign         string
	TrailingPositiveSign string
	NegativeSign         string
	TrailingNegativeSign string
	Rounding             RoundingMethod
}

// DefaultNumberFormat is the profile used for any locale without a
// registered format: groups of three separated by commas, "." decimal
// point, "-" before negatives, round-half-to-even.
func DefaultNumberFormat() NumberFormat {
	return NumberFormat{
		GroupSize:      3,
		GroupSeparator: ",",
		DecimalPoint:   ".",
		NegativeSign:   "-",
		Rounding:       RoundHalfEven,
	}
}

type signKey struct {
	locale string
	code   string
}

// Locales resolves, per locale and currency, how to format a decimal number
// and how to wrap it with a currency sign. It holds two independent
// mappings, locale to NumberFormat and (locale, currency code) to Sign,
// each with fallback behavior. Safe for concurrent registration and
// formatting.
type Locales struct {
	mu      sync.RWMutex
	formats map[string]NumberFormat
	signs   map[signKey]Sign
}

// NewLocales returns a registry preloaded with the built-in locale formats.
// Tests should build their own instance rather than mutate DefaultLocales.
func NewLocales() *Locales {
	l := &Locales{
		formats: make(map[string]NumberFormat, len(builtinFormats)),
		signs:   make(map[signKey]Sign),
	}
	for locale, f := range builtinFormats {
		l.formats[locale] = f
	}
	return l
}

// builtinFormats are the locale profiles available before any registration.
var builtinFormats = map[string]NumberFormat{
	"pl_PL": {GroupSize: 3, GroupSeparator: " ", DecimalPoint: ",", NegativeSign: "-", Rounding: RoundHalfEven},
	"de_DE": {GroupSize: 3, GroupSeparator: ".", DecimalPoint: ",", NegativeSign: "-", Rounding: RoundHalfEven},
	"ru_RU": {GroupSize: 3, GroupSeparator: " ", DecimalPoint: ",", NegativeSign: "-", Rounding: RoundHalfEven},
}

// RegisterFormat installs or replaces the number format for a locale.
// Locale identifiers are opaque strings matched exactly, e.g. "fr_FR".
func (l *Locales) RegisterFormat(locale string, f NumberFormat) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.formats[locale] = f
}

// RegisterSign installs or replaces the sign override for a (locale,
// currency code) pair.
func (l *Locales) RegisterSign(locale, code string, sign Sign) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.signs[signKey{locale: locale, code: strings.ToUpper(code)}] = sign
}

// Format resolves a locale's number format, falling back to
// DefaultNumberFormat for locales with no registered profile.
func (l *Locales) Format(locale string) NumberFormat {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if f, ok := l.formats[locale]; ok {
		return f
	}
	return DefaultNumberFormat()
}

// SignFor resolves the sign for a currency in a locale: the registered
// override if present, otherwise the currency's intrinsic sign regardless
// of locale. Currencies without an intrinsic sign render with their code as
// a suffix, e.g. "1,000.00 CZK".
func (l *Locales) SignFor(locale string, c Currency) Sign {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if s, ok := l.signs[signKey{locale: locale, code: c.Code}]; ok {
		return s
	}
	if c.Sign != (Sign{}) {
		return c.Sign
	}
	return Sign{Suffix: " " + c.Code}
}

// DefaultLocales is the process-wide localization registry used by the
// package-level registration and formatting functions.
var DefaultLocales = NewLocales()

// RegisterFormat installs a locale number format into DefaultLocales.
func RegisterFormat(locale string, f NumberFormat) {
	DefaultLocales.RegisterFormat(locale, f)
}

// RegisterSign installs a (locale, currency) sign override into
// DefaultLocales.
func RegisterSign(locale, code string, sign Sign) {
	DefaultLocales.RegisterSign(locale, code, sign)
}
