package moneyed

import "strings"

// FormatMoney renders a money into the locale's human-readable form:
// the amount is rounded to decimalPlaces with the locale's rounding method,
// grouped and joined per its number format, wrapped with the numeric sign
// affixes, and finally wrapped with the resolved currency sign. With
// decimalPlaces of zero the decimal point is omitted entirely.
func (l *Locales) FormatMoney(m Money, locale string, decimalPlaces int) string {
	f := l.Format(locale)
	sign := l.SignFor(locale, m.Currency())

	if decimalPlaces < 0 {
		decimalPlaces = 0
	}
	rounded := f.Rounding.round(m.Amount(), int32(decimalPlaces))
	negative := rounded.Sign() < 0

	digits := rounded.Abs().StringFixed(int32(decimalPlaces))
	intPart, fracPart, _ := strings.Cut(digits, ".")

	num := groupDigits(intPart, f.GroupSize, f.GroupSeparator)
	if decimalPlaces > 0 {
		num += f.DecimalPoint + fracPart
	}

	if negative {
		num = f.NegativeSign + num + f.TrailingNegativeSign
	} else {
		num = f.PositiveSign + num + f.TrailingPositiveSign
	}

	return sign.Prefix + num + sign.Suffix
}

// FormatMoney renders a money through DefaultLocales.
func FormatMoney(m Money, locale string, decimalPlaces int) string {
	return DefaultLocales.FormatMoney(m, locale, decimalPlaces)
}

// Format renders a money with the default locale and two decimal places.
func Format(m Money) string {
	return DefaultLocales.FormatMoney(m, "", 2)
}

// groupDigits inserts the separator every size digits from the right, e.g.
// "1000000" -> "1,000,000".
func groupDigits(digits string, size int, sep string) string {
	if size <= 0 || sep == "" || len(digits) <= size {
		return digits
	}

	head := len(digits) % size
	if head == 0 {
		head = size
	}
	parts := []string{digits[:head]}
	for i := head; i < len(digits); i += size {
		parts = append(parts, digits[i:i+size])
	}
	return strings.Join(parts, sep)
}
