// Package moneyed provides currency-aware monetary values: exact decimal
// Money amounts with currency-constrained arithmetic, multi-currency
// MultiMoney aggregates ordered by vector dominance, and locale-aware
// formatting with overridable number formats and currency signs.
package moneyed
