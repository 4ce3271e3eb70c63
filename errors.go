package moneyed

import "errors"

// ErrUnknownCurrency indicates that a currency code has no entry in the registry.
var ErrUnknownCurrency = errors.New("unknown currency")

// ErrCurrencyMismatch indicates that an operation requiring matching currencies
// received operands of different currencies.
var ErrCurrencyMismatch = errors.New("currency mismatch")

// ErrComparisonType indicates that an ordered comparison was attempted between
// a money value and a non-money value. Equality checks never fail this way;
// incompatible types simply compare unequal.
var ErrComparisonType = errors.New("cannot order money against non-money value")

// ErrUnsupportedOperation indicates that an operation has no defined meaning
// for the given operand kinds.
var ErrUnsupportedOperation = errors.New("unsupported operation")

// ErrDivisionByZero indicates a scalar or same-currency division by zero.
var ErrDivisionByZero = errors.New("division by zero")
