package moneyed

import (
	"fmt"
	"strings"
	"sync"
)

// Currency identifies a monetary unit by its ISO-style code. Instances are
// immutable: they are registered once and only ever read afterwards.
type Currency struct {
	Code      string   // canonical uppercase identifier, e.g. "USD"
	Numeric   string   // ISO numeric code; empty for currencies without one
	Name      string   // display name
	Countries []string // countries using the currency; order is preserved
	Sign      Sign     // intrinsic symbol placement, e.g. prefix "US$"
}

// String returns the currency code.
func (c Currency) String() string {
	return c.Code
}

// Registry maps currency codes to Currency records and holds the
// process-wide default currency. Lookups are case-insensitive; codes are
// normalized to uppercase. Safe for concurrent use.
type Registry struct {
	mu          sync.RWMutex
	currencies  map[string]Currency
	defaultCode string
}

// NewRegistry returns an empty registry with no default currency set.
func NewRegistry() *Registry {
	return &Registry{
		currencies: make(map[string]Currency),
	}
}

// Register installs or replaces the record for its code.
func (r *Registry) Register(c Currency) {
	c.Code = strings.ToUpper(c.Code)

	r.mu.Lock()
	defer r.mu.Unlock()
	r.currencies[c.Code] = c
}

// Lookup resolves a code to its Currency record. The code is matched
// case-insensitively; unknown codes fail with ErrUnknownCurrency.
func (r *Registry) Lookup(code string) (Currency, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.currencies[strings.ToUpper(code)]
	if !ok {
		return Currency{}, fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	return c, nil
}

// MustLookup is Lookup for codes known to be registered. It panics on
// unknown codes and is intended for static initialization.
func (r *Registry) MustLookup(code string) Currency {
	c, err := r.Lookup(code)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultCurrency returns the registry's default currency, used when a Money
// is constructed without an explicit currency. Returns the zero Currency if
// no default has been set.
func (r *Registry) DefaultCurrency() Currency {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.currencies[r.defaultCode]
}

// SetDefaultCurrency changes the registry's default currency. The code must
// already be registered.
func (r *Registry) SetDefaultCurrency(code string) error {
	code = strings.ToUpper(code)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.currencies[code]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCurrency, code)
	}
	r.defaultCode = code
	return nil
}

// DefaultRegistry holds the built-in ISO and crypto currency table. The
// package-level currency functions delegate to it.
var DefaultRegistry = newBuiltinRegistry()

// Lookup resolves a code against the default registry.
func Lookup(code string) (Currency, error) {
	return DefaultRegistry.Lookup(code)
}

// MustLookup resolves a code against the default registry, panicking on
// unknown codes.
func MustLookup(code string) Currency {
	return DefaultRegistry.MustLookup(code)
}

// Register installs a currency into the default registry.
func Register(c Currency) {
	DefaultRegistry.Register(c)
}

// DefaultCurrency returns the process-wide default currency.
func DefaultCurrency() Currency {
	return DefaultRegistry.DefaultCurrency()
}

// SetDefaultCurrency changes the process-wide default currency.
func SetDefaultCurrency(code string) error {
	return DefaultRegistry.SetDefaultCurrency(code)
}

func resolveCurrency(code string) (Currency, error) {
	if code == "" {
		return DefaultCurrency(), nil
	}
	return Lookup(code)
}
