// Package valueobject contains value objects that represent concepts without identity.
// Value objects are immutable and compared by their attributes rather than identity.
// They encapsulate validation logic and ensure data integrity.
//
// Value Objects follow these principles:
//   - Immutability: Once created, they cannot be changed.
//   - Equality: Two value objects are equal if all their attributes are equal.
//   - Self-validation: They validate their own data upon creation.
//   - Side-effect free: Methods returns new instances rather than modifying state
package valueobject

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency represents a monetary currency using ISO 4217 codes.
type Currency string

// Supported currencies for catalog prices.
const (
	CurrencyUSD Currency = "USD" // US Dollar
	CurrencyEUR Currency = "EUR" // Euro
	CurrencyGBP Currency = "GBP" // British Pound
)

// Money errors define domain-specific error conditions.
var (
	ErrInvalidCurrency = errors.New("invalid currency code")
	ErrNegativeAmount  = errors.New("money amount cannot be negative")
	ErrInvalidAmount   = errors.New("invalid money amount")
)

// Money represents a price with currency.
// It stores amounts in the smallest unit (cents) to avoid floating-point issues.
//
// Example usage:
//
//	price, err := valueobject.ParseMoney("15.00", "USD") // $15.00
type Money struct {
	// Amount in smallest currency unit (e.g., cents for USD)
	Amount int64 `json:"amount"`

	// Currency using ISO 4217 code
	Currency Currency `json:"currency"`
}

// NewMoney creates a new Money value object.
//
// Parameters:
//   - amount: Amount in smallest unit (e.g., cents)
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the created Money value object
func NewMoney(amount int64, currency Currency) Money {
	return Money{
		Amount:   amount,
		Currency: currency,
	}
}

// ParseMoney creates Money from a decimal string such as "15" or "19.99".
// The amount is rounded half away from zero to whole cents.
//
// Parameters:
//   - amount: decimal amount in major units
//   - currency: ISO 4217 currency code
//
// Returns:
//   - Money: the parsed Money value object
//   - error: ErrInvalidAmount, ErrNegativeAmount or ErrInvalidCurrency
func ParseMoney(amount, currency string) (Money, error) {
	c, err := ParseCurrency(currency)
	if err != nil {
		return Money{}, err
	}

	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}
	if d.IsNegative() {
		return Money{}, ErrNegativeAmount
	}

	cents := d.Shift(2).Round(0).IntPart()
	return NewMoney(cents, c), nil
}

// ParseCurrency validates an ISO 4217 code against the supported currencies.
//
// Parameters:
//   - code: currency code, case-insensitive
//
// Returns:
//   - Currency: the matching currency
//   - error: ErrInvalidCurrency if unsupported
func ParseCurrency(code string) (Currency, error) {
	switch c := Currency(strings.ToUpper(strings.TrimSpace(code))); c {
	case CurrencyUSD, CurrencyEUR, CurrencyGBP:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
}

// IsZero checks if the Money amount is zero.
//
// Returns:
//   - bool: true if amount is zero
func (m Money) IsZero() bool {
	return m.Amount == 0
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Amount, -2)
}

// String returns a formatted string representation of the Money.
//
// Returns:
//   - string: Formatted string (e.g., "USD 19.99")
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Currency, m.Decimal().StringFixed(2))
}

// Format returns the money formatted with its currency symbol.
//
// Returns:
//   - string: Formatted string with currency symbol (e.g., "$19.99")
func (m Money) Format() string {
	return currencySymbol(m.Currency) + m.Decimal().StringFixed(2)
}

// currencySymbol returns the symbol for a given currency.
func currencySymbol(c Currency) string {
	symbols := map[Currency]string{
		CurrencyUSD: "$",
		CurrencyEUR: "€",
		CurrencyGBP: "£",
	}

	if symbol, ok := symbols[c]; ok {
		return symbol
	}
	return string(c) + " "
}
