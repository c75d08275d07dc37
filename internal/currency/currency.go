// Package currency models the closed set of currencies supported by the
// tracker and owns the rounding, conversion and formatting rules for money.
//
// Amounts are decimal.Decimal values. Stored amounts keep two fractional
// digits (rounded half-up); display strings are rounded to whole units.
package currency

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	xcurrency "golang.org/x/text/currency"
)

// Currency is an ISO 4217 code from the supported set.
type Currency string

const (
	USD Currency = "USD"
	INR Currency = "INR"
)

// Reporting is the currency dashboard totals are normalized into.
const Reporting = INR

// StoragePlaces is the number of fractional digits kept for stored amounts.
const StoragePlaces = 2

var (
	// ErrUnsupportedCurrency indicates a currency outside {USD, INR}.
	ErrUnsupportedCurrency = errors.New("currency must be INR or USD")

	// ErrInvalidRate indicates a missing or non-positive exchange rate.
	ErrInvalidRate = errors.New("exchange rate must be positive")
)

// All returns the supported currencies in a stable order.
func All() []Currency {
	return []Currency{INR, USD}
}

// Valid reports whether c is one of the supported currencies.
func (c Currency) Valid() bool {
	switch c {
	case USD, INR:
		return true
	default:
		return false
	}
}

func (c Currency) String() string {
	return string(c)
}

// Parse converts s into a Currency. Matching is exact: "usd" is rejected.
// Codes that are valid ISO 4217 but outside the supported set get a more
// specific message than arbitrary strings.
func Parse(s string) (Currency, error) {
	c := Currency(s)
	if c.Valid() {
		return c, nil
	}
	if s == "" {
		return "", ErrUnsupportedCurrency
	}

	unit, err := xcurrency.ParseISO(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q is not a currency code", ErrUnsupportedCurrency, s)
	}
	if Currency(unit.String()).Valid() {
		return "", fmt.Errorf("%w: codes are case-sensitive, use %s", ErrUnsupportedCurrency, unit)
	}
	return "", fmt.Errorf("%w: %s is not supported", ErrUnsupportedCurrency, unit)
}

// Round rounds d half-up to the stored precision of two decimal places.
func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(StoragePlaces)
}

// RoundDisplay rounds d half-up to whole units for presentation.
func RoundDisplay(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}

// FixedString renders d with exactly two fractional digits, e.g. "700.00".
func FixedString(d decimal.Decimal) string {
	return d.StringFixed(StoragePlaces)
}
