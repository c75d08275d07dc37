package currency

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Convert converts amount from one currency to another using rate, the
// number of INR per 1 USD.
//
// Converting a currency to itself returns amount unchanged and does not look
// at the rate. Every other conversion requires rate > 0; there is no default
// rate to fall back on.
func Convert(amount decimal.Decimal, from, to Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if !from.Valid() {
		return decimal.Zero, fmt.Errorf("%w: from %q", ErrUnsupportedCurrency, string(from))
	}
	if !to.Valid() {
		return decimal.Zero, fmt.Errorf("%w: to %q", ErrUnsupportedCurrency, string(to))
	}
	if from == to {
		return amount, nil
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: got %s", ErrInvalidRate, rate)
	}

	switch from {
	case USD:
		return amount.Mul(rate), nil
	case INR:
		return amount.Div(rate), nil
	default:
		return decimal.Zero, fmt.Errorf("%w: %s to %s", ErrUnsupportedCurrency, from, to)
	}
}

// ToReporting normalizes amount into the reporting currency.
func ToReporting(amount decimal.Decimal, from Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	return Convert(amount, from, Reporting, rate)
}
