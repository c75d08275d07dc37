package validation

import (
	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/api/request"
	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
)

// ValidateConvert validates conversion query parameters.
// amount follows the same rules as a contribution amount; from and to must
// each be "INR" or "USD".
func ValidateConvert(req request.ConvertRequest) (decimal.Decimal, currency.Currency, currency.Currency, error) {
	errors := make(map[string]string)

	amount := parseAmount("amount", req.Amount, errors)
	from := parseCurrency("from", req.From, errors)
	to := parseCurrency("to", req.To, errors)

	if len(errors) > 0 {
		return decimal.Zero, "", "", &Error{Fields: errors}
	}

	return amount, from, to, nil
}
