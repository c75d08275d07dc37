// Package validation checks request input and turns it into domain values.
// Each Validate function either returns ready-to-store values or an *Error
// listing every offending field.
package validation

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ndewijer/Savings-Goal-Tracker-Backend/internal/currency"
)

// MaxAmount is the largest accepted money value, the range of a DECIMAL(15,2) column.
var MaxAmount = decimal.RequireFromString("9999999999999.99")

const (
	// maxIntegerDigits is the number of whole digits in MaxAmount.
	maxIntegerDigits = 13
	// maxFractionDigits bounds the fraction accepted before rounding.
	maxFractionDigits = 20
)

// amountPattern matches a plain decimal with an optional sign. Exponent
// notation is not accepted.
var amountPattern = regexp.MustCompile(`^([+-]?)(\d+)(?:\.(\d+))?$`)

// Error is a validation failure keyed by request field name.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, field := range slices.Sorted(maps.Keys(e.Fields)) {
		msgs = append(msgs, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}
	return strings.Join(msgs, "; ")
}

// parseAmount parses a positive money value and rounds it to storage precision.
// On failure the message is recorded under field and the zero value returned.
func parseAmount(field, raw string, errors map[string]string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		errors[field] = field + " is required"
		return decimal.Zero
	}

	// Digit counts are checked on the text so decimal never rescales an
	// unbounded exponent.
	m := amountPattern.FindStringSubmatch(raw)
	if m == nil {
		errors[field] = field + " must be a number"
		return decimal.Zero
	}
	sign, whole, fraction := m[1], strings.TrimLeft(m[2], "0"), m[3]
	if len(fraction) > maxFractionDigits {
		errors[field] = fmt.Sprintf("%s must have at most %d decimal places", field, maxFractionDigits)
		return decimal.Zero
	}
	if len(whole) > maxIntegerDigits {
		if sign == "-" {
			errors[field] = field + " must be positive"
		} else {
			errors[field] = fmt.Sprintf("%s must not exceed %s", field, MaxAmount.StringFixed(2))
		}
		return decimal.Zero
	}

	digits := m[2]
	if fraction != "" {
		digits += "." + fraction
	}
	if sign == "-" {
		digits = sign + digits
	}
	d, err := decimal.NewFromString(digits)
	if err != nil {
		errors[field] = field + " must be a number"
		return decimal.Zero
	}

	rounded := currency.Round(d)
	switch {
	case !rounded.IsPositive():
		errors[field] = field + " must be positive"
		return decimal.Zero
	case rounded.GreaterThan(MaxAmount):
		errors[field] = fmt.Sprintf("%s must not exceed %s", field, MaxAmount.StringFixed(2))
		return decimal.Zero
	}

	return rounded
}

// parseCurrency records a currency error under field.
func parseCurrency(field, raw string, errors map[string]string) currency.Currency {
	c, err := currency.Parse(raw)
	if err != nil {
		errors[field] = err.Error()
	}
	return c
}

// ParseDate parses a calendar date given as YYYY-MM-DD or RFC3339.
// The result is midnight UTC of the date as written, whatever offset an
// RFC3339 value carries.
func ParseDate(str string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		t, err = time.Parse(time.RFC3339, str)
		if err != nil {
			return time.Time{}, fmt.Errorf("failed to parse date %q: expected YYYY-MM-DD", str)
		}
	}

	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}
