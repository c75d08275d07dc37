package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format renders amount for display in the given currency with no fractional
// digits: USD uses Western grouping ("$12,345"), INR uses Indian lakh/crore
// grouping ("₹12,34,567").
func Format(amount decimal.Decimal, c Currency) string {
	rounded := RoundDisplay(amount)
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	switch c {
	case USD:
		return sign + "$" + groupWestern(rounded)
	case INR:
		return sign + "₹" + groupDigits(rounded.String(), 2)
	default:
		return sign + rounded.String() + " " + string(c)
	}
}

// FormatRate renders an INR-per-USD rate as "1 USD = ₹83.50".
func FormatRate(rate decimal.Decimal) string {
	return "1 USD = ₹" + rate.StringFixed(2)
}

// FormatPercentage renders a percentage with one decimal place, e.g. "70.0%".
// Values below 100 never display as "100.0%": 99.96 renders as "99.9%".
func FormatPercentage(p float64) string {
	s := fmt.Sprintf("%.1f", p)
	if p < 100 && s == "100.0" {
		s = "99.9"
	}
	return s + "%"
}

func groupWestern(whole decimal.Decimal) string {
	n := whole.BigInt()
	if !n.IsInt64() {
		return groupDigits(whole.String(), 3)
	}
	return message.NewPrinter(language.AmericanEnglish).Sprintf("%d", n.Int64())
}

// groupDigits inserts commas into a string of digits: the last three digits
// form one group and the rest are split every size digits.
func groupDigits(digits string, size int) string {
	if len(digits) <= 3 {
		return digits
	}

	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > size {
		groups = append([]string{head[len(head)-size:]}, groups...)
		head = head[:len(head)-size]
	}
	groups = append([]string{head}, groups...)
	groups = append(groups, tail)

	return strings.Join(groups, ",")
}
