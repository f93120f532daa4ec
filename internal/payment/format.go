package payment

import (
	"strings"

	"github.com/shopspring/decimal"
)

// USDToINR is the fixed display conversion rate.
var USDToINR = decimal.NewFromInt(83)

const rupee = "₹"

// FormatPrice renders a source currency price as whole rupees with Indian digit
// grouping, e.g. 1487.42 -> ₹1,23,456.
func FormatPrice(usd float64) string {
	return FormatAmount(decimal.NewFromFloat(usd))
}

// FormatAmount is FormatPrice for decimal amounts such as cart totals.
func FormatAmount(usd decimal.Decimal) string {
	inr := usd.Mul(USDToINR).Round(0)
	sign := ""
	if inr.IsNegative() {
		sign = "-"
		inr = inr.Neg()
	}
	return sign + rupee + groupIndian(inr.String())
}

// groupIndian groups the last three digits, then every two: 12345678 -> 1,23,45,678.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head, tail := digits[:len(digits)-3], digits[len(digits)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return strings.Join(append(groups, tail), ",")
}
