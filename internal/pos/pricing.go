package pos

import (
	"strings"

	"github.com/shopspring/decimal"
)

// memberDiscountRate is the flat membership discount. No stacking, no
// category exceptions.
var memberDiscountRate = decimal.RequireFromString("0.10")

// Totals are the derived monetary fields for a cart at a point in time.
// They are recomputed from scratch on every call, never cached on items.
type Totals struct {
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Total      decimal.Decimal `json:"total"`
	Deposit    decimal.Decimal `json:"deposit"`
	BalanceDue decimal.Decimal `json:"balance_due"`
	Status     OrderStatus     `json:"status"`
}

// ParseAmount parses a free-text monetary field. Empty or unparseable input
// is worth 0, never an error; point-of-sale leniency is policy here.
func ParseAmount(input string) decimal.Decimal {
	input = strings.TrimSpace(input)
	if input == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func Subtotal(items []OrderItem) decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return subtotal
}

// Calculate derives all monetary fields and the creation-time status for
// the given cart contents. The deposit is a free-text field; unparseable
// input counts as zero and negative input is floored at zero (the
// calculator accepts any non-negative deposit regardless of order type).
func Calculate(items []OrderItem, isMember bool, depositInput string) Totals {
	subtotal := Subtotal(items)

	discount := decimal.Zero
	if isMember {
		discount = subtotal.Mul(memberDiscountRate)
	}

	total := subtotal.Sub(discount)

	deposit := ParseAmount(depositInput)
	if deposit.IsNegative() {
		deposit = decimal.Zero
	}

	balance := total.Sub(deposit)
	if balance.IsNegative() {
		balance = decimal.Zero
	}

	status := StatusCompleted
	if balance.IsPositive() {
		status = StatusPending
	}

	return Totals{
		Subtotal:   subtotal,
		Discount:   discount,
		Total:      total,
		Deposit:    deposit,
		BalanceDue: balance,
		Status:     status,
	}
}
