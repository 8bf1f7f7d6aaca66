// Package deposit decides how much of the security deposit goes back to the
// guest at check-out. Refunds are fixed amounts derived from the full policy
// deposit, not from whatever was collected at the desk.
package deposit

import "github.com/shopspring/decimal"

const (
	ActionFull    = "Full"
	ActionPartial = "Partial"
	ActionForfeit = "Forfeit"
)

var two = decimal.NewFromInt(2)

// Refund maps a deposit action to the amount returned to the guest, given the
// full policy deposit. An empty or unrecognized action refunds in full.
func Refund(action string, full decimal.Decimal) decimal.Decimal {
	switch action {
	case ActionPartial:
		return full.Div(two)
	case ActionForfeit:
		return decimal.Zero
	default:
		return full
	}
}
