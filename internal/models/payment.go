package models

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
)

// Payment represents a real payment between group members to clear debts.
// Unlike a suggested settlement, a payment is stored and changes balances.
type Payment struct {
	// ID is the unique identifier for the payment (UUID format).
	ID string

	// GroupID is the group this payment belongs to.
	GroupID string

	// FromUserID is the user who paid (debtor settling up).
	FromUserID string

	// ToUserID is the user who received payment (creditor being paid).
	ToUserID string

	// Amount is the payment amount.
	Amount decimal.Decimal

	// CreatedAt is the Unix timestamp when the payment was recorded.
	CreatedAt int64

	// CreatedBy is the user ID who recorded this payment.
	CreatedBy string

	// Note is an optional description for the payment.
	Note string
}

// ForBalance converts the payment to the calculator's input type.
func (p *Payment) ForBalance() calculator.PaymentForBalance {
	return calculator.PaymentForBalance{
		FromUserID: p.FromUserID,
		ToUserID:   p.ToUserID,
		Amount:     p.Amount,
	}
}
