package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mmynk/splitledger/internal/calculator"
)

// Expense represents one shared expense, paid by one member and split
// equally among its participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// GroupID is the group this expense belongs to.
	GroupID string

	// Description is the human-readable label (e.g., "Groceries").
	Description string

	// Amount is the total paid. Always positive.
	Amount decimal.Decimal

	// PayerID is the user who paid the full amount.
	PayerID string

	// Participants are the users splitting the expense, conventionally
	// including the payer. Each appears at most once.
	Participants []string

	// Date is the Unix timestamp of when the expense happened.
	Date int64

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}

// Validate checks the expense before it is stored or handed to the calculator.
// Every failure wraps calculator.ErrInvalidExpense.
//
// Duplicate participants are rejected here: the calculator would debit a
// repeated member twice while crediting the payer once.
func (e *Expense) Validate() error {
	if err := e.ForBalance().Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Description) == "" {
		return &calculator.InvalidExpenseError{ExpenseID: e.ID, Reason: "description is required"}
	}
	if e.PayerID == "" {
		return &calculator.InvalidExpenseError{ExpenseID: e.ID, Reason: "payer is required"}
	}

	seen := make(map[string]bool, len(e.Participants))
	for _, p := range e.Participants {
		if p == "" {
			return &calculator.InvalidExpenseError{ExpenseID: e.ID, Reason: "participant id is empty"}
		}
		if seen[p] {
			return &calculator.InvalidExpenseError{ExpenseID: e.ID, Reason: fmt.Sprintf("participant %s listed more than once", p)}
		}
		seen[p] = true
	}
	return nil
}

// ForBalance converts the expense to the calculator's input type.
func (e *Expense) ForBalance() calculator.ExpenseForBalance {
	return calculator.ExpenseForBalance{
		ID:           e.ID,
		Amount:       e.Amount,
		PayerID:      e.PayerID,
		Participants: e.Participants,
	}
}
