package calculator

import (
	"github.com/shopspring/decimal"
)

// ExpenseForBalance represents an expense with the minimal information needed
// for balance calculations.
type ExpenseForBalance struct {
	ID           string
	Amount       decimal.Decimal
	PayerID      string
	Participants []string
}

// Validate checks the two conditions that would make an equal split undefined:
// a non-positive amount or an empty participant list.
func (e ExpenseForBalance) Validate() error {
	if !e.Amount.IsPositive() {
		return &InvalidExpenseError{ExpenseID: e.ID, Reason: "amount must be positive"}
	}
	if len(e.Participants) == 0 {
		return &InvalidExpenseError{ExpenseID: e.ID, Reason: "must have at least one participant"}
	}
	return nil
}

// EqualShare returns the amount each participant owes for the expense.
// The division is not rounded; rounding happens only at presentation.
func EqualShare(expense ExpenseForBalance) (decimal.Decimal, error) {
	if err := expense.Validate(); err != nil {
		return decimal.Zero, err
	}
	return expense.Amount.Div(decimal.NewFromInt(int64(len(expense.Participants)))), nil
}

// CalculateSplit computes how much each participant owes for a single expense.
// The shares always add up to the expense amount. Participants are expected
// to be unique: models.Expense.Validate rejects a repeated member before an
// expense is stored.
func CalculateSplit(expense ExpenseForBalance) (map[string]decimal.Decimal, error) {
	share, err := EqualShare(expense)
	if err != nil {
		return nil, err
	}

	splits := make(map[string]decimal.Decimal, len(expense.Participants))
	for _, p := range expense.Participants {
		splits[p] = splits[p].Add(share)
	}
	return splits, nil
}
