package calculator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidExpense is returned for an expense with a non-positive amount
	// or no participants.
	ErrInvalidExpense = errors.New("invalid expense")

	// ErrInvalidPayment is returned for a recorded payment with a non-positive amount.
	ErrInvalidPayment = errors.New("invalid payment")
)

// InvalidExpenseError describes which expense was rejected and why.
// It matches ErrInvalidExpense with errors.Is.
type InvalidExpenseError struct {
	ExpenseID string
	Reason    string
}

func (e *InvalidExpenseError) Error() string {
	if e.ExpenseID == "" {
		return fmt.Sprintf("%v: %s", ErrInvalidExpense, e.Reason)
	}
	return fmt.Sprintf("%v %s: %s", ErrInvalidExpense, e.ExpenseID, e.Reason)
}

func (e *InvalidExpenseError) Unwrap() error {
	return ErrInvalidExpense
}
