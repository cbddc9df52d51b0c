package calculator

import (
	"fmt"
	"maps"

	"github.com/shopspring/decimal"
)

// Balances maps a member ID to its net position.
// Positive = owed money, Negative = owes money.
type Balances map[string]decimal.Decimal

// Get returns the member's balance, or zero when the member is absent.
func (b Balances) Get(memberID string) decimal.Decimal {
	return b[memberID]
}

// Sum adds up every balance. For a closed ledger it is zero within Epsilon.
func (b Balances) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, v := range b {
		total = total.Add(v)
	}
	return total
}

// Clone returns an independent copy of the map.
func (b Balances) Clone() Balances {
	return maps.Clone(b)
}

// PaymentForBalance represents a recorded payment with the minimal information
// needed for balance calculations.
type PaymentForBalance struct {
	FromUserID string // Who paid (debtor settling up)
	ToUserID   string // Who received (creditor being paid)
	Amount     decimal.Decimal
}

// ComputeBalances converts an expense ledger into a net balance per member.
//
// For each expense the payer is credited the full amount and every participant
// is debited an equal share, so a payer who also participates nets
// amount*(n-1)/n. The result does not depend on expense order. Members not
// involved in any expense are absent from the result.
//
// The first invalid expense aborts the computation; no partial map is returned.
func ComputeBalances(expenses []ExpenseForBalance) (Balances, error) {
	balances := make(Balances)

	for _, expense := range expenses {
		splits, err := CalculateSplit(expense)
		if err != nil {
			return nil, err
		}

		balances[expense.PayerID] = balances[expense.PayerID].Add(expense.Amount)
		for participant, owed := range splits {
			balances[participant] = balances[participant].Sub(owed)
		}
	}

	return balances, nil
}

// ApplyPayments folds recorded payments into a copy of balances.
// The payer's balance improves and the receiver's balance decreases by the
// same amount, so the zero-sum property is preserved.
func ApplyPayments(balances Balances, payments []PaymentForBalance) (Balances, error) {
	result := balances.Clone()
	if result == nil {
		result = make(Balances)
	}

	for _, p := range payments {
		if !p.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: amount must be positive (from %s to %s)", ErrInvalidPayment, p.FromUserID, p.ToUserID)
		}
		result[p.FromUserID] = result[p.FromUserID].Add(p.Amount)
		result[p.ToUserID] = result[p.ToUserID].Sub(p.Amount)
	}

	return result, nil
}
