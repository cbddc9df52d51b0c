package calculator

import (
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Settlement is a recommended payment: From pays To the given Amount.
type Settlement struct {
	From   string
	To     string
	Amount decimal.Decimal
}

// position is a creditor's or debtor's outstanding amount, always positive.
type position struct {
	memberID string
	amount   decimal.Decimal
}

// OptimizeSettlements computes a list of payments that settles all balances.
//
// Algorithm:
//   - Partition members into creditors (balance > Epsilon) and debtors
//     (balance < -Epsilon); the rest are already settled
//   - Sort both lists by descending amount, ties by member ID
//   - Greedy: match the current debtor with the current creditor for the
//     smaller of the two amounts, advancing whichever drops below Epsilon
//
// The plan has at most |creditors|+|debtors|-1 entries. It is a greedy
// approximation, not a guaranteed minimum number of transactions.
// The input map is not modified.
func OptimizeSettlements(balances Balances) []Settlement {
	creditors, debtors := partition(balances)

	settlements := make([]Settlement, 0, max(0, len(creditors)+len(debtors)-1))
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor := &debtors[i]
		creditor := &creditors[j]

		amount := decimal.Min(debtor.amount, creditor.amount)

		// Both cursors sit on amounts >= Epsilon, so the rounded amount is at
		// least one cent.
		settlements = append(settlements, Settlement{
			From:   debtor.memberID,
			To:     creditor.memberID,
			Amount: RoundAmount(amount),
		})

		debtor.amount = debtor.amount.Sub(amount)
		creditor.amount = creditor.amount.Sub(amount)

		// Both advance when the amounts were equal.
		if debtor.amount.LessThan(Epsilon) {
			i++
		}
		if creditor.amount.LessThan(Epsilon) {
			j++
		}
	}

	return settlements
}

// PlanFromLedger runs the whole pipeline for a group: expenses to balances,
// recorded payments folded in, then the settlement plan. The returned
// balances already include the payments.
func PlanFromLedger(expenses []ExpenseForBalance, payments []PaymentForBalance) (Balances, []Settlement, error) {
	balances, err := ComputeBalances(expenses)
	if err != nil {
		return nil, nil, err
	}
	balances, err = ApplyPayments(balances, payments)
	if err != nil {
		return nil, nil, err
	}
	return balances, OptimizeSettlements(balances), nil
}

func partition(balances Balances) (creditors, debtors []position) {
	for memberID, balance := range balances {
		switch {
		case IsSettled(balance):
		case balance.IsPositive():
			creditors = append(creditors, position{memberID: memberID, amount: balance})
		default:
			debtors = append(debtors, position{memberID: memberID, amount: balance.Neg()})
		}
	}

	slices.SortFunc(creditors, byAmountDesc)
	slices.SortFunc(debtors, byAmountDesc)
	return creditors, debtors
}

func byAmountDesc(a, b position) int {
	if c := b.amount.Cmp(a.amount); c != 0 {
		return c
	}
	return strings.Compare(a.memberID, b.memberID)
}
