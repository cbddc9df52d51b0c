// Package ledger loads a group's recorded history and runs it through the
// calculator.
package ledger

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/mmynk/splitledger/internal/calculator"
	"github.com/mmynk/splitledger/internal/models"
	"github.com/mmynk/splitledger/internal/storage"
)

// Snapshot is the computed state of a group's ledger.
type Snapshot struct {
	// Balances is the net position per member after recorded payments.
	// Members with no activity are absent.
	Balances calculator.Balances

	// Settlements is the greedy plan that clears Balances.
	Settlements []calculator.Settlement

	Expenses []*models.Expense
	Payments []*models.Payment
}

// Compute loads the group's expenses and payments concurrently and derives
// balances and a settlement plan from them.
func Compute(ctx context.Context, store storage.LedgerStore, groupID string) (*Snapshot, error) {
	snap := &Snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		expenses, err := store.ListExpensesByGroup(gctx, groupID)
		if err != nil {
			return fmt.Errorf("load expenses: %w", err)
		}
		snap.Expenses = expenses
		return nil
	})
	g.Go(func() error {
		payments, err := store.ListPaymentsByGroup(gctx, groupID)
		if err != nil {
			return fmt.Errorf("load payments: %w", err)
		}
		snap.Payments = payments
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := snap.compute(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *Snapshot) compute() error {
	expenses := make([]calculator.ExpenseForBalance, len(s.Expenses))
	for i, e := range s.Expenses {
		expenses[i] = e.ForBalance()
	}
	payments := make([]calculator.PaymentForBalance, len(s.Payments))
	for i, p := range s.Payments {
		payments[i] = p.ForBalance()
	}

	balances, settlements, err := calculator.PlanFromLedger(expenses, payments)
	if err != nil {
		return fmt.Errorf("compute plan: %w", err)
	}

	s.Balances = balances
	s.Settlements = settlements
	return nil
}
