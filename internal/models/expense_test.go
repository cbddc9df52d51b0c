package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mmynk/splitledger/internal/calculator"
)

func TestExpenseValidate(t *testing.T) {
	valid := func() Expense {
		return Expense{
			ID:           "e1",
			Description:  "Groceries",
			Amount:       decimal.NewFromInt(30),
			PayerID:      "alice",
			Participants: []string{"alice", "bob"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(e *Expense)
		wantErr bool
	}{
		{"valid", func(e *Expense) {}, false},
		{"payer not participating", func(e *Expense) { e.Participants = []string{"bob"} }, false},
		{"zero amount", func(e *Expense) { e.Amount = decimal.Zero }, true},
		{"negative amount", func(e *Expense) { e.Amount = decimal.NewFromInt(-1) }, true},
		{"no participants", func(e *Expense) { e.Participants = nil }, true},
		{"duplicate participant", func(e *Expense) { e.Participants = []string{"alice", "bob", "alice"} }, true},
		{"empty participant id", func(e *Expense) { e.Participants = []string{"alice", ""} }, true},
		{"missing payer", func(e *Expense) { e.PayerID = "" }, true},
		{"blank description", func(e *Expense) { e.Description = "  " }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid()
			tt.mutate(&e)
			err := e.Validate()
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, calculator.ErrInvalidExpense)
		})
	}
}

func TestGroupMembership(t *testing.T) {
	g := &Group{Members: []string{"alice", "bob"}}
	assert.True(t, g.HasMember("alice"))
	assert.False(t, g.HasMember("carol"))
	assert.Equal(t, []string{"carol", "dave"}, g.NonMembers([]string{"bob", "carol", "dave"}))
	assert.Empty(t, g.NonMembers([]string{"alice"}))
}
