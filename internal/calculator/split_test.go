package calculator

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCalculateSplit(t *testing.T) {
	tests := []struct {
		name         string
		expense      ExpenseForBalance
		wantErr      bool
		validateFunc func(t *testing.T, splits map[string]decimal.Decimal)
	}{
		{
			name: "two-person even split",
			expense: ExpenseForBalance{
				Amount:       d("33"),
				PayerID:      "Alice",
				Participants: []string{"Alice", "Bob"},
			},
			validateFunc: func(t *testing.T, splits map[string]decimal.Decimal) {
				for _, person := range []string{"Alice", "Bob"} {
					if !splits[person].Equal(d("16.5")) {
						t.Errorf("%s share = %v, want 16.5", person, splits[person])
					}
				}
			},
		},
		{
			name: "three-person split keeps full precision",
			expense: ExpenseForBalance{
				Amount:       d("100"),
				PayerID:      "Alice",
				Participants: []string{"Alice", "Bob", "Charlie"},
			},
			validateFunc: func(t *testing.T, splits map[string]decimal.Decimal) {
				// 100 / 3 is not rounded to cents before accumulation
				for person, share := range splits {
					if share.Equal(d("33.33")) {
						t.Errorf("%s share was rounded to cents", person)
					}
					if FormatAmount(share) != "33.33" {
						t.Errorf("%s share = %s, want 33.33 when presented", person, FormatAmount(share))
					}
				}
			},
		},
		{
			name: "repeated participant accumulates shares that still sum to the amount",
			expense: ExpenseForBalance{
				Amount:       d("30"),
				PayerID:      "Alice",
				Participants: []string{"Alice", "Bob", "Bob"},
			},
			validateFunc: func(t *testing.T, splits map[string]decimal.Decimal) {
				if !splits["Bob"].Equal(d("20")) {
					t.Errorf("Bob share = %v, want 20", splits["Bob"])
				}
				if total := splits["Alice"].Add(splits["Bob"]); !total.Equal(d("30")) {
					t.Errorf("shares sum to %v, want 30", total)
				}
			},
		},
		{
			name:    "zero amount should error",
			expense: ExpenseForBalance{Amount: decimal.Zero, PayerID: "Alice", Participants: []string{"Alice"}},
			wantErr: true,
		},
		{
			name:    "no participants should error",
			expense: ExpenseForBalance{Amount: d("10"), PayerID: "Alice", Participants: []string{}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			splits, err := CalculateSplit(tt.expense)
			if (err != nil) != tt.wantErr {
				t.Errorf("CalculateSplit() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && tt.validateFunc != nil {
				tt.validateFunc(t, splits)
			}
		})
	}
}
