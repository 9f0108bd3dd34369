package movement

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestCreateMovementDTO_ToModel(t *testing.T) {
	tests := []struct {
		name       string
		dto        CreateMovementDTO
		wantAmount string
		wantErr    bool
	}{
		{
			name:       "signed amount without direction",
			dto:        CreateMovementDTO{Date: "2024-02-01", Amount: decimal.NewFromInt(-5), Description: "bank fee"},
			wantAmount: "-5",
		},
		{
			name:       "income normalizes to positive",
			dto:        CreateMovementDTO{Date: "2024-02-01", Amount: decimal.NewFromInt(-20), Direction: DirectionIncome, Description: "reimbursement"},
			wantAmount: "20",
		},
		{
			name:       "expense normalizes to negative",
			dto:        CreateMovementDTO{Date: "2024-02-01", Amount: decimal.NewFromInt(35), Direction: DirectionExpense, Description: "sheet music"},
			wantAmount: "-35",
		},
		{
			name:    "unknown direction",
			dto:     CreateMovementDTO{Date: "2024-02-01", Amount: decimal.NewFromInt(10), Direction: "sideways", Description: "x"},
			wantErr: true,
		},
		{
			name:    "zero amount",
			dto:     CreateMovementDTO{Date: "2024-02-01", Amount: decimal.Zero, Description: "nothing"},
			wantErr: true,
		},
		{
			name:    "missing description",
			dto:     CreateMovementDTO{Date: "2024-02-01", Amount: decimal.NewFromInt(10)},
			wantErr: true,
		},
		{
			name:    "bad date",
			dto:     CreateMovementDTO{Date: "02/01/2024", Amount: decimal.NewFromInt(10), Description: "x"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := tt.dto.ToModel()
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", m)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToModel: %v", err)
			}
			if m.Amount.String() != tt.wantAmount {
				t.Fatalf("amount = %s, want %s", m.Amount, tt.wantAmount)
			}
		})
	}
}
