// internal/movement/dto.go
package movement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// Direction tags accepted on the write path. The store only ever holds one
// signed amount; the tag is normalized away before persisting.
const (
	DirectionIncome  = "income"
	DirectionExpense = "expense"
)

type CreateMovementDTO struct {
	Date        string          `json:"date"` // "2006-01-02"
	Amount      decimal.Decimal `json:"amount"`
	Direction   string          `json:"direction"` // optional: "income" | "expense"
	Description string          `json:"description"`
}

// ToModel validates the DTO and normalizes direction into the sign of Amount.
func (dto *CreateMovementDTO) ToModel() (*ManualMovement, error) {
	date, err := time.Parse(DateLayout, dto.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date (want YYYY-MM-DD): %w", err)
	}
	if dto.Description == "" {
		return nil, fmt.Errorf("description is required")
	}
	if dto.Amount.IsZero() {
		return nil, fmt.Errorf("amount must be non-zero")
	}

	amount := dto.Amount
	switch dto.Direction {
	case "":
		// already signed
	case DirectionIncome:
		amount = amount.Abs()
	case DirectionExpense:
		amount = amount.Abs().Neg()
	default:
		return nil, fmt.Errorf("unknown direction %q", dto.Direction)
	}

	return &ManualMovement{
		Date:        date,
		Amount:      amount,
		Description: dto.Description,
	}, nil
}
