// internal/pot/residual.go
package pot

import (
	"context"
	"fmt"

	"github.com/harmonia-live/api-ensemble/internal/distribution"
	"github.com/shopspring/decimal"
)

// ResidualReport compares the distribution plan against the liquidity
// balance. A non-zero residual is a reported fact, never an error.
type ResidualReport struct {
	LiquidityBalance decimal.Decimal         `json:"liquidityBalance"`
	Assigned         decimal.Decimal         `json:"assigned"`
	Residual         decimal.Decimal         `json:"residual"`
	Balanced         bool                    `json:"balanced"`
	Items            []distribution.PlanItem `json:"items"`
}

// Residual is the unassigned portion of the liquidity balance after
// subtracting the allocation list.
func Residual(liquidity decimal.Decimal, items []distribution.PlanItem) decimal.Decimal {
	assigned := decimal.Zero
	for i := range items {
		assigned = assigned.Add(items[i].Amount)
	}
	return liquidity.Sub(assigned)
}

// DistributionResidual computes the liquidity balance and compares it with
// the current plan items.
func (e *Engine) DistributionResidual(ctx context.Context) (ResidualReport, error) {
	balances, err := e.ComputeBalances(ctx)
	if err != nil {
		return ResidualReport{}, err
	}
	items, err := e.plan.All(ctx)
	if err != nil {
		return ResidualReport{}, fmt.Errorf("%w: plan items: %v", ErrReadFailure, err)
	}

	assigned := decimal.Zero
	for i := range items {
		assigned = assigned.Add(items[i].Amount)
	}
	residual := balances.LiquidityBalance.Sub(assigned)

	return ResidualReport{
		LiquidityBalance: balances.LiquidityBalance,
		Assigned:         assigned,
		Residual:         residual,
		Balanced:         residual.IsZero(),
		Items:            items,
	}, nil
}
