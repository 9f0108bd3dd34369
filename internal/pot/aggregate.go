// internal/pot/aggregate.go
package pot

import (
	"context"

	"github.com/shopspring/decimal"
)

// Balances are the headline figures of the pot over the reconciliation
// scope.
type Balances struct {
	// SettledBalance recognizes only fully collected-and-paid engagements:
	// cash truly banked.
	SettledBalance decimal.Decimal `json:"settledBalance"`
	// LiquidityBalance recognizes collected engagements regardless of
	// musician payment status: cash available to work with.
	LiquidityBalance decimal.Decimal `json:"liquidityBalance"`
	PendingToCollect decimal.Decimal `json:"pendingToCollect"`
	PendingToPay     decimal.Decimal `json:"pendingToPay"`
}

func aggregate(cfg *Config, set *classified) Balances {
	settled := cfg.BaseBalance
	liquidity := cfg.BaseBalance
	pendingCollect := decimal.Zero
	pendingPay := decimal.Zero

	for i := range set.movements {
		settled = settled.Add(set.movements[i].Amount)
		liquidity = liquidity.Add(set.movements[i].Amount)
	}

	for i := range set.engagements {
		f := &set.engagements[i]
		if f.settled {
			settled = settled.Add(f.finalDelta)
		}
		if f.liquid {
			liquidity = liquidity.Add(f.finalDelta)
		}
		if !f.rec.Collected {
			pendingCollect = pendingCollect.Add(f.rec.GrossAmount)
		}
		if !f.rec.MusiciansPaid {
			pendingPay = pendingPay.Add(f.rec.MusicianCost)
		}
	}

	for i := range set.advances {
		a := &set.advances[i]
		if a.pendingSettled {
			settled = settled.Sub(a.rec.Amount)
		}
		if a.pendingLiquid {
			liquidity = liquidity.Sub(a.rec.Amount)
		}
	}

	return Balances{
		SettledBalance:   settled,
		LiquidityBalance: liquidity,
		PendingToCollect: pendingCollect,
		PendingToPay:     pendingPay,
	}
}

// ComputeBalances fetches and classifies the reconciliation scope and folds
// it into the headline balances.
func (e *Engine) ComputeBalances(ctx context.Context) (Balances, error) {
	if err := e.cfg.validate(); err != nil {
		return Balances{}, err
	}
	snap, err := e.fetch(ctx)
	if err != nil {
		return Balances{}, err
	}
	set, err := classify(snap)
	if err != nil {
		return Balances{}, err
	}
	return aggregate(e.cfg, set), nil
}
