// Package pot implements the pot reconciliation engine: the derived
// financial state of the ensemble's shared pot, recomputed from source
// records on every request. It only ever reads; all writes happen in the
// surrounding console handlers.
package pot

import (
	"context"
	"fmt"
	"time"

	"github.com/harmonia-live/api-ensemble/internal/advance"
	"github.com/harmonia-live/api-ensemble/internal/distribution"
	"github.com/harmonia-live/api-ensemble/internal/engagement"
	"github.com/harmonia-live/api-ensemble/internal/movement"
	"golang.org/x/sync/errgroup"
)

// EngagementSource yields non-cancelled engagements with event dates in
// [from, to). Implementations must exclude the cancellation subset at read
// time.
type EngagementSource interface {
	ActiveInRange(ctx context.Context, from time.Time, to *time.Time) ([]engagement.Engagement, error)
}

// MovementSource yields manual movements dated in [from, to).
type MovementSource interface {
	InRange(ctx context.Context, from time.Time, to *time.Time) ([]movement.ManualMovement, error)
}

// AdvanceSource yields advance payments dated in [from, to), with the linked
// engagement resolved.
type AdvanceSource interface {
	InRange(ctx context.Context, from time.Time, to *time.Time) ([]advance.AdvancePayment, error)
}

// PlanSource yields the manually maintained distribution plan.
type PlanSource interface {
	All(ctx context.Context) ([]distribution.PlanItem, error)
}

// Engine is a pure function of its sources and config: no shared mutable
// state, so concurrent invocations need no locking.
type Engine struct {
	cfg         *Config
	engagements EngagementSource
	movements   MovementSource
	advances    AdvanceSource
	plan        PlanSource
}

func NewEngine(cfg *Config, es EngagementSource, ms MovementSource, as AdvanceSource, ps PlanSource) *Engine {
	return &Engine{
		cfg:         cfg,
		engagements: es,
		movements:   ms,
		advances:    as,
		plan:        ps,
	}
}

type snapshot struct {
	engagements []engagement.Engagement
	movements   []movement.ManualMovement
	advances    []advance.AdvancePayment
}

// fetch pulls the three independent record streams for the reconciliation
// scope. The reads have no data dependency on each other and run
// concurrently; the first failure cancels the rest and the partial snapshot
// is discarded.
func (e *Engine) fetch(ctx context.Context) (*snapshot, error) {
	g, ctx := errgroup.WithContext(ctx)
	var snap snapshot

	g.Go(func() error {
		rows, err := e.engagements.ActiveInRange(ctx, e.cfg.Cutoff, nil)
		if err != nil {
			return fmt.Errorf("%w: engagements: %v", ErrReadFailure, err)
		}
		snap.engagements = rows
		return nil
	})
	g.Go(func() error {
		rows, err := e.movements.InRange(ctx, e.cfg.Cutoff, nil)
		if err != nil {
			return fmt.Errorf("%w: movements: %v", ErrReadFailure, err)
		}
		snap.movements = rows
		return nil
	})
	g.Go(func() error {
		rows, err := e.advances.InRange(ctx, e.cfg.Cutoff, nil)
		if err != nil {
			return fmt.Errorf("%w: advances: %v", ErrReadFailure, err)
		}
		snap.advances = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &snap, nil
}
