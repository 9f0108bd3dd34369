// internal/pot/classify.go
package pot

import (
	"fmt"

	"github.com/harmonia-live/api-ensemble/internal/advance"
	"github.com/harmonia-live/api-ensemble/internal/engagement"
	"github.com/harmonia-live/api-ensemble/internal/movement"
	"github.com/shopspring/decimal"
)

// engagementFacts is one engagement with its recognition labels and its
// recomputed final delta. FinalDelta is always derived here, never read
// from a stored column.
type engagementFacts struct {
	rec        engagement.Engagement
	finalDelta decimal.Decimal

	// settled: the client paid and the musicians were paid. Contributes to
	// the settled balance.
	settled bool
	// liquid: the client paid, regardless of musician payment. Contributes
	// to the liquidity balance.
	liquid bool
}

// advanceFacts is one advance payment with its pending labels.
//
// Exemption rule: once the parent engagement settles, its MusicianCost is
// assumed to already include any advances paid out of it, so the advance
// must stop being subtracted or it would count twice. That assumption about
// MusicianCost is a data-entry convention, not something this engine can
// verify.
type advanceFacts struct {
	rec advance.AdvancePayment

	pendingSettled bool
	pendingLiquid  bool
}

type classified struct {
	engagements []engagementFacts
	advances    []advanceFacts
	movements   []movement.ManualMovement
}

// classify labels every record in the snapshot. Validation happens here:
// missing dates, non-positive advance amounts and dangling engagement links
// are malformed records, never coerced to zero.
func classify(snap *snapshot) (*classified, error) {
	set := &classified{movements: snap.movements}

	byID := make(map[uint]*engagement.Engagement, len(snap.engagements))
	for i := range snap.engagements {
		rec := &snap.engagements[i]
		if rec.EventDate.IsZero() {
			return nil, fmt.Errorf("%w: engagement %d has no event date", ErrMalformedRecord, rec.ID)
		}
		byID[rec.ID] = rec
		set.engagements = append(set.engagements, engagementFacts{
			rec:        *rec,
			finalDelta: rec.FinalDelta(),
			settled:    rec.Collected && rec.MusiciansPaid,
			liquid:     rec.Collected,
		})
	}

	for i := range snap.movements {
		if snap.movements[i].Date.IsZero() {
			return nil, fmt.Errorf("%w: movement %d has no date", ErrMalformedRecord, snap.movements[i].ID)
		}
	}

	for i := range snap.advances {
		rec := snap.advances[i]
		if rec.PaymentDate.IsZero() {
			return nil, fmt.Errorf("%w: advance %d has no payment date", ErrMalformedRecord, rec.ID)
		}
		if !rec.Amount.IsPositive() {
			return nil, fmt.Errorf("%w: advance %d has non-positive amount", ErrMalformedRecord, rec.ID)
		}

		facts := advanceFacts{rec: rec, pendingSettled: true, pendingLiquid: true}
		if rec.EngagementID != nil {
			// Prefer the in-scope row so advance and engagement recognition
			// read the same snapshot; fall back to the preloaded parent for
			// engagements outside the reconciliation scope.
			parent := byID[*rec.EngagementID]
			if parent == nil {
				parent = rec.Engagement
			}
			if parent == nil {
				return nil, fmt.Errorf("%w: advance %d references missing engagement %d", ErrMalformedRecord, rec.ID, *rec.EngagementID)
			}
			facts.pendingSettled = !(parent.Collected && parent.MusiciansPaid)
			facts.pendingLiquid = !parent.MusiciansPaid
		}
		set.advances = append(set.advances, facts)
	}

	return set, nil
}
