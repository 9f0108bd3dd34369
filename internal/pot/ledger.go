// internal/pot/ledger.go
package pot

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is one audit row: a movement or a settled engagement, with
// the running balance around it.
type LedgerEntry struct {
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Before      decimal.Decimal `json:"before"`
	After       decimal.Decimal `json:"after"`
}

// entry kinds for the same-day tie-break.
const (
	kindMovement   = 0
	kindEngagement = 1
)

type ledgerItem struct {
	date   time.Time
	kind   int
	id     uint
	desc   string
	amount decimal.Decimal
}

// BuildLedger merges manual movements and settled engagement contributions
// into one chronological sequence and walks a running balance from
// BaseBalance, emitting before/after pairs.
//
// Ordering is ascending by date; on the same day, manual movements come
// before engagement entries, then ascending id within each kind. The rule is
// arbitrary but deterministic and stable across reloads, which is what an
// audit trail needs.
func (e *Engine) BuildLedger(ctx context.Context) ([]LedgerEntry, error) {
	if err := e.cfg.validate(); err != nil {
		return nil, err
	}
	snap, err := e.fetch(ctx)
	if err != nil {
		return nil, err
	}
	set, err := classify(snap)
	if err != nil {
		return nil, err
	}

	items := make([]ledgerItem, 0, len(set.movements)+len(set.engagements))
	for i := range set.movements {
		m := &set.movements[i]
		items = append(items, ledgerItem{
			date:   m.Date,
			kind:   kindMovement,
			id:     m.ID,
			desc:   m.Description,
			amount: m.Amount,
		})
	}
	for i := range set.engagements {
		f := &set.engagements[i]
		if !f.settled {
			continue
		}
		desc := f.rec.Title
		if f.rec.Venue != "" {
			desc = desc + " @ " + f.rec.Venue
		}
		items = append(items, ledgerItem{
			date:   f.rec.EventDate,
			kind:   kindEngagement,
			id:     f.rec.ID,
			desc:   desc,
			amount: f.finalDelta,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].date.Equal(items[j].date) {
			return items[i].date.Before(items[j].date)
		}
		if items[i].kind != items[j].kind {
			return items[i].kind < items[j].kind
		}
		return items[i].id < items[j].id
	})

	entries := make([]LedgerEntry, 0, len(items))
	running := e.cfg.BaseBalance
	for _, it := range items {
		before := running
		running = running.Add(it.amount)
		entries = append(entries, LedgerEntry{
			Date:        it.date,
			Description: it.desc,
			Amount:      it.amount,
			Before:      before,
			After:       running,
		})
	}
	return entries, nil
}

// DisplayOrder turns a chronological ledger into the most-recent-first view,
// truncated to the last limit entries when limit > 0. Presentation only: the
// running balance was already computed in chronological order.
func DisplayOrder(entries []LedgerEntry, limit int) []LedgerEntry {
	out := make([]LedgerEntry, len(entries))
	for i, entry := range entries {
		out[len(entries)-1-i] = entry
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
