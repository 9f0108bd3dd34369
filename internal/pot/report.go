// internal/pot/report.go
package pot

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Window is a half-open reporting period [Start, End). Independent of the
// reconciliation scope: it reports contracted economics for the period,
// not settlement state.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// YearWindow covers one calendar year.
func YearWindow(year int) Window {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(1, 0, 0)}
}

// MonthWindow covers the calendar month containing t.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return Window{Start: start, End: start.AddDate(0, 1, 0)}
}

// Report holds period totals over non-cancelled engagements in the window.
type Report struct {
	Window       Window                     `json:"window"`
	GrossTotal   decimal.Decimal            `json:"grossTotal"`
	CostTotal    decimal.Decimal            `json:"costTotal"`
	MarginTotal  decimal.Decimal            `json:"marginTotal"`
	ByIncomeType map[string]decimal.Decimal `json:"byIncomeType"`
}

// ComputeReport aggregates engagements whose event date falls in the window,
// excluding the cancellation subset only. Collected and musiciansPaid do not
// condition anything here: the report covers contracted, not necessarily
// settled, economics. An empty window is a valid all-zero result.
func (e *Engine) ComputeReport(ctx context.Context, w Window, incomeType string) (Report, error) {
	if w.Start.IsZero() || w.End.IsZero() || !w.Start.Before(w.End) {
		return Report{}, fmt.Errorf("%w: invalid reporting window", ErrConfigurationMissing)
	}

	rows, err := e.engagements.ActiveInRange(ctx, w.Start, &w.End)
	if err != nil {
		return Report{}, fmt.Errorf("%w: engagements: %v", ErrReadFailure, err)
	}

	report := Report{
		Window:       w,
		GrossTotal:   decimal.Zero,
		CostTotal:    decimal.Zero,
		MarginTotal:  decimal.Zero,
		ByIncomeType: map[string]decimal.Decimal{},
	}
	for i := range rows {
		rec := &rows[i]
		if rec.EventDate.IsZero() {
			return Report{}, fmt.Errorf("%w: engagement %d has no event date", ErrMalformedRecord, rec.ID)
		}
		if incomeType != "" && rec.IncomeType != incomeType {
			continue
		}
		report.GrossTotal = report.GrossTotal.Add(rec.GrossAmount)
		report.CostTotal = report.CostTotal.Add(rec.MusicianCost)
		report.MarginTotal = report.MarginTotal.Add(rec.FinalDelta())

		prev, ok := report.ByIncomeType[rec.IncomeType]
		if !ok {
			prev = decimal.Zero
		}
		report.ByIncomeType[rec.IncomeType] = prev.Add(rec.GrossAmount)
	}
	return report, nil
}
