package pot

import (
	"context"
	"errors"
	"testing"

	"github.com/harmonia-live/api-ensemble/internal/engagement"
)

func TestYearWindow(t *testing.T) {
	w := YearWindow(2024)
	if !w.Start.Equal(day(t, "2024-01-01")) {
		t.Errorf("start = %s", w.Start)
	}
	if !w.End.Equal(day(t, "2025-01-01")) {
		t.Errorf("end = %s", w.End)
	}
}

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name  string
		now   string
		start string
		end   string
	}{
		{"mid month", "2024-04-20", "2024-04-01", "2024-05-01"},
		{"december rolls over the year", "2024-12-31", "2024-12-01", "2025-01-01"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := MonthWindow(day(t, tt.now))
			if !w.Start.Equal(day(t, tt.start)) || !w.End.Equal(day(t, tt.end)) {
				t.Fatalf("window = [%s, %s), want [%s, %s)", w.Start, w.End, tt.start, tt.end)
			}
		})
	}
}

func TestComputeReport_PeriodTotals(t *testing.T) {
	srcs := reconciliationFixture(t)
	// Uncollected, unpaid booking: the report still counts it, because it
	// reports contracted economics, not settlement state.
	srcs.engagements = append(srcs.engagements, engagement.Engagement{
		ID: 5, Title: "Autumn tour opener", EventDate: day(t, "2024-09-15"),
		Status: engagement.StatusConfirmed, IncomeType: "performance",
		GrossAmount: d(t, "600"), MusicianCost: d(t, "250"),
	})
	engine := newTestEngine(testConfig(t), srcs)

	got, err := engine.ComputeReport(context.Background(), YearWindow(2024), "")
	if err != nil {
		t.Fatalf("ComputeReport: %v", err)
	}

	assertDecimal(t, "GrossTotal", got.GrossTotal, d(t, "1800"))
	assertDecimal(t, "CostTotal", got.CostTotal, d(t, "700"))
	assertDecimal(t, "MarginTotal", got.MarginTotal, d(t, "1090"))

	assertDecimal(t, "performance gross", got.ByIncomeType["performance"], d(t, "1400"))
	assertDecimal(t, "private gross", got.ByIncomeType["private"], d(t, "400"))
}

func TestComputeReport_IncomeTypeFilter(t *testing.T) {
	engine := newTestEngine(testConfig(t), reconciliationFixture(t))

	got, err := engine.ComputeReport(context.Background(), YearWindow(2024), "private")
	if err != nil {
		t.Fatalf("ComputeReport: %v", err)
	}
	assertDecimal(t, "GrossTotal", got.GrossTotal, d(t, "400"))
	assertDecimal(t, "CostTotal", got.CostTotal, d(t, "150"))
	assertDecimal(t, "MarginTotal", got.MarginTotal, d(t, "240"))
	if _, ok := got.ByIncomeType["performance"]; ok {
		t.Fatalf("filtered report leaked another income type")
	}
}

func TestComputeReport_WindowIndependentOfCutoff(t *testing.T) {
	srcs := reconciliationFixture(t)
	engine := newTestEngine(testConfig(t), srcs)

	// Only April falls in this window.
	got, err := engine.ComputeReport(context.Background(), MonthWindow(day(t, "2024-04-10")), "")
	if err != nil {
		t.Fatalf("ComputeReport: %v", err)
	}
	assertDecimal(t, "GrossTotal", got.GrossTotal, d(t, "400"))
}

func TestComputeReport_EmptyWindowIsZeroNotError(t *testing.T) {
	engine := newTestEngine(testConfig(t), reconciliationFixture(t))

	got, err := engine.ComputeReport(context.Background(), YearWindow(2030), "")
	if err != nil {
		t.Fatalf("ComputeReport: %v", err)
	}
	if !got.GrossTotal.IsZero() || !got.CostTotal.IsZero() || !got.MarginTotal.IsZero() {
		t.Fatalf("expected all-zero report, got %+v", got)
	}
	if len(got.ByIncomeType) != 0 {
		t.Fatalf("expected empty breakdown, got %v", got.ByIncomeType)
	}
}

func TestComputeReport_CancelledExcluded(t *testing.T) {
	srcs := reconciliationFixture(t)
	srcs.engagements = append(srcs.engagements, engagement.Engagement{
		ID: 9, Title: "Rejected offer", EventDate: day(t, "2024-05-05"),
		Status: engagement.StatusRejected, IncomeType: "performance",
		GrossAmount: d(t, "5000"), MusicianCost: d(t, "2000"),
	})
	engine := newTestEngine(testConfig(t), srcs)

	got, err := engine.ComputeReport(context.Background(), YearWindow(2024), "")
	if err != nil {
		t.Fatalf("ComputeReport: %v", err)
	}
	assertDecimal(t, "GrossTotal", got.GrossTotal, d(t, "1200"))
}

func TestComputeReport_ReadFailureAndBadWindow(t *testing.T) {
	srcs := reconciliationFixture(t)
	srcs.engagementErr = errors.New("timeout")
	engine := newTestEngine(testConfig(t), srcs)

	if _, err := engine.ComputeReport(context.Background(), YearWindow(2024), ""); !errors.Is(err, ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure, got %v", err)
	}

	engine = newTestEngine(testConfig(t), reconciliationFixture(t))
	if _, err := engine.ComputeReport(context.Background(), Window{}, ""); err == nil {
		t.Fatalf("expected error for zero window")
	}
	if _, err := engine.ComputeReport(context.Background(), Window{Start: day(t, "2024-02-01"), End: day(t, "2024-01-01")}, ""); err == nil {
		t.Fatalf("expected error for inverted window")
	}
}
