package pot

import (
	"context"
	"testing"

	"github.com/harmonia-live/api-ensemble/internal/engagement"
	"github.com/harmonia-live/api-ensemble/internal/movement"
)

func TestBuildLedger_ChronologicalWithRunningBalance(t *testing.T) {
	srcs := reconciliationFixture(t)
	engine := newTestEngine(testConfig(t), srcs)

	entries, err := engine.BuildLedger(context.Background())
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}

	// Two movements plus the one settled engagement (A). B is collected but
	// unpaid, so it stays off the audit ledger.
	if len(entries) != 3 {
		t.Fatalf("expected 3 ledger entries, got %d", len(entries))
	}

	wantDescriptions := []string{"string set reimbursement", "bank fee", "Spring gala"}
	wantAfter := []string{"520", "515", "1015"}
	for i, entry := range entries {
		if entry.Description != wantDescriptions[i] {
			t.Errorf("entry %d description = %q, want %q", i, entry.Description, wantDescriptions[i])
		}
		if entry.After.String() != wantAfter[i] {
			t.Errorf("entry %d after = %s, want %s", i, entry.After, wantAfter[i])
		}
	}

	if !entries[0].Before.Equal(d(t, "500.00")) {
		t.Errorf("first entry starts at %s, want base balance 500", entries[0].Before)
	}
	for i := 1; i < len(entries); i++ {
		if !entries[i].Before.Equal(entries[i-1].After) {
			t.Errorf("entry %d before (%s) does not chain from entry %d after (%s)",
				i, entries[i].Before, i-1, entries[i-1].After)
		}
	}
}

// Same-day entries order deterministically: movements first, then engagement
// entries, ascending id within each kind.
func TestBuildLedger_SameDayTieBreak(t *testing.T) {
	date := day(t, "2024-03-10")
	srcs := &stubSources{
		engagements: []engagement.Engagement{
			{
				ID: 4, Title: "Matinee", EventDate: date, Status: engagement.StatusCompleted,
				GrossAmount: d(t, "100"), MusicianCost: d(t, "40"),
				Collected: true, MusiciansPaid: true,
			},
			{
				ID: 2, Title: "Soiree", EventDate: date, Status: engagement.StatusCompleted,
				GrossAmount: d(t, "200"), MusicianCost: d(t, "80"),
				Collected: true, MusiciansPaid: true,
			},
		},
		movements: []movement.ManualMovement{
			{ID: 9, Date: date, Amount: d(t, "-3"), Description: "parking"},
			{ID: 5, Date: date, Amount: d(t, "10"), Description: "tip jar"},
		},
	}
	engine := newTestEngine(testConfig(t), srcs)

	entries, err := engine.BuildLedger(context.Background())
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	want := []string{"tip jar", "parking", "Soiree", "Matinee"}
	if len(entries) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(entries))
	}
	for i, entry := range entries {
		if entry.Description != want[i] {
			t.Errorf("entry %d = %q, want %q", i, entry.Description, want[i])
		}
	}
}

// The last ledger entry's running balance must agree with the aggregator's
// settled balance for the same scope and records.
func TestBuildLedger_RoundTripWithAggregator(t *testing.T) {
	srcs := reconciliationFixture(t)
	// Advances are not ledger entries; drop them so the two derivations
	// cover the same contributions.
	srcs.advances = nil
	engine := newTestEngine(testConfig(t), srcs)

	entries, err := engine.BuildLedger(context.Background())
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	balances, err := engine.ComputeBalances(context.Background())
	if err != nil {
		t.Fatalf("ComputeBalances: %v", err)
	}
	last := entries[len(entries)-1]
	if !last.After.Equal(balances.SettledBalance) {
		t.Fatalf("ledger ends at %s, aggregator says %s", last.After, balances.SettledBalance)
	}
}

func TestDisplayOrder(t *testing.T) {
	srcs := reconciliationFixture(t)
	engine := newTestEngine(testConfig(t), srcs)

	entries, err := engine.BuildLedger(context.Background())
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}

	tests := []struct {
		name      string
		limit     int
		wantLen   int
		wantFirst string
	}{
		{"no limit reverses everything", 0, 3, "Spring gala"},
		{"limit truncates to most recent", 2, 2, "Spring gala"},
		{"limit larger than ledger", 10, 3, "Spring gala"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DisplayOrder(entries, tt.limit)
			if len(got) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(got), tt.wantLen)
			}
			if got[0].Description != tt.wantFirst {
				t.Fatalf("first = %q, want %q", got[0].Description, tt.wantFirst)
			}
			// chronological input untouched
			if entries[0].Description != "string set reimbursement" {
				t.Fatalf("DisplayOrder mutated its input")
			}
		})
	}
}

func TestBuildLedger_EmptyScope(t *testing.T) {
	engine := newTestEngine(testConfig(t), &stubSources{})
	entries, err := engine.BuildLedger(context.Background())
	if err != nil {
		t.Fatalf("BuildLedger: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty ledger, got %d entries", len(entries))
	}
}
