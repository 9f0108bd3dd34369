package engagement

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return v
}

func TestFinalDeltaIsRecomputed(t *testing.T) {
	tests := []struct {
		name  string
		gross string
		cost  string
		adj   string
		want  string
	}{
		{"plain margin", "800", "300", "0", "500"},
		{"negative adjustment", "400", "150", "-10", "240"},
		{"adjustment only", "0", "0", "35.50", "35.5"},
		{"loss-making date", "200", "350", "0", "-150"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := Engagement{
				GrossAmount:      dec(t, tt.gross),
				MusicianCost:     dec(t, tt.cost),
				ManualAdjustment: dec(t, tt.adj),
			}
			if got := e.FinalDelta(); got.String() != tt.want {
				t.Fatalf("FinalDelta = %s, want %s", got, tt.want)
			}
			wantNet := dec(t, tt.gross).Sub(dec(t, tt.cost))
			if !e.NetDelta().Equal(wantNet) {
				t.Fatalf("NetDelta = %s, want %s", e.NetDelta(), wantNet)
			}
		})
	}
}

func TestIsCancelled(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{StatusRequested, false},
		{StatusConfirmed, false},
		{StatusCompleted, false},
		{StatusCancelled, true},
		{StatusRejected, true},
	}
	for _, tt := range tests {
		e := Engagement{Status: tt.status}
		if e.IsCancelled() != tt.want {
			t.Errorf("IsCancelled(%s) = %v, want %v", tt.status, e.IsCancelled(), tt.want)
		}
	}
}

func TestCreateEngagementDTO_Validation(t *testing.T) {
	valid := CreateEngagementDTO{Title: "Spring gala", EventDate: "2024-03-10"}
	e, err := valid.ToModel()
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if e.Status != StatusRequested {
		t.Errorf("default status = %q", e.Status)
	}
	if e.IncomeType != "performance" {
		t.Errorf("default income type = %q", e.IncomeType)
	}

	tests := []struct {
		name string
		dto  CreateEngagementDTO
	}{
		{"missing title", CreateEngagementDTO{EventDate: "2024-03-10"}},
		{"bad date", CreateEngagementDTO{Title: "x", EventDate: "10.03.2024"}},
		{"unknown status", CreateEngagementDTO{Title: "x", EventDate: "2024-03-10", Status: "Maybe"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := tt.dto.ToModel(); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}
