package pot

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHandlerBalances(t *testing.T) {
	h := NewHandler(newTestEngine(testConfig(t), reconciliationFixture(t)))

	rec := httptest.NewRecorder()
	h.Balances(rec, httptest.NewRequest(http.MethodGet, "/pot/balances", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var got struct {
		SettledBalance   string `json:"settledBalance"`
		LiquidityBalance string `json:"liquidityBalance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	if got.SettledBalance != "965" || got.LiquidityBalance != "1205" {
		t.Fatalf("balances = %+v", got)
	}
}

func TestHandlerBalances_ReadFailureMapsToBadGateway(t *testing.T) {
	srcs := reconciliationFixture(t)
	srcs.movementErr = errors.New("down")
	h := NewHandler(newTestEngine(testConfig(t), srcs))

	rec := httptest.NewRecorder()
	h.Balances(rec, httptest.NewRequest(http.MethodGet, "/pot/balances", nil))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", rec.Code)
	}
}

func TestHandlerLedger_Limit(t *testing.T) {
	h := NewHandler(newTestEngine(testConfig(t), reconciliationFixture(t)))

	tests := []struct {
		name      string
		target    string
		wantCode  int
		wantLen   int
		wantFirst string
	}{
		{"full chronological", "/pot/ledger", http.StatusOK, 3, "string set reimbursement"},
		{"limited most recent first", "/pot/ledger?limit=2", http.StatusOK, 2, "Spring gala"},
		{"invalid limit", "/pot/ledger?limit=zero", http.StatusBadRequest, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Ledger(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantCode)
			}
			if tt.wantCode != http.StatusOK {
				return
			}
			var entries []LedgerEntry
			if err := json.Unmarshal(rec.Body.Bytes(), &entries); err != nil {
				t.Fatalf("bad JSON: %v", err)
			}
			if len(entries) != tt.wantLen {
				t.Fatalf("len = %d, want %d", len(entries), tt.wantLen)
			}
			if entries[0].Description != tt.wantFirst {
				t.Fatalf("first = %q, want %q", entries[0].Description, tt.wantFirst)
			}
		})
	}
}

func TestHandlerReport_WindowParams(t *testing.T) {
	h := NewHandler(newTestEngine(testConfig(t), reconciliationFixture(t)))

	tests := []struct {
		name     string
		target   string
		wantCode int
	}{
		{"year window", "/pot/report?year=2024", http.StatusOK},
		{"current month", "/pot/report?month=current", http.StatusOK},
		{"missing window", "/pot/report", http.StatusBadRequest},
		{"bad year", "/pot/report?year=twenty", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Report(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))
			if rec.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d (body %s)", rec.Code, tt.wantCode, rec.Body.String())
			}
		})
	}
}

func TestHandlerDistribution(t *testing.T) {
	srcs := reconciliationFixture(t)
	srcs.items = nil
	h := NewHandler(newTestEngine(testConfig(t), srcs))

	rec := httptest.NewRecorder()
	h.Distribution(rec, httptest.NewRequest(http.MethodGet, "/pot/distribution", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Residual string `json:"residual"`
		Balanced bool   `json:"balanced"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("bad JSON: %v", err)
	}
	// Empty plan: the whole liquidity balance is unassigned, reported, not
	// rejected.
	if got.Residual != "1205" || got.Balanced {
		t.Fatalf("distribution = %+v", got)
	}
}
