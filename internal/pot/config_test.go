package pot

import (
	"errors"
	"testing"
)

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("POT_CUTOFF_DATE", "2024-01-01")
	t.Setenv("POT_BASE_BALANCE", "500.00")

	cfg, err := ConfigFromEnv()
	if err != nil {
		t.Fatalf("ConfigFromEnv: %v", err)
	}
	if !cfg.Cutoff.Equal(day(t, "2024-01-01")) {
		t.Errorf("cutoff = %s", cfg.Cutoff)
	}
	if !cfg.BaseBalance.Equal(d(t, "500.00")) {
		t.Errorf("base balance = %s", cfg.BaseBalance)
	}
}

func TestConfigFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		cutoff string
		base   string
	}{
		{"missing cutoff", "", "500.00"},
		{"bad cutoff format", "01/01/2024", "500.00"},
		{"missing base balance", "2024-01-01", ""},
		{"bad base balance", "2024-01-01", "five hundred"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("POT_CUTOFF_DATE", tt.cutoff)
			t.Setenv("POT_BASE_BALANCE", tt.base)
			if _, err := ConfigFromEnv(); !errors.Is(err, ErrConfigurationMissing) {
				t.Fatalf("expected ErrConfigurationMissing, got %v", err)
			}
		})
	}
}
