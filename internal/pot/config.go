package pot

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

// Config is the single reconciliation configuration. Records dated strictly
// before Cutoff are excluded from every pot computation; their cumulative
// effect is assumed folded into BaseBalance. Injected once at startup and
// passed into every computation, never duplicated as literals at call sites.
type Config struct {
	Cutoff      time.Time
	BaseBalance decimal.Decimal
}

func (c *Config) validate() error {
	if c == nil || c.Cutoff.IsZero() {
		return ErrConfigurationMissing
	}
	return nil
}

// ConfigFromEnv builds the config from POT_CUTOFF_DATE (YYYY-MM-DD) and
// POT_BASE_BALANCE (decimal string).
func ConfigFromEnv() (*Config, error) {
	rawCutoff := os.Getenv("POT_CUTOFF_DATE")
	if rawCutoff == "" {
		return nil, fmt.Errorf("%w: POT_CUTOFF_DATE not set", ErrConfigurationMissing)
	}
	cutoff, err := time.Parse(DateLayout, rawCutoff)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid POT_CUTOFF_DATE %q", ErrConfigurationMissing, rawCutoff)
	}

	rawBase := os.Getenv("POT_BASE_BALANCE")
	if rawBase == "" {
		return nil, fmt.Errorf("%w: POT_BASE_BALANCE not set", ErrConfigurationMissing)
	}
	base, err := decimal.NewFromString(rawBase)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid POT_BASE_BALANCE %q", ErrConfigurationMissing, rawBase)
	}

	return &Config{Cutoff: cutoff, BaseBalance: base}, nil
}
