// internal/pot/handler.go
package pot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/harmonia-live/api-ensemble/internal/logging"
	"github.com/sirupsen/logrus"
)

// readTimeout bounds every source fetch issued on behalf of a request.
const readTimeout = 10 * time.Second

// Handler exposes the engine's read-only operations over HTTP.
type Handler struct {
	Engine *Engine
	Log    *logrus.Logger
}

func NewHandler(engine *Engine) *Handler {
	return &Handler{Engine: engine, Log: logging.GetLogger()}
}

func (h *Handler) writeError(w http.ResponseWriter, funcName string, err error) {
	logging.LogError(h.Log, "pot", funcName, "engine computation failed", nil, err)
	switch {
	case errors.Is(err, ErrConfigurationMissing):
		http.Error(w, "reconciliation configuration missing", http.StatusInternalServerError)
	case errors.Is(err, ErrMalformedRecord):
		http.Error(w, "inconsistent source record", http.StatusInternalServerError)
	case errors.Is(err, ErrReadFailure):
		http.Error(w, "could not read source records", http.StatusBadGateway)
	default:
		http.Error(w, "pot computation failed", http.StatusInternalServerError)
	}
}

// Balances handles GET /pot/balances.
func (h *Handler) Balances(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	balances, err := h.Engine.ComputeBalances(ctx)
	if err != nil {
		h.writeError(w, "Balances", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(balances)
}

// Ledger handles GET /pot/ledger. Without a limit it returns the full
// chronological ledger; with ?limit=N it returns the last N entries, most
// recent first.
func (h *Handler) Ledger(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	entries, err := h.Engine.BuildLedger(ctx)
	if err != nil {
		h.writeError(w, "Ledger", err)
		return
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		entries = DisplayOrder(entries, limit)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

// Report handles GET /pot/report. The window is ?year=YYYY or
// ?month=current; ?incomeType= filters the totals.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	var window Window
	yearRaw := r.URL.Query().Get("year")
	monthRaw := r.URL.Query().Get("month")
	switch {
	case yearRaw != "":
		year, err := strconv.Atoi(yearRaw)
		if err != nil || year < 1900 || year > 9999 {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		window = YearWindow(year)
	case monthRaw == "current":
		window = MonthWindow(time.Now().UTC())
	default:
		http.Error(w, "reporting window required (year=YYYY or month=current)", http.StatusBadRequest)
		return
	}

	report, err := h.Engine.ComputeReport(ctx, window, r.URL.Query().Get("incomeType"))
	if err != nil {
		h.writeError(w, "Report", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

// Distribution handles GET /pot/distribution.
func (h *Handler) Distribution(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readTimeout)
	defer cancel()

	report, err := h.Engine.DistributionResidual(ctx)
	if err != nil {
		h.writeError(w, "Distribution", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
