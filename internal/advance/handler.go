// internal/advance/handler.go
package advance

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

// Handler serves the advance payment routes.
type Handler struct {
	DB   *gorm.DB
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repo: NewRepository(db)}
}

type createAdvanceDTO struct {
	EngagementID *uint           `json:"engagementId"`
	MusicianID   uint            `json:"musicianId"`
	Amount       decimal.Decimal `json:"amount"`
	PaymentDate  string          `json:"paymentDate"` // "2006-01-02"
	Notes        string          `json:"notes"`
}

func (dto *createAdvanceDTO) toModel() (*AdvancePayment, error) {
	if dto.MusicianID == 0 {
		return nil, fmt.Errorf("musicianId is required")
	}
	if !dto.Amount.IsPositive() {
		return nil, fmt.Errorf("amount must be positive")
	}
	date, err := time.Parse(dateLayout, dto.PaymentDate)
	if err != nil {
		return nil, fmt.Errorf("invalid paymentDate (want YYYY-MM-DD): %w", err)
	}
	return &AdvancePayment{
		EngagementID: dto.EngagementID,
		MusicianID:   dto.MusicianID,
		Amount:       dto.Amount,
		PaymentDate:  date,
		Notes:        dto.Notes,
	}, nil
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto createAdvanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	a, err := dto.toModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if a.EngagementID != nil {
		var count int64
		if err := h.DB.Table("engagements").Where("id = ? AND deleted_at IS NULL", *a.EngagementID).Count(&count).Error; err != nil || count == 0 {
			http.Error(w, "linked engagement not found", http.StatusBadRequest)
			return
		}
	}
	if err := h.Repo.Create(a); err != nil {
		http.Error(w, "could not create advance payment", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list advance payments", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

// ListByEngagement handles GET /engagements/{id}/advances.
func (h *Handler) ListByEngagement(w http.ResponseWriter, r *http.Request) {
	engID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.FindByEngagement(uint(engID))
	if err != nil {
		http.Error(w, "could not list advance payments", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid advance ID", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "advance payment not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid advance ID", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "advance payment not found", http.StatusNotFound)
		return
	}
	var dto createAdvanceDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	updated, err := dto.toModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	a.EngagementID = updated.EngagementID
	a.MusicianID = updated.MusicianID
	a.Amount = updated.Amount
	a.PaymentDate = updated.PaymentDate
	a.Notes = updated.Notes

	if err := h.Repo.Update(a); err != nil {
		http.Error(w, "could not update advance payment", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid advance ID", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "advance payment not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(a); err != nil {
		http.Error(w, "could not delete advance payment", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
