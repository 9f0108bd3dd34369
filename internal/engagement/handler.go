// internal/engagement/handler.go
package engagement

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler serves the engagement routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CreateEngagementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	e, err := dto.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(e); err != nil {
		http.Error(w, "could not create engagement", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(e)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" && !ValidStatus(status) {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.FindAll(status)
	if err != nil {
		http.Error(w, "could not list engagements", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "engagement not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "engagement not found", http.StatusNotFound)
		return
	}

	var dto CreateEngagementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	updated, err := dto.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	e.Title = updated.Title
	e.Venue = updated.Venue
	e.City = updated.City
	e.EventDate = updated.EventDate
	e.Status = updated.Status
	e.IncomeType = updated.IncomeType
	e.GrossAmount = updated.GrossAmount
	e.MusicianCost = updated.MusicianCost
	e.ManualAdjustment = updated.ManualAdjustment
	e.Collected = updated.Collected
	e.MusiciansPaid = updated.MusiciansPaid
	e.ClientName = updated.ClientName
	e.ClientEmail = updated.ClientEmail
	e.Notes = updated.Notes

	if err := h.Repo.Update(e); err != nil {
		http.Error(w, "could not update engagement", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /engagements/{id}/status.
func (h *Handler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if !ValidStatus(req.Status) {
		http.Error(w, "unknown status", http.StatusBadRequest)
		return
	}
	if err := h.Repo.UpdateStatus(uint(id), req.Status); err != nil {
		http.Error(w, "could not update engagement status", http.StatusInternalServerError)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "engagement not found after update", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

type updateFlagsRequest struct {
	Collected        *bool            `json:"collected"`
	MusiciansPaid    *bool            `json:"musiciansPaid"`
	ManualAdjustment *decimal.Decimal `json:"manualAdjustment"`
}

// UpdateFlags handles PATCH /engagements/{id}/flags: the collection and
// payment flips that drive pot recognition, plus the manual adjustment.
func (h *Handler) UpdateFlags(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "engagement not found", http.StatusNotFound)
		return
	}
	var req updateFlagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if req.Collected != nil {
		e.Collected = *req.Collected
	}
	if req.MusiciansPaid != nil {
		e.MusiciansPaid = *req.MusiciansPaid
	}
	if req.ManualAdjustment != nil {
		e.ManualAdjustment = *req.ManualAdjustment
	}
	if err := h.Repo.Update(e); err != nil {
		http.Error(w, "could not update engagement", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(e)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	e, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "engagement not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(e); err != nil {
		http.Error(w, "could not delete engagement", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
