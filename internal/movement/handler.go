// internal/movement/handler.go
package movement

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

// Handler serves the manual movement routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var dto CreateMovementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	m, err := dto.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(m); err != nil {
		http.Error(w, "could not create movement", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list movements", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid movement ID", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "movement not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid movement ID", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "movement not found", http.StatusNotFound)
		return
	}

	var dto CreateMovementDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	updated, err := dto.ToModel()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	m.Date = updated.Date
	m.Amount = updated.Amount
	m.Description = updated.Description

	if err := h.Repo.Update(m); err != nil {
		http.Error(w, "could not update movement", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid movement ID", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "movement not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(m); err != nil {
		http.Error(w, "could not delete movement", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
