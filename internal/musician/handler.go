package musician

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Handler serves the musician roster and per-engagement attendance routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var m Musician
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if m.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if err := h.Repo.Create(&m); err != nil {
		http.Error(w, "could not create musician", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list musicians", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid musician ID", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "musician not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid musician ID", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "musician not found", http.StatusNotFound)
		return
	}
	var payload Musician
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	m.Name = payload.Name
	m.Instrument = payload.Instrument
	m.Email = payload.Email
	m.Phone = payload.Phone
	m.DefaultFee = payload.DefaultFee
	if err := h.Repo.Update(m); err != nil {
		http.Error(w, "could not update musician", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid musician ID", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(uint(id))
	if err != nil {
		http.Error(w, "musician not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.Delete(m); err != nil {
		http.Error(w, "could not delete musician", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type addAttendanceRequest struct {
	MusicianID uint             `json:"musicianId"`
	Status     string           `json:"status"`
	Fee        *decimal.Decimal `json:"fee"` // defaults to the musician's DefaultFee
}

// AddAttendance handles POST /engagements/{id}/attendance.
func (h *Handler) AddAttendance(w http.ResponseWriter, r *http.Request) {
	engID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	var req addAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	m, err := h.Repo.FindByID(req.MusicianID)
	if err != nil {
		http.Error(w, "musician not found", http.StatusNotFound)
		return
	}

	status := req.Status
	if status == "" {
		status = AttendancePlanned
	}
	fee := m.DefaultFee
	if req.Fee != nil {
		fee = *req.Fee
	}

	a := Attendance{
		EngagementID: uint(engID),
		MusicianID:   m.ID,
		Status:       status,
		Fee:          fee,
	}
	if err := h.Repo.CreateAttendance(&a); err != nil {
		http.Error(w, "could not create attendance entry", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(a)
}

// ListAttendance handles GET /engagements/{id}/attendance.
func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	engID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid engagement ID", http.StatusBadRequest)
		return
	}
	list, err := h.Repo.AttendanceByEngagement(uint(engID))
	if err != nil {
		http.Error(w, "could not list attendance", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}

type patchAttendanceRequest struct {
	Status *string          `json:"status"`
	Fee    *decimal.Decimal `json:"fee"`
}

// PatchAttendance handles PATCH /attendance/{id}.
func (h *Handler) PatchAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid attendance ID", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindAttendanceByID(uint(id))
	if err != nil {
		http.Error(w, "attendance entry not found", http.StatusNotFound)
		return
	}
	var req patchAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if req.Status != nil {
		switch *req.Status {
		case AttendancePlanned, AttendanceConfirmed, AttendanceAbsent:
			a.Status = *req.Status
		default:
			http.Error(w, "invalid attendance status", http.StatusBadRequest)
			return
		}
	}
	if req.Fee != nil {
		a.Fee = *req.Fee
	}
	if err := h.Repo.UpdateAttendance(a); err != nil {
		http.Error(w, "could not update attendance entry", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(a)
}

// RemoveAttendance handles DELETE /attendance/{id}.
func (h *Handler) RemoveAttendance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid attendance ID", http.StatusBadRequest)
		return
	}
	a, err := h.Repo.FindAttendanceByID(uint(id))
	if err != nil {
		http.Error(w, "attendance entry not found", http.StatusNotFound)
		return
	}
	if err := h.Repo.DeleteAttendance(a); err != nil {
		http.Error(w, "could not delete attendance entry", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
