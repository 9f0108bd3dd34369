// internal/account/handler.go
package account

import (
	"encoding/json"
	"net/http"

	"github.com/harmonia-live/api-ensemble/internal/utils"
	"gorm.io/gorm"
)

// Handler serves account administration routes.
type Handler struct {
	Repo *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{Repo: NewRepository(db)}
}

type createAccountRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"` // optional: a temporary one is generated when empty
	IsAdmin  bool   `json:"isAdmin"`
}

type createAccountResponse struct {
	Account           Account `json:"account"`
	TemporaryPassword string  `json:"temporaryPassword,omitempty"`
}

// Create handles POST /accounts (admin only, enforced by middleware).
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed JSON", http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Email == "" {
		http.Error(w, "name and email are required", http.StatusBadRequest)
		return
	}

	password := req.Password
	var temporary string
	if password == "" {
		generated, err := utils.GenerateTemporaryPassword()
		if err != nil {
			http.Error(w, "could not generate password", http.StatusInternalServerError)
			return
		}
		password = generated
		temporary = generated
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		http.Error(w, "could not hash password", http.StatusInternalServerError)
		return
	}

	a := Account{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		IsAdmin:      req.IsAdmin,
	}
	if err := h.Repo.Create(&a); err != nil {
		http.Error(w, "could not create account", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(createAccountResponse{Account: a, TemporaryPassword: temporary})
}

// List handles GET /accounts (admin only).
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.Repo.FindAll()
	if err != nil {
		http.Error(w, "could not list accounts", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
