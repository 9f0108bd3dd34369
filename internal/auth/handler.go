package auth

import (
	"encoding/json"
	"net/http"

	"github.com/harmonia-live/api-ensemble/internal/account"
	"github.com/harmonia-live/api-ensemble/internal/utils"
	"gorm.io/gorm"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Account account.Account `json:"account"`
}

// LoginHandler handles POST /login.
func LoginHandler(db *gorm.DB) http.HandlerFunc {
	repo := account.NewRepository(db)
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "malformed JSON", http.StatusBadRequest)
			return
		}

		acc, err := repo.FindByEmail(req.Email)
		if err != nil {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		if !utils.VerifyPassword(acc.PasswordHash, req.Password) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}

		token, err := GenerateToken(acc.ID, acc.IsAdmin)
		if err != nil {
			http.Error(w, "could not issue token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(loginResponse{Token: token, Account: *acc})
	}
}
