// internal/account/repository.go
package account

import (
	"gorm.io/gorm"
)

// Repository encapsulates store operations for accounts.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *Account) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindByEmail(email string) (*Account, error) {
	var a Account
	if err := r.DB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindByID(id uint) (*Account, error) {
	var a Account
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repository) FindAll() ([]Account, error) {
	var list []Account
	err := r.DB.Order("id asc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(a *Account) error {
	return r.DB.Save(a).Error
}
