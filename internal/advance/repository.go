// internal/advance/repository.go
package advance

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository encapsulates store operations for advance payments.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(a *AdvancePayment) error {
	return r.DB.Create(a).Error
}

func (r *Repository) FindAll() ([]AdvancePayment, error) {
	var list []AdvancePayment
	err := r.DB.Order("payment_date desc, id desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*AdvancePayment, error) {
	var a AdvancePayment
	if err := r.DB.First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByEngagement lists the advances linked to one engagement.
func (r *Repository) FindByEngagement(engagementID uint) ([]AdvancePayment, error) {
	var list []AdvancePayment
	err := r.DB.Where("engagement_id = ?", engagementID).Order("payment_date asc, id asc").Find(&list).Error
	return list, err
}

func (r *Repository) Update(a *AdvancePayment) error {
	return r.DB.Save(a).Error
}

func (r *Repository) Delete(a *AdvancePayment) error {
	return r.DB.Delete(a).Error
}

// InRange returns advances whose payment date falls in [from, to), with the
// linked engagement preloaded so recognition can read its flags without a
// second query. A nil upper bound leaves the range open-ended.
func (r *Repository) InRange(ctx context.Context, from time.Time, to *time.Time) ([]AdvancePayment, error) {
	var list []AdvancePayment
	q := r.DB.WithContext(ctx).
		Preload("Engagement").
		Where("payment_date >= ?", from)
	if to != nil {
		q = q.Where("payment_date < ?", *to)
	}
	err := q.Order("payment_date asc, id asc").Find(&list).Error
	return list, err
}
