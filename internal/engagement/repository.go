// internal/engagement/repository.go
package engagement

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository encapsulates store operations for engagements.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(e *Engagement) error {
	return r.DB.Create(e).Error
}

// FindAll lists engagements newest first, optionally filtered by status.
func (r *Repository) FindAll(status string) ([]Engagement, error) {
	var list []Engagement
	q := r.DB.Order("event_date desc")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*Engagement, error) {
	var e Engagement
	if err := r.DB.Preload("Attendance").First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *Repository) Update(e *Engagement) error {
	return r.DB.Save(e).Error
}

func (r *Repository) Delete(e *Engagement) error {
	return r.DB.Delete(e).Error
}

// UpdateStatus changes only the lifecycle state.
func (r *Repository) UpdateStatus(id uint, status string) error {
	return r.DB.Model(&Engagement{}).Where("id = ?", id).Update("status", status).Error
}

// ActiveInRange returns non-cancelled engagements whose event date falls in
// [from, to). A nil upper bound leaves the range open-ended. The cancellation
// subset is excluded here, at read time, so downstream consumers never see
// those rows.
func (r *Repository) ActiveInRange(ctx context.Context, from time.Time, to *time.Time) ([]Engagement, error) {
	var list []Engagement
	q := r.DB.WithContext(ctx).
		Where("event_date >= ?", from).
		Where("status NOT IN ?", CancelledStates())
	if to != nil {
		q = q.Where("event_date < ?", *to)
	}
	err := q.Order("event_date asc, id asc").Find(&list).Error
	return list, err
}
