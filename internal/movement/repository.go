// internal/movement/repository.go
package movement

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Repository encapsulates store operations for manual movements.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(m *ManualMovement) error {
	return r.DB.Create(m).Error
}

func (r *Repository) FindAll() ([]ManualMovement, error) {
	var list []ManualMovement
	err := r.DB.Order("date desc, id desc").Find(&list).Error
	return list, err
}

func (r *Repository) FindByID(id uint) (*ManualMovement, error) {
	var m ManualMovement
	if err := r.DB.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *Repository) Update(m *ManualMovement) error {
	return r.DB.Save(m).Error
}

func (r *Repository) Delete(m *ManualMovement) error {
	return r.DB.Delete(m).Error
}

// InRange returns movements whose date falls in [from, to). A nil upper
// bound leaves the range open-ended.
func (r *Repository) InRange(ctx context.Context, from time.Time, to *time.Time) ([]ManualMovement, error) {
	var list []ManualMovement
	q := r.DB.WithContext(ctx).Where("date >= ?", from)
	if to != nil {
		q = q.Where("date < ?", *to)
	}
	err := q.Order("date asc, id asc").Find(&list).Error
	return list, err
}
