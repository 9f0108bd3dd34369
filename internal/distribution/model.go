package distribution

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PlanItem is a manually maintained allocation label. Purely informational:
// it never feeds back into any balance.
type PlanItem struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Name   string          `gorm:"size:255;not null" json:"name"`
	Amount decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"amount"`
}

// Repository encapsulates store operations for plan items.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Create(p *PlanItem) error {
	return r.DB.Create(p).Error
}

func (r *Repository) FindByID(id uint) (*PlanItem, error) {
	var p PlanItem
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Update(p *PlanItem) error {
	return r.DB.Save(p).Error
}

func (r *Repository) Delete(p *PlanItem) error {
	return r.DB.Delete(p).Error
}

// All returns the full allocation list.
func (r *Repository) All(ctx context.Context) ([]PlanItem, error) {
	var list []PlanItem
	err := r.DB.WithContext(ctx).Order("id asc").Find(&list).Error
	return list, err
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PlanItem{})
}
