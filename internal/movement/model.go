package movement

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ManualMovement is a standalone income or expense entry not tied to an
// engagement. Amount is signed: positive income, negative expense.
type ManualMovement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Date        time.Time       `gorm:"not null;index" json:"date"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"size:255;not null" json:"description"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ManualMovement{})
}
