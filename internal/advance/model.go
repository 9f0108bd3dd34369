package advance

import (
	"time"

	"github.com/harmonia-live/api-ensemble/internal/engagement"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AdvancePayment is money paid to a musician ahead of the full settlement of
// the linked engagement. The link is optional: an unlinked advance stays
// pending against both pot balances until it is reconciled by hand.
type AdvancePayment struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	EngagementID *uint                  `gorm:"index" json:"engagementId,omitempty"`
	Engagement   *engagement.Engagement `gorm:"foreignKey:EngagementID" json:"engagement,omitempty"`
	MusicianID   uint                   `gorm:"not null;index" json:"musicianId"`

	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PaymentDate time.Time       `gorm:"not null;index" json:"paymentDate"`
	Notes       string          `gorm:"size:255" json:"notes"`
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&AdvancePayment{})
}
