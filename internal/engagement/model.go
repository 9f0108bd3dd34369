package engagement

import (
	"time"

	"github.com/harmonia-live/api-ensemble/internal/musician"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Lifecycle states of an engagement. Cancelled and Rejected form the
// cancellation subset: rows in those states never reach any balance,
// ledger or report.
const (
	StatusRequested = "Requested"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
	StatusRejected  = "Rejected"
)

// CancelledStates is the lifecycle subset excluded from all derived
// financial state.
func CancelledStates() []string {
	return []string{StatusCancelled, StatusRejected}
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s string) bool {
	switch s {
	case StatusRequested, StatusConfirmed, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// Engagement represents a contracted performance.
type Engagement struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Title      string    `gorm:"size:255;not null" json:"title"`
	Venue      string    `gorm:"size:255" json:"venue"`
	City       string    `gorm:"size:255" json:"city"`
	EventDate  time.Time `gorm:"not null;index" json:"eventDate"`
	Status     string    `gorm:"size:50;not null;default:'Requested';index" json:"status"`
	IncomeType string    `gorm:"size:100;not null;default:'performance';index" json:"incomeType"`

	GrossAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"grossAmount"`
	MusicianCost     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"musicianCost"`
	ManualAdjustment decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"manualAdjustment"`

	Collected     bool `gorm:"not null;default:false" json:"collected"`
	MusiciansPaid bool `gorm:"not null;default:false" json:"musiciansPaid"`

	ClientName  string `gorm:"size:255" json:"clientName"`
	ClientEmail string `gorm:"size:255" json:"clientEmail"`
	Notes       string `json:"notes"`

	Attendance []musician.Attendance `gorm:"foreignKey:EngagementID;constraint:OnDelete:CASCADE" json:"attendance,omitempty"`
}

// NetDelta is gross minus total musician cost. Always recomputed, never
// read back from a stored column.
func (e *Engagement) NetDelta() decimal.Decimal {
	return e.GrossAmount.Sub(e.MusicianCost)
}

// FinalDelta is NetDelta plus the manual adjustment (tips, expenses).
func (e *Engagement) FinalDelta() decimal.Decimal {
	return e.NetDelta().Add(e.ManualAdjustment)
}

// IsCancelled reports whether the engagement is in the cancellation subset.
func (e *Engagement) IsCancelled() bool {
	return e.Status == StatusCancelled || e.Status == StatusRejected
}

// Migrate creates the table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Engagement{})
}
