package musician

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Attendance status convention
const (
	AttendancePlanned   = "Planned"
	AttendanceConfirmed = "Confirmed"
	AttendanceAbsent    = "Absent"
)

// Musician represents a performer on the ensemble roster.
type Musician struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`

	Name       string          `gorm:"size:255;not null" json:"name"`
	Instrument string          `gorm:"size:100" json:"instrument"`
	Email      string          `gorm:"size:255" json:"email"`
	Phone      string          `gorm:"size:50" json:"phone"`
	DefaultFee decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"defaultFee"`
}

// Attendance links a musician to an engagement lineup with the fee agreed
// for that date.
type Attendance struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	EngagementID uint            `gorm:"not null;index" json:"engagementId"`
	MusicianID   uint            `gorm:"not null;index" json:"musicianId"`
	Status       string          `gorm:"size:50;not null;default:'Planned'" json:"status"`
	Fee          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"fee"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}
