// internal/engagement/dto.go
package engagement

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the wire format for calendar dates.
const DateLayout = "2006-01-02"

type CreateEngagementDTO struct {
	Title      string `json:"title"`
	Venue      string `json:"venue"`
	City       string `json:"city"`
	EventDate  string `json:"eventDate"` // "2006-01-02"
	Status     string `json:"status"`
	IncomeType string `json:"incomeType"`

	GrossAmount      decimal.Decimal `json:"grossAmount"`
	MusicianCost     decimal.Decimal `json:"musicianCost"`
	ManualAdjustment decimal.Decimal `json:"manualAdjustment"`

	Collected     bool `json:"collected"`
	MusiciansPaid bool `json:"musiciansPaid"`

	ClientName  string `json:"clientName"`
	ClientEmail string `json:"clientEmail"`
	Notes       string `json:"notes"`
}

// ToModel validates the DTO and builds the model.
func (dto *CreateEngagementDTO) ToModel() (*Engagement, error) {
	if dto.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	date, err := time.Parse(DateLayout, dto.EventDate)
	if err != nil {
		return nil, fmt.Errorf("invalid eventDate (want YYYY-MM-DD): %w", err)
	}
	status := dto.Status
	if status == "" {
		status = StatusRequested
	}
	if !ValidStatus(status) {
		return nil, fmt.Errorf("unknown status %q", status)
	}
	incomeType := dto.IncomeType
	if incomeType == "" {
		incomeType = "performance"
	}
	return &Engagement{
		Title:            dto.Title,
		Venue:            dto.Venue,
		City:             dto.City,
		EventDate:        date,
		Status:           status,
		IncomeType:       incomeType,
		GrossAmount:      dto.GrossAmount,
		MusicianCost:     dto.MusicianCost,
		ManualAdjustment: dto.ManualAdjustment,
		Collected:        dto.Collected,
		MusiciansPaid:    dto.MusiciansPaid,
		ClientName:       dto.ClientName,
		ClientEmail:      dto.ClientEmail,
		Notes:            dto.Notes,
	}, nil
}
