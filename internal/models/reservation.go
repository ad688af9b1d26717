package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation is a committed session between one client and one vendor.
// SlotID references the published slot the booking consumed, when the match
// was against a discrete slot.
type Reservation struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ClientID uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index:idx_reservations_vendor_date" json:"vendor_id"`

	SlotID *uuid.UUID `gorm:"type:uuid" json:"slot_id"`

	SessionDate string `gorm:"size:10;not null;index:idx_reservations_vendor_date" json:"session_date"`

	StartUTC time.Time `gorm:"column:start_utc;not null" json:"start_utc"`
	EndUTC   time.Time `gorm:"column:end_utc;not null" json:"end_utc"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
