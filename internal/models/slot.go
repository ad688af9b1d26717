package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilitySlot is one open window a vendor has published. Times are
// stored as UTC instants; AvailableDate and Zone keep the vendor-local
// calendar context so the slot can be redisplayed in the vendor's own time
// regardless of server zone.
type AvailabilitySlot struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	VendorID uuid.UUID `gorm:"type:uuid;not null;index:idx_slots_vendor_date" json:"vendor_id"`

	AvailableDate string `gorm:"size:10;not null;index:idx_slots_vendor_date" json:"available_date"`

	StartUTC time.Time `gorm:"column:start_utc;not null" json:"start_utc"`
	EndUTC   time.Time `gorm:"column:end_utc;not null" json:"end_utc"`

	Zone string `gorm:"size:64;not null" json:"zone"`

	Status string `gorm:"size:20;default:'open'" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *AvailabilitySlot) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
