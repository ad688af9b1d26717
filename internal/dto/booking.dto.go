package dto

import (
	"time"

	"github.com/google/uuid"
)

// BookingConfirmationDTO carries the committed reservation id plus the
// human-readable local confirmation for both parties, each in their own
// zone.
type BookingConfirmationDTO struct {
	ReservationID uuid.UUID `json:"reservation_id"`

	VendorZone  string `json:"vendor_zone"`
	VendorDate  string `json:"vendor_date"`
	VendorStart string `json:"vendor_start"`
	VendorEnd   string `json:"vendor_end"`

	ClientZone  string `json:"client_zone"`
	ClientDate  string `json:"client_date"`
	ClientStart string `json:"client_start"`
	ClientEnd   string `json:"client_end"`
}

type ReservationListDTO struct {
	ID          uuid.UUID `json:"id"`
	ClientID    uuid.UUID `json:"client_id"`
	SessionDate string    `json:"session_date"`
	StartUTC    time.Time `json:"start_utc"`
	EndUTC      time.Time `json:"end_utc"`
	StartLocal  string    `json:"start_local"`
	EndLocal    string    `json:"end_local"`
	Status      string    `json:"status"`
}
