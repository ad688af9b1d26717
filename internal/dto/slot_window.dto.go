package dto

import "github.com/google/uuid"

// SlotViewDTO is one published slot rendered back in the vendor's own zone.
type SlotViewDTO struct {
	ID         uuid.UUID `json:"id"`
	Date       string    `json:"date"`
	Day        string    `json:"day"`
	StartLocal string    `json:"start_local"`
	EndLocal   string    `json:"end_local"`
	Zone       string    `json:"zone"`
}

// AvailabilityWindowDTO buckets a vendor's open slots into the current
// Monday-to-Sunday week and the following one. Display only.
type AvailabilityWindowDTO struct {
	CurrentWeek []SlotViewDTO `json:"current_week"`
	NextWeek    []SlotViewDTO `json:"next_week"`
}
