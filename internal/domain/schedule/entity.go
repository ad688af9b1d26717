package schedule

import (
	"time"

	"github.com/wellnesslane/session-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func WithdrawSlot(s *models.AvailabilitySlot) error {
	if err := CanWithdraw(SlotStatus(s.Status)); err != nil {
		return err
	}

	s.Status = string(SlotWithdrawn)
	return nil
}

func ConsumeSlot(s *models.AvailabilitySlot) error {
	if err := CanConsume(SlotStatus(s.Status)); err != nil {
		return err
	}

	s.Status = string(SlotConsumed)
	return nil
}

// ReopenSlot reverses a consume when the reservation that held the slot is
// cancelled. The window is vendor-published capacity, not booking history.
func ReopenSlot(s *models.AvailabilitySlot) {
	if s.Status == string(SlotConsumed) {
		s.Status = string(SlotOpen)
	}
}

func CancelReservation(r *models.Reservation, now time.Time) error {
	if err := CanCancel(ReservationStatus(r.Status)); err != nil {
		return err
	}

	r.Status = string(ReservationCancelled)
	r.CancelledAt = &now
	return nil
}

func CompleteReservation(r *models.Reservation, now time.Time) error {
	if err := CanComplete(ReservationStatus(r.Status)); err != nil {
		return err
	}

	r.Status = string(ReservationCompleted)
	r.CompletedAt = &now
	return nil
}
