package schedule

import "github.com/wellnesslane/session-scheduler/internal/httperr"

// ===============================
// Slot Status
// ===============================

type SlotStatus string

const (
	SlotOpen      SlotStatus = "open"
	SlotWithdrawn SlotStatus = "withdrawn"
	SlotConsumed  SlotStatus = "consumed"
)

// ===============================
// Reservation Status
// ===============================

type ReservationStatus string

const (
	ReservationBooked    ReservationStatus = "booked"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanWithdraw: only a slot still open can be pulled back by the vendor.
// Withdrawn and consumed slots are immutable historical record.
func CanWithdraw(current SlotStatus) error {
	if current != SlotOpen {
		return httperr.ErrBusiness(httperr.CodeNotWithdrawable)
	}
	return nil
}

// CanConsume guards the open -> consumed transition a booking commit makes.
func CanConsume(current SlotStatus) error {
	if current != SlotOpen {
		return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}
	return nil
}

func CanCancel(current ReservationStatus) error {
	if current != ReservationBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanComplete(current ReservationStatus) error {
	if current != ReservationBooked {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialReservationStatus() ReservationStatus {
	return ReservationBooked
}
