package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/models"
)

// Repository is the single gateway to slot and reservation storage. The
// mutating operations that decide overlap (CreateSlot, CommitReservation)
// must serialize per vendor: check and insert happen as one atomic unit, so
// two concurrent publishers or bookers targeting the same vendor and an
// overlapping window cannot both succeed.
type Repository interface {
	// -------- Slots (publish / withdraw / read) --------
	CreateSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	GetSlotForVendor(
		ctx context.Context,
		slotID uuid.UUID,
		vendorID uuid.UUID,
	) (*models.AvailabilitySlot, error)

	UpdateSlot(
		ctx context.Context,
		slot *models.AvailabilitySlot,
	) error

	ListOpenSlotsByDateRange(
		ctx context.Context,
		vendorID uuid.UUID,
		fromDate string,
		toDate string,
	) ([]models.AvailabilitySlot, error)

	// -------- Reservations (book / state change / read) --------

	// CommitReservation matches the reservation's UTC window against the
	// vendor's open slots, verifies no booked reservation overlaps it,
	// inserts the row and consumes the matched slot, all atomically. It
	// fills SlotID, SessionDate and Status on success and returns the
	// consumed slot.
	CommitReservation(
		ctx context.Context,
		res *models.Reservation,
	) (*models.AvailabilitySlot, error)

	GetReservationForVendor(
		ctx context.Context,
		reservationID uuid.UUID,
		vendorID uuid.UUID,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	// ReleaseReservation persists a cancellation and reopens the consumed
	// slot in the same transaction.
	ReleaseReservation(
		ctx context.Context,
		res *models.Reservation,
	) error

	ListReservationsForPeriod(
		ctx context.Context,
		vendorID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)
}
