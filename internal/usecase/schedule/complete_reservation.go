package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellnesslane/session-scheduler/internal/audit"
	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/models"
)

// CompleteReservation marks a booked reservation as completed after the
// session took place. The consumed slot stays consumed.
type CompleteReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteReservation(repo domain.Repository, audit *audit.Dispatcher) *CompleteReservation {
	return &CompleteReservation{repo: repo, audit: audit}
}

func (uc *CompleteReservation) Execute(
	ctx context.Context,
	vendorID, reservationID uuid.UUID,
) (*models.Reservation, error) {

	res, err := uc.repo.GetReservationForVendor(ctx, reservationID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeReservationNotFound)
		}
		return nil, httperr.ErrBusiness(httperr.CodeDependencyUnavailable)
	}

	if err := domain.CompleteReservation(res, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VendorID: vendorID,
		Action:   "reservation_completed",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
