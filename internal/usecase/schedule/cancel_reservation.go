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

// CancelReservation moves a booked reservation to cancelled and reopens
// the slot it was holding, in one transaction.
type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(repo domain.Repository, audit *audit.Dispatcher) *CancelReservation {
	return &CancelReservation{repo: repo, audit: audit}
}

func (uc *CancelReservation) Execute(
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

	if err := domain.CancelReservation(res, time.Now().UTC()); err != nil {
		return nil, err
	}

	if err := uc.repo.ReleaseReservation(ctx, res); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VendorID: vendorID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return res, nil
}
