package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wellnesslane/session-scheduler/internal/audit"
	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/models"
)

type WithdrawSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewWithdrawSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *WithdrawSlot {
	return &WithdrawSlot{
		repo:  repo,
		audit: audit,
	}
}

func (uc *WithdrawSlot) Execute(
	ctx context.Context,
	vendorID uuid.UUID,
	slotID uuid.UUID,
) (*models.AvailabilitySlot, error) {

	slot, err := uc.repo.GetSlotForVendor(ctx, slotID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotNotFound)
		}
		// Storage failure, not a definitive answer: safe to retry.
		return nil, httperr.ErrBusiness(httperr.CodeDependencyUnavailable)
	}

	if err := domain.WithdrawSlot(slot); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VendorID: vendorID,
		ActorID:  &vendorID,
		Action:   "slot_withdrawn",
		Entity:   "availability_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
