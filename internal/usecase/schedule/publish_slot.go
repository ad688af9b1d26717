package schedule

import (
	"context"

	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/audit"
	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/models"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type PublishSlotInput struct {
	VendorID uuid.UUID

	Date       string
	StartLocal string
	EndLocal   string
	Zone       string
}

// ======================================================
// USE CASE
// ======================================================

type PublishSlot struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewPublishSlot(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *PublishSlot {
	return &PublishSlot{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *PublishSlot) Execute(
	ctx context.Context,
	in PublishSlotInput,
) (*models.AvailabilitySlot, error) {

	startUTC, err := timezone.ToUTC(in.Date, in.StartLocal, in.Zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	endUTC, err := timezone.ToUTC(in.Date, in.EndLocal, in.Zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	if !startUTC.Before(endUTC) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	slot := &models.AvailabilitySlot{
		VendorID:      in.VendorID,
		AvailableDate: in.Date,
		StartUTC:      startUTC,
		EndUTC:        endUTC,
		Zone:          in.Zone,
		Status:        string(domain.SlotOpen),
	}

	// The repository serializes the overlap check and the insert per
	// vendor; a concurrent publish of an overlapping window loses cleanly
	// with slot_overlap.
	if err := uc.repo.CreateSlot(ctx, slot); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		VendorID: in.VendorID,
		ActorID:  &in.VendorID,
		Action:   "slot_published",
		Entity:   "availability_slot",
		EntityID: &slot.ID,
	})

	return slot, nil
}
