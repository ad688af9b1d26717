package schedule

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/audit"
	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/dto"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/identity"
	"github.com/wellnesslane/session-scheduler/internal/models"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookSessionInput struct {
	ClientID uuid.UUID
	VendorID uuid.UUID

	// The client's view of the requested window, in the client's zone.
	Date       string
	StartLocal string
	EndLocal   string
	Zone       string
}

// ======================================================
// USE CASE
// ======================================================

// BookSession is the only write path that creates a reservation. Per
// attempt: validate both parties against the identity collaborator,
// normalize the requested window to UTC, then hand the atomic
// check-and-commit to the repository. A request retried after a confirmed
// booking is re-validated from scratch and fails with slot_unavailable.
type BookSession struct {
	repo     domain.Repository
	verifier identity.Verifier
	audit    *audit.Dispatcher

	// one retry on a collaborator outage, after this pause
	retryBackoff time.Duration
}

func NewBookSession(
	repo domain.Repository,
	verifier identity.Verifier,
	audit *audit.Dispatcher,
) *BookSession {
	return &BookSession{
		repo:         repo,
		verifier:     verifier,
		audit:        audit,
		retryBackoff: 250 * time.Millisecond,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookSession) Execute(
	ctx context.Context,
	in BookSessionInput,
) (*dto.BookingConfirmationDTO, error) {

	// --------------------------------------------------
	// Normalize the requested window
	// --------------------------------------------------
	startUTC, err := timezone.ToUTC(in.Date, in.StartLocal, in.Zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	endUTC, err := timezone.ToUTC(in.Date, in.EndLocal, in.Zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	// An end clock at or before the start clock reads as the following
	// calendar day in the client's zone, so a session spanning the
	// client's midnight stays expressible. Equal clocks are still a
	// zero-length window.
	if !startUTC.Before(endUTC) {
		if in.EndLocal == in.StartLocal {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
		}

		nextDate, err := timezone.NextDay(in.Date)
		if err != nil {
			return nil, businessFromTimeErr(err)
		}

		endUTC, err = timezone.ToUTC(nextDate, in.EndLocal, in.Zone)
		if err != nil {
			return nil, businessFromTimeErr(err)
		}
	}

	if !startUTC.Before(endUTC) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidRange)
	}

	// --------------------------------------------------
	// Validate both parties exist
	// --------------------------------------------------
	if err := uc.requireParty(ctx, in.VendorID, uc.verifier.VendorExists); err != nil {
		return nil, err
	}
	if err := uc.requireParty(ctx, in.ClientID, uc.verifier.ClientExists); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Atomic check-and-commit
	// --------------------------------------------------
	res := &models.Reservation{
		ClientID: in.ClientID,
		VendorID: in.VendorID,
		StartUTC: startUTC,
		EndUTC:   endUTC,
	}

	slot, err := uc.repo.CommitReservation(ctx, res)
	if err != nil {
		if httperr.BusinessCode(err) != "" {
			return nil, err
		}
		// Storage failure: nothing committed, safe to retry.
		return nil, httperr.ErrBusiness(httperr.CodeDependencyUnavailable)
	}

	uc.audit.Dispatch(audit.Event{
		VendorID: in.VendorID,
		ActorID:  &in.ClientID,
		Action:   "session_booked",
		Entity:   "reservation",
		EntityID: &res.ID,
	})

	return uc.confirmation(res, slot, in.Zone)
}

// requireParty asks the identity collaborator once, retries once on an
// outage, and maps the outcome to the caller-facing error kinds.
func (uc *BookSession) requireParty(
	ctx context.Context,
	id uuid.UUID,
	exists func(context.Context, uuid.UUID) (bool, error),
) error {

	ok, err := exists(ctx, id)
	if errors.Is(err, identity.ErrUnavailable) {
		select {
		case <-ctx.Done():
			return httperr.ErrBusiness(httperr.CodeDependencyUnavailable)
		case <-time.After(uc.retryBackoff):
		}
		ok, err = exists(ctx, id)
	}

	if err != nil {
		return httperr.ErrBusiness(httperr.CodeDependencyUnavailable)
	}
	if !ok {
		return httperr.ErrBusiness(httperr.CodeInvalidParty)
	}

	return nil
}

// confirmation renders the committed UTC window back into each party's own
// zone. The conversion boundary is crossed exactly once per party, here.
func (uc *BookSession) confirmation(
	res *models.Reservation,
	slot *models.AvailabilitySlot,
	clientZone string,
) (*dto.BookingConfirmationDTO, error) {

	vendorStart, err := timezone.InZone(res.StartUTC, slot.Zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}
	vendorEnd, err := timezone.InZone(res.EndUTC, slot.Zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}
	clientStart, err := timezone.InZone(res.StartUTC, clientZone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}
	clientEnd, err := timezone.InZone(res.EndUTC, clientZone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	return &dto.BookingConfirmationDTO{
		ReservationID: res.ID,

		VendorZone:  slot.Zone,
		VendorDate:  vendorStart.Format(timezone.DateLayout),
		VendorStart: vendorStart.Format(timezone.Clock12Layout),
		VendorEnd:   vendorEnd.Format(timezone.Clock12Layout),

		ClientZone:  clientZone,
		ClientDate:  clientStart.Format(timezone.DateLayout),
		ClientStart: clientStart.Format(timezone.Clock12Layout),
		ClientEnd:   clientEnd.Format(timezone.Clock12Layout),
	}, nil
}
