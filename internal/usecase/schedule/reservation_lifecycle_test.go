package schedule

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/dto"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
)

func bookFixtureSession(t *testing.T) (*memRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	repo, _, book, vendorID, clientID := newBookingFixture(t)
	publishKolkataSlot(t, repo, vendorID, "2025-04-20", "09:00", "11:00")

	conf, err := book.Execute(context.Background(), BookSessionInput{
		ClientID:   clientID,
		VendorID:   vendorID,
		Date:       "2025-04-20",
		StartLocal: "09:00",
		EndLocal:   "11:00",
		Zone:       "Asia/Kolkata",
	})
	require.NoError(t, err)

	return repo, vendorID, conf.ReservationID
}

func TestCancelReservation_ReopensSlot(t *testing.T) {
	repo, vendorID, reservationID := bookFixtureSession(t)
	uc := NewCancelReservation(repo, nil)

	res, err := uc.Execute(context.Background(), vendorID, reservationID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.ReservationCancelled), res.Status)
	require.NotNil(t, res.CancelledAt)

	require.NotNil(t, res.SlotID)
	slot, err := repo.GetSlotForVendor(context.Background(), *res.SlotID, vendorID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.SlotOpen), slot.Status)
}

func TestCancelReservation_FreedWindowIsBookableAgain(t *testing.T) {
	repo, vendorID, reservationID := bookFixtureSession(t)

	_, err := NewCancelReservation(repo, nil).Execute(context.Background(), vendorID, reservationID)
	require.NoError(t, err)

	verifier := newStubVerifier()
	clientID := uuid.New()
	verifier.vendors[vendorID] = true
	verifier.clients[clientID] = true

	book := NewBookSession(repo, verifier, nil)
	_, err = book.Execute(context.Background(), BookSessionInput{
		ClientID:   clientID,
		VendorID:   vendorID,
		Date:       "2025-04-20",
		StartLocal: "09:00",
		EndLocal:   "11:00",
		Zone:       "Asia/Kolkata",
	})
	assert.NoError(t, err)
}

func TestCompleteReservation(t *testing.T) {
	repo, vendorID, reservationID := bookFixtureSession(t)
	uc := NewCompleteReservation(repo, nil)

	res, err := uc.Execute(context.Background(), vendorID, reservationID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.ReservationCompleted), res.Status)
	require.NotNil(t, res.CompletedAt)

	// A completed session cannot be cancelled, and its slot stays consumed.
	_, err = NewCancelReservation(repo, nil).Execute(context.Background(), vendorID, reservationID)
	assert.Equal(t, httperr.CodeInvalidState, httperr.BusinessCode(err))

	require.NotNil(t, res.SlotID)
	slot, err := repo.GetSlotForVendor(context.Background(), *res.SlotID, vendorID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.SlotConsumed), slot.Status)
}

func TestReservationLifecycle_NotFound(t *testing.T) {
	repo, vendorID, reservationID := bookFixtureSession(t)

	t.Run("unknown reservation", func(t *testing.T) {
		_, err := NewCancelReservation(repo, nil).Execute(context.Background(), vendorID, uuid.New())
		assert.Equal(t, httperr.CodeReservationNotFound, httperr.BusinessCode(err))
	})

	t.Run("another vendor's reservation", func(t *testing.T) {
		_, err := NewCompleteReservation(repo, nil).Execute(context.Background(), uuid.New(), reservationID)
		assert.Equal(t, httperr.CodeReservationNotFound, httperr.BusinessCode(err))
	})
}

func TestReadFailuresAreNotNotFound(t *testing.T) {
	// A storage outage while loading must surface as retriable, not as a
	// definitive not-found.
	repo := &failingRepo{Repository: newMemRepo(), err: errors.New("connection reset")}
	vendorID := uuid.New()
	id := uuid.New()

	t.Run("withdraw", func(t *testing.T) {
		_, err := NewWithdrawSlot(repo, nil).Execute(context.Background(), vendorID, id)
		assert.Equal(t, httperr.CodeDependencyUnavailable, httperr.BusinessCode(err))
	})

	t.Run("cancel", func(t *testing.T) {
		_, err := NewCancelReservation(repo, nil).Execute(context.Background(), vendorID, id)
		assert.Equal(t, httperr.CodeDependencyUnavailable, httperr.BusinessCode(err))
	})

	t.Run("complete", func(t *testing.T) {
		_, err := NewCompleteReservation(repo, nil).Execute(context.Background(), vendorID, id)
		assert.Equal(t, httperr.CodeDependencyUnavailable, httperr.BusinessCode(err))
	})
}

func TestListReservationsByDate(t *testing.T) {
	repo, _, book, vendorID, clientID := newBookingFixture(t)
	publishKolkataSlot(t, repo, vendorID, "2025-04-20", "09:00", "11:00")
	publishKolkataSlot(t, repo, vendorID, "2025-04-21", "09:00", "11:00")

	for _, date := range []string{"2025-04-20", "2025-04-21"} {
		_, err := book.Execute(context.Background(), BookSessionInput{
			ClientID:   clientID,
			VendorID:   vendorID,
			Date:       date,
			StartLocal: "09:00",
			EndLocal:   "11:00",
			Zone:       "Asia/Kolkata",
		})
		require.NoError(t, err)
	}

	uc := NewListReservationsByDate(repo)

	list := func(date, zone string) []dto.ReservationListDTO {
		out, err := uc.Execute(context.Background(), vendorID, date, zone)
		require.NoError(t, err)
		return out
	}

	t.Run("one day in the vendor zone", func(t *testing.T) {
		out := list("2025-04-20", "Asia/Kolkata")
		require.Len(t, out, 1)
		assert.Equal(t, "2025-04-20", out[0].SessionDate)
		assert.Equal(t, "09:00 AM", out[0].StartLocal)
		assert.Equal(t, "11:00 AM", out[0].EndLocal)
		assert.Equal(t, string(domain.ReservationBooked), out[0].Status)
	})

	t.Run("day boundary follows the asking zone", func(t *testing.T) {
		// 09:00 IST on the 20th is still the 19th in New York.
		out := list("2025-04-19", "America/New_York")
		require.Len(t, out, 1)
		assert.Equal(t, "2025-04-20", out[0].SessionDate)
		assert.Equal(t, "11:30 PM", out[0].StartLocal)
	})

	t.Run("empty day", func(t *testing.T) {
		assert.Empty(t, list("2025-04-25", "Asia/Kolkata"))
	})
}
