package schedule

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/dto"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
)

// ListReservationsByDate returns a vendor's reservations for one calendar
// day in the given zone, booked and completed alike, ordered by start.
type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(repo domain.Repository) *ListReservationsByDate {
	return &ListReservationsByDate{repo: repo}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	vendorID uuid.UUID,
	date string,
	zone string,
) ([]dto.ReservationListDTO, error) {

	dayStart, err := timezone.ToUTC(date, "00:00", zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	// AddDate on the zoned value so DST transition days keep their real
	// length instead of a flat 24h.
	localStart, err := timezone.InZone(dayStart, zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}
	dayEnd := localStart.AddDate(0, 0, 1).UTC()

	reservations, err := uc.repo.ListReservationsForPeriod(ctx, vendorID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, r := range reservations {
		startLocal, err := timezone.InZone(r.StartUTC, zone)
		if err != nil {
			return nil, businessFromTimeErr(err)
		}
		endLocal, err := timezone.InZone(r.EndUTC, zone)
		if err != nil {
			return nil, businessFromTimeErr(err)
		}

		out = append(out, dto.ReservationListDTO{
			ID:          r.ID,
			ClientID:    r.ClientID,
			SessionDate: r.SessionDate,
			StartUTC:    r.StartUTC,
			EndUTC:      r.EndUTC,
			StartLocal:  startLocal.Format(timezone.Clock12Layout),
			EndLocal:    endLocal.Format(timezone.Clock12Layout),
			Status:      r.Status,
		})
	}

	return out, nil
}
