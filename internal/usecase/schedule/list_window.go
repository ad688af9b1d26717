package schedule

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/dto"
	"github.com/wellnesslane/session-scheduler/internal/models"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
)

type ListWindow struct {
	repo domain.Repository
}

func NewListWindow(repo domain.Repository) *ListWindow {
	return &ListWindow{repo: repo}
}

// Execute buckets the vendor's open slots into the current week and the
// next one, both anchored to "now" in the supplied zone. The buckets are
// presentation only; conflict decisions never look at them.
func (uc *ListWindow) Execute(
	ctx context.Context,
	vendorID uuid.UUID,
	zone string,
) (*dto.AvailabilityWindowDTO, error) {

	now, err := timezone.NowIn(zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	monday, sunday, err := timezone.WeekBounds(now, zone)
	if err != nil {
		return nil, businessFromTimeErr(err)
	}

	currentEnd := sunday.Format(timezone.DateLayout)
	nextEnd := sunday.AddDate(0, 0, 7).Format(timezone.DateLayout)

	slots, err := uc.repo.ListOpenSlotsByDateRange(
		ctx,
		vendorID,
		monday.Format(timezone.DateLayout),
		nextEnd,
	)
	if err != nil {
		return nil, err
	}

	out := &dto.AvailabilityWindowDTO{
		CurrentWeek: []dto.SlotViewDTO{},
		NextWeek:    []dto.SlotViewDTO{},
	}

	for _, slot := range slots {
		view, err := toSlotView(slot)
		if err != nil {
			return nil, err
		}

		// ISO date strings order lexicographically.
		if slot.AvailableDate <= currentEnd {
			out.CurrentWeek = append(out.CurrentWeek, view)
		} else {
			out.NextWeek = append(out.NextWeek, view)
		}
	}

	return out, nil
}

// toSlotView redisplays a slot in the zone the vendor published it under,
// regardless of server zone or of who is asking.
func toSlotView(slot models.AvailabilitySlot) (dto.SlotViewDTO, error) {
	day, err := timezone.DayOfWeek(slot.AvailableDate)
	if err != nil {
		return dto.SlotViewDTO{}, err
	}

	_, startLocal, err := timezone.ToLocal(slot.StartUTC, slot.Zone)
	if err != nil {
		return dto.SlotViewDTO{}, businessFromTimeErr(err)
	}

	_, endLocal, err := timezone.ToLocal(slot.EndUTC, slot.Zone)
	if err != nil {
		return dto.SlotViewDTO{}, businessFromTimeErr(err)
	}

	return dto.SlotViewDTO{
		ID:         slot.ID,
		Date:       slot.AvailableDate,
		Day:        day,
		StartLocal: startLocal,
		EndLocal:   endLocal,
		Zone:       slot.Zone,
	}, nil
}
