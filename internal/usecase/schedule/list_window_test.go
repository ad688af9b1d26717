package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/models"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
)

func seedSlot(t *testing.T, repo *memRepo, vendorID uuid.UUID, date, start, end, zone, status string) {
	t.Helper()

	startUTC, err := timezone.ToUTC(date, start, zone)
	require.NoError(t, err)
	endUTC, err := timezone.ToUTC(date, end, zone)
	require.NoError(t, err)

	slot := &models.AvailabilitySlot{
		VendorID:      vendorID,
		AvailableDate: date,
		StartUTC:      startUTC,
		EndUTC:        endUTC,
		Zone:          zone,
		Status:        status,
	}
	require.NoError(t, repo.CreateSlot(context.Background(), slot))
}

func TestListWindow_Buckets(t *testing.T) {
	repo := newMemRepo()
	vendorID := uuid.New()
	uc := NewListWindow(repo)

	now, err := timezone.NowIn("UTC")
	require.NoError(t, err)
	monday, sunday, err := timezone.WeekBounds(now, "UTC")
	require.NoError(t, err)

	day := func(base time.Time, offset int) string {
		return base.AddDate(0, 0, offset).Format(timezone.DateLayout)
	}

	seedSlot(t, repo, vendorID, day(sunday, 0), "09:00", "10:00", "UTC", string(domain.SlotOpen))
	seedSlot(t, repo, vendorID, day(sunday, 1), "09:00", "10:00", "UTC", string(domain.SlotOpen))

	// Outside the two-week window, or not open: never shown.
	seedSlot(t, repo, vendorID, day(monday, -1), "09:00", "10:00", "UTC", string(domain.SlotOpen))
	seedSlot(t, repo, vendorID, day(sunday, 8), "09:00", "10:00", "UTC", string(domain.SlotOpen))
	seedSlot(t, repo, vendorID, day(sunday, 2), "09:00", "10:00", "UTC", string(domain.SlotWithdrawn))

	window, err := uc.Execute(context.Background(), vendorID, "UTC")
	require.NoError(t, err)

	require.Len(t, window.CurrentWeek, 1)
	assert.Equal(t, day(sunday, 0), window.CurrentWeek[0].Date)
	assert.Equal(t, "Sunday", window.CurrentWeek[0].Day)
	assert.Equal(t, "09:00", window.CurrentWeek[0].StartLocal)
	assert.Equal(t, "10:00", window.CurrentWeek[0].EndLocal)

	require.Len(t, window.NextWeek, 1)
	assert.Equal(t, day(sunday, 1), window.NextWeek[0].Date)
	assert.Equal(t, "Monday", window.NextWeek[0].Day)
}

func TestListWindow_RendersInPublishingZone(t *testing.T) {
	repo := newMemRepo()
	vendorID := uuid.New()
	uc := NewListWindow(repo)

	now, err := timezone.NowIn("Asia/Kolkata")
	require.NoError(t, err)
	_, sunday, err := timezone.WeekBounds(now, "Asia/Kolkata")
	require.NoError(t, err)

	date := sunday.Format(timezone.DateLayout)
	seedSlot(t, repo, vendorID, date, "09:00", "10:30", "Asia/Kolkata", string(domain.SlotOpen))

	// The viewer's zone picks the window anchor, not the clock rendering.
	window, err := uc.Execute(context.Background(), vendorID, "Asia/Kolkata")
	require.NoError(t, err)

	all := append(window.CurrentWeek, window.NextWeek...)
	require.Len(t, all, 1)
	assert.Equal(t, "Asia/Kolkata", all[0].Zone)
	assert.Equal(t, "09:00", all[0].StartLocal)
	assert.Equal(t, "10:30", all[0].EndLocal)
}

func TestListWindow_InvalidZone(t *testing.T) {
	uc := NewListWindow(newMemRepo())

	_, err := uc.Execute(context.Background(), uuid.New(), "Not/AZone")
	assert.Error(t, err)
}
