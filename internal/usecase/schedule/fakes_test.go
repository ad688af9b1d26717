package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/identity"
	"github.com/wellnesslane/session-scheduler/internal/models"
)

// ======================================================
// In-memory repository
// ======================================================

// The fake answers not-found with the same sentinel the gorm repository
// surfaces, so callers branch identically against either.
var errNotFound = gorm.ErrRecordNotFound

// memRepo mirrors the storage contract in memory: the mutating operations
// hold one lock across check and insert, so the same overlap decisions the
// database transaction would make happen here too.
type memRepo struct {
	mu           sync.Mutex
	slots        map[uuid.UUID]*models.AvailabilitySlot
	reservations map[uuid.UUID]*models.Reservation
}

func newMemRepo() *memRepo {
	return &memRepo{
		slots:        make(map[uuid.UUID]*models.AvailabilitySlot),
		reservations: make(map[uuid.UUID]*models.Reservation),
	}
}

var _ domain.Repository = (*memRepo)(nil)

func (m *memRepo) CreateSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.slots {
		if existing.VendorID != slot.VendorID ||
			existing.Status != string(domain.SlotOpen) {
			continue
		}
		if domain.Overlaps(slot.StartUTC, slot.EndUTC, existing.StartUTC, existing.EndUTC) {
			return httperr.ErrBusiness(httperr.CodeSlotOverlap)
		}
	}

	slot.ID = uuid.New()
	if slot.Status == "" {
		slot.Status = string(domain.SlotOpen)
	}

	cp := *slot
	m.slots[slot.ID] = &cp
	return nil
}

func (m *memRepo) GetSlotForVendor(
	_ context.Context,
	slotID uuid.UUID,
	vendorID uuid.UUID,
) (*models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.slots[slotID]
	if !ok || s.VendorID != vendorID {
		return nil, errNotFound
	}

	cp := *s
	return &cp, nil
}

func (m *memRepo) UpdateSlot(_ context.Context, slot *models.AvailabilitySlot) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.slots[slot.ID]; !ok {
		return errNotFound
	}

	cp := *slot
	m.slots[slot.ID] = &cp
	return nil
}

func (m *memRepo) ListOpenSlotsByDateRange(
	_ context.Context,
	vendorID uuid.UUID,
	fromDate string,
	toDate string,
) ([]models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.AvailabilitySlot
	for _, s := range m.slots {
		if s.VendorID != vendorID || s.Status != string(domain.SlotOpen) {
			continue
		}
		if s.AvailableDate < fromDate || s.AvailableDate > toDate {
			continue
		}
		out = append(out, *s)
	}
	return out, nil
}

func (m *memRepo) CommitReservation(
	_ context.Context,
	res *models.Reservation,
) (*models.AvailabilitySlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var matched *models.AvailabilitySlot
	for _, s := range m.slots {
		if s.VendorID != res.VendorID || s.Status != string(domain.SlotOpen) {
			continue
		}
		if domain.Contains(s.StartUTC, s.EndUTC, res.StartUTC, res.EndUTC) {
			matched = s
			break
		}
	}
	if matched == nil {
		return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
	}

	for _, r := range m.reservations {
		if r.VendorID != res.VendorID ||
			r.Status != string(domain.ReservationBooked) {
			continue
		}
		if domain.Overlaps(res.StartUTC, res.EndUTC, r.StartUTC, r.EndUTC) {
			return nil, httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}
	}

	if err := domain.ConsumeSlot(matched); err != nil {
		return nil, err
	}

	res.ID = uuid.New()
	res.SlotID = &matched.ID
	res.SessionDate = matched.AvailableDate
	res.Status = string(domain.InitialReservationStatus())

	cp := *res
	m.reservations[res.ID] = &cp

	slotCopy := *matched
	return &slotCopy, nil
}

func (m *memRepo) GetReservationForVendor(
	_ context.Context,
	reservationID uuid.UUID,
	vendorID uuid.UUID,
) (*models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, ok := m.reservations[reservationID]
	if !ok || r.VendorID != vendorID {
		return nil, errNotFound
	}

	cp := *r
	return &cp, nil
}

func (m *memRepo) UpdateReservation(_ context.Context, res *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reservations[res.ID]; !ok {
		return errNotFound
	}

	cp := *res
	m.reservations[res.ID] = &cp
	return nil
}

func (m *memRepo) ReleaseReservation(_ context.Context, res *models.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.reservations[res.ID]; !ok {
		return errNotFound
	}

	cp := *res
	m.reservations[res.ID] = &cp

	if res.SlotID != nil {
		if s, ok := m.slots[*res.SlotID]; ok {
			domain.ReopenSlot(s)
		}
	}
	return nil
}

func (m *memRepo) ListReservationsForPeriod(
	_ context.Context,
	vendorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Reservation
	for _, r := range m.reservations {
		if r.VendorID != vendorID {
			continue
		}
		if r.StartUTC.Before(start) || !r.StartUTC.Before(end) {
			continue
		}
		out = append(out, *r)
	}
	return out, nil
}

// failingRepo simulates a storage outage on the read paths.
type failingRepo struct {
	domain.Repository
	err error
}

func (f *failingRepo) GetSlotForVendor(
	context.Context, uuid.UUID, uuid.UUID,
) (*models.AvailabilitySlot, error) {
	return nil, f.err
}

func (f *failingRepo) GetReservationForVendor(
	context.Context, uuid.UUID, uuid.UUID,
) (*models.Reservation, error) {
	return nil, f.err
}

// ======================================================
// Identity verifier stub
// ======================================================

type stubVerifier struct {
	mu      sync.Mutex
	vendors map[uuid.UUID]bool
	clients map[uuid.UUID]bool

	// number of calls that fail with ErrUnavailable before answers start
	outages int
	calls   int
}

var _ identity.Verifier = (*stubVerifier)(nil)

func newStubVerifier() *stubVerifier {
	return &stubVerifier{
		vendors: make(map[uuid.UUID]bool),
		clients: make(map[uuid.UUID]bool),
	}
}

func (v *stubVerifier) check(known map[uuid.UUID]bool, id uuid.UUID) (bool, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls++
	if v.outages > 0 {
		v.outages--
		return false, identity.ErrUnavailable
	}
	return known[id], nil
}

func (v *stubVerifier) VendorExists(_ context.Context, id uuid.UUID) (bool, error) {
	return v.check(v.vendors, id)
}

func (v *stubVerifier) ClientExists(_ context.Context, id uuid.UUID) (bool, error) {
	return v.check(v.clients, id)
}
