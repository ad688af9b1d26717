package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/wellnesslane/session-scheduler/internal/domain/schedule"
	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

// lockVendor serializes all overlap-deciding writes for one vendor inside
// the current transaction. The lock is released at commit or rollback.
func lockVendor(tx *gorm.DB, vendorID uuid.UUID) error {
	return tx.Exec(
		"SELECT pg_advisory_xact_lock(hashtext(?))",
		vendorID.String(),
	).Error
}

// mapConflict converts the database's exclusion/unique violations into the
// business conflict the caller understands. The exclusion constraints are a
// backstop; normally the in-transaction overlap check fires first.
func mapConflict(err error, code string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23P01 exclusion_violation, 23505 unique_violation
		if pgErr.Code == "23P01" || pgErr.Code == "23505" {
			return httperr.ErrBusiness(code)
		}
	}
	return err
}

// --------------------------------------------------
// Slots
// --------------------------------------------------

func (r *ScheduleGormRepository) CreateSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockVendor(tx, slot.VendorID); err != nil {
			return err
		}

		// Prefilter by UTC range, not calendar date: a slot published
		// against an adjacent vendor-local date can still collide in UTC.
		// The predicate keeps anything touching the widened window, so an
		// existing row of any length stays a candidate.
		lo := slot.StartUTC.Add(-24 * time.Hour)
		hi := slot.EndUTC.Add(24 * time.Hour)

		var open []models.AvailabilitySlot
		if err := tx.
			Where(
				"vendor_id = ? AND status = ? AND start_utc < ? AND end_utc > ?",
				slot.VendorID, string(domain.SlotOpen), hi, lo,
			).
			Find(&open).Error; err != nil {
			return err
		}

		for _, existing := range open {
			if domain.Overlaps(slot.StartUTC, slot.EndUTC, existing.StartUTC, existing.EndUTC) {
				return httperr.ErrBusiness(httperr.CodeSlotOverlap)
			}
		}

		if err := tx.Create(slot).Error; err != nil {
			return mapConflict(err, httperr.CodeSlotOverlap)
		}

		return nil
	})
}

func (r *ScheduleGormRepository) GetSlotForVendor(
	ctx context.Context,
	slotID uuid.UUID,
	vendorID uuid.UUID,
) (*models.AvailabilitySlot, error) {

	var slot models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", slotID, vendorID).
		First(&slot).Error; err != nil {
		return nil, err
	}

	return &slot, nil
}

func (r *ScheduleGormRepository) UpdateSlot(
	ctx context.Context,
	slot *models.AvailabilitySlot,
) error {
	return r.db.WithContext(ctx).Save(slot).Error
}

func (r *ScheduleGormRepository) ListOpenSlotsByDateRange(
	ctx context.Context,
	vendorID uuid.UUID,
	fromDate string,
	toDate string,
) ([]models.AvailabilitySlot, error) {

	var slots []models.AvailabilitySlot
	if err := r.db.WithContext(ctx).
		Where(
			"vendor_id = ? AND status = ? AND available_date >= ? AND available_date <= ?",
			vendorID, string(domain.SlotOpen), fromDate, toDate,
		).
		Order("start_utc ASC").
		Find(&slots).Error; err != nil {
		return nil, err
	}

	return slots, nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

// CommitReservation performs the booking's check-and-insert as one atomic
// unit: under the vendor lock it finds an open slot containing the UTC
// window, confirms no booked reservation overlaps it, then inserts the
// reservation and consumes the slot. Candidate rows are prefiltered with a
// coarse UTC range only; Contains and Overlaps make every actual decision,
// and reservations are always checked directly, never via slot status
// alone, so a slot left open by a past partial failure still cannot be
// double-booked. Returns the consumed slot.
func (r *ScheduleGormRepository) CommitReservation(
	ctx context.Context,
	res *models.Reservation,
) (*models.AvailabilitySlot, error) {

	var matched *models.AvailabilitySlot

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockVendor(tx, res.VendorID); err != nil {
			return err
		}

		// A day of margin covers slots published against an adjacent
		// vendor-local calendar date by a far-away zone; the touching
		// predicate keeps rows of any length as candidates.
		lo := res.StartUTC.Add(-24 * time.Hour)
		hi := res.EndUTC.Add(24 * time.Hour)

		var open []models.AvailabilitySlot
		if err := tx.
			Where(
				"vendor_id = ? AND status = ? AND start_utc < ? AND end_utc > ?",
				res.VendorID, string(domain.SlotOpen), hi, lo,
			).
			Find(&open).Error; err != nil {
			return err
		}

		matched = nil
		for i := range open {
			if domain.Contains(open[i].StartUTC, open[i].EndUTC, res.StartUTC, res.EndUTC) {
				matched = &open[i]
				break
			}
		}
		if matched == nil {
			return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
		}

		var booked []models.Reservation
		if err := tx.
			Where(
				"vendor_id = ? AND status = ? AND start_utc < ? AND end_utc > ?",
				res.VendorID, string(domain.ReservationBooked), hi, lo,
			).
			Find(&booked).Error; err != nil {
			return err
		}

		for _, existing := range booked {
			if domain.Overlaps(res.StartUTC, res.EndUTC, existing.StartUTC, existing.EndUTC) {
				return httperr.ErrBusiness(httperr.CodeSlotUnavailable)
			}
		}

		if err := domain.ConsumeSlot(matched); err != nil {
			return err
		}
		if err := tx.Save(matched).Error; err != nil {
			return err
		}

		res.SlotID = &matched.ID
		res.SessionDate = matched.AvailableDate
		res.Status = string(domain.InitialReservationStatus())

		if err := tx.Create(res).Error; err != nil {
			return mapConflict(err, httperr.CodeSlotUnavailable)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return matched, nil
}

func (r *ScheduleGormRepository) GetReservationForVendor(
	ctx context.Context,
	reservationID uuid.UUID,
	vendorID uuid.UUID,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND vendor_id = ?", reservationID, vendorID).
		First(&res).Error; err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *ScheduleGormRepository) UpdateReservation(
	ctx context.Context,
	res *models.Reservation,
) error {
	return r.db.WithContext(ctx).Save(res).Error
}

func (r *ScheduleGormRepository) ReleaseReservation(
	ctx context.Context,
	res *models.Reservation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockVendor(tx, res.VendorID); err != nil {
			return err
		}

		if err := tx.Save(res).Error; err != nil {
			return err
		}

		if res.SlotID == nil {
			return nil
		}

		var slot models.AvailabilitySlot
		if err := tx.First(&slot, "id = ?", *res.SlotID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		domain.ReopenSlot(&slot)
		return tx.Save(&slot).Error
	})
}

func (r *ScheduleGormRepository) ListReservationsForPeriod(
	ctx context.Context,
	vendorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Reservation, error) {

	var out []models.Reservation
	if err := r.db.WithContext(ctx).
		Where(
			"vendor_id = ? AND start_utc >= ? AND start_utc < ?",
			vendorID, start, end,
		).
		Order("start_utc ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}

	return out, nil
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
