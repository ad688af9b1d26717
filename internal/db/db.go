package db

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/wellnesslane/session-scheduler/internal/config"
	"github.com/wellnesslane/session-scheduler/internal/logger"
	"github.com/wellnesslane/session-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		logger.L().Fatal("failed to connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.L().Fatal("failed to get sql.DB", zap.Error(err))
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.AvailabilitySlot{},
		&models.Reservation{},
		&models.AuditLog{},
	); err != nil {
		logger.L().Fatal("failed to migrate", zap.Error(err))
	}

	ensureExclusionConstraints(db)

	return db
}

// ensureExclusionConstraints installs the store-level no-overlap backstop.
// The repository already serializes per vendor, but the database itself must
// refuse an overlapping open slot or booked reservation even if some future
// write path forgets the lock.
func ensureExclusionConstraints(db *gorm.DB) {
	stmts := []string{
		`CREATE EXTENSION IF NOT EXISTS btree_gist`,

		`DO $$ BEGIN
			ALTER TABLE availability_slots
				ADD CONSTRAINT availability_slots_no_overlap
				EXCLUDE USING gist (
					vendor_id WITH =,
					tstzrange(start_utc, end_utc) WITH &&
				) WHERE (status = 'open');
		EXCEPTION WHEN duplicate_object OR duplicate_table THEN NULL;
		END $$`,

		`DO $$ BEGIN
			ALTER TABLE reservations
				ADD CONSTRAINT reservations_no_overlap
				EXCLUDE USING gist (
					vendor_id WITH =,
					tstzrange(start_utc, end_utc) WITH &&
				) WHERE (status = 'booked');
		EXCEPTION WHEN duplicate_object OR duplicate_table THEN NULL;
		END $$`,
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			logger.L().Fatal("failed to install exclusion constraint", zap.Error(err))
		}
	}
}
