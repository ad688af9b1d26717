package audit

import (
	"encoding/json"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/wellnesslane/session-scheduler/internal/logger"
	"github.com/wellnesslane/session-scheduler/internal/models"
)

type Logger struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Logger {
	return &Logger{db: db}
}

func (l *Logger) Log(
	vendorID uuid.UUID,
	actorID *uuid.UUID,
	action string,
	entity string,
	entityID *uuid.UUID,
	metadata any,
) error {

	metaJSON := marshalMetadata(action, metadata)

	entry := models.AuditLog{
		VendorID: vendorID,
		ActorID:  actorID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Metadata: metaJSON,
	}

	return l.db.Create(&entry).Error
}

// marshalMetadata renders event metadata as JSON. The entry is still
// written when metadata cannot be encoded, with the failure noted so the
// empty field is explainable.
func marshalMetadata(action string, metadata any) string {
	if metadata == nil {
		return ""
	}

	b, err := json.Marshal(metadata)
	if err != nil {
		logger.L().Debug("audit metadata not encodable",
			zap.String("action", action),
			zap.Error(err),
		)
		return ""
	}

	return string(b)
}
