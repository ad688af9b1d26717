package audit

import (
	"go.uber.org/zap"

	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/logger"
)

type Event struct {
	VendorID uuid.UUID
	ActorID  *uuid.UUID
	Action   string
	Entity   string
	EntityID *uuid.UUID
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(l *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: l,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.VendorID,
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.L().Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch never blocks the request path: when the queue is full the event
// is dropped rather than stalling a booking. A nil dispatcher discards
// everything.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		logger.L().Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
