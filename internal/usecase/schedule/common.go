package schedule

import (
	"errors"

	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
)

// businessFromTimeErr converts the timezone package's sentinel errors into
// the business codes callers see.
func businessFromTimeErr(err error) error {
	switch {
	case errors.Is(err, timezone.ErrInvalidZone):
		return httperr.ErrBusiness(httperr.CodeInvalidZone)
	case errors.Is(err, timezone.ErrInvalidTime):
		return httperr.ErrBusiness(httperr.CodeInvalidTime)
	}
	return err
}
