package httperr

import "errors"

// Business error codes surfaced by the scheduling core. Every rejection a
// caller can act on carries one of these.
const (
	CodeInvalidZone           = "invalid_zone"
	CodeInvalidTime           = "invalid_time"
	CodeInvalidRange          = "invalid_range"
	CodeSlotOverlap           = "slot_overlap"
	CodeSlotUnavailable       = "slot_unavailable"
	CodeInvalidParty          = "invalid_party"
	CodeDependencyUnavailable = "dependency_unavailable"
	CodeNotWithdrawable       = "not_withdrawable"
	CodeInvalidState          = "invalid_state"
	CodeSlotNotFound          = "slot_not_found"
	CodeReservationNotFound   = "reservation_not_found"
)

type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// BusinessCode extracts the code of a BusinessError, or "" when err is not
// one.
func BusinessCode(err error) string {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code
	}
	return ""
}
