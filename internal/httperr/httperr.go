package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unprocessable(c *gin.Context, code, message string) {
	Write(c, http.StatusUnprocessableEntity, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

// FromBusiness maps a business error code to the HTTP status and message the
// API exposes. Unknown codes fall through to a 500 so nothing leaks.
func FromBusiness(c *gin.Context, err error) {
	code := BusinessCode(err)

	switch code {
	case CodeInvalidZone, CodeInvalidTime, CodeInvalidRange:
		BadRequest(c, code, messageFor(code))
	case CodeInvalidParty:
		Unprocessable(c, code, messageFor(code))
	case CodeSlotOverlap, CodeSlotUnavailable, CodeNotWithdrawable, CodeInvalidState:
		Conflict(c, code, messageFor(code))
	case CodeDependencyUnavailable:
		Unavailable(c, code, messageFor(code))
	case CodeSlotNotFound, CodeReservationNotFound:
		NotFound(c, code, messageFor(code))
	default:
		Internal(c, "internal_error", "Something went wrong.")
	}
}

func messageFor(code string) string {
	switch code {
	case CodeInvalidZone:
		return "The supplied time zone is not a valid IANA zone."
	case CodeInvalidTime:
		return "The supplied date or time could not be parsed."
	case CodeInvalidRange:
		return "The start time must come before the end time."
	case CodeSlotOverlap:
		return "The slot overlaps an already published slot."
	case CodeSlotUnavailable:
		return "The requested window does not fit any open, unreserved slot."
	case CodeInvalidParty:
		return "The vendor or client does not exist."
	case CodeDependencyUnavailable:
		return "A dependent service is unavailable, please retry."
	case CodeNotWithdrawable:
		return "The slot is not open and cannot be withdrawn."
	case CodeInvalidState:
		return "The reservation is not in a state that allows this change."
	case CodeSlotNotFound:
		return "Slot not found."
	case CodeReservationNotFound:
		return "Reservation not found."
	default:
		return "Something went wrong."
	}
}
