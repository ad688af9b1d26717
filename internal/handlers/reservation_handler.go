package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/httpresp"
	"github.com/wellnesslane/session-scheduler/internal/middleware"
	"github.com/wellnesslane/session-scheduler/internal/timezone"
	"github.com/wellnesslane/session-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ReservationHandler struct {
	cancel   *schedule.CancelReservation
	complete *schedule.CompleteReservation
	list     *schedule.ListReservationsByDate
}

func NewReservationHandler(
	cancel *schedule.CancelReservation,
	complete *schedule.CompleteReservation,
	list *schedule.ListReservationsByDate,
) *ReservationHandler {
	return &ReservationHandler{
		cancel:   cancel,
		complete: complete,
		list:     list,
	}
}

func (h *ReservationHandler) reservationID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_reservation_id", "Reservation id must be a UUID.")
		return uuid.Nil, false
	}
	return id, true
}

// ======================================================
// CANCEL
// ======================================================

func (h *ReservationHandler) Cancel(c *gin.Context) {
	vendorID := middleware.PartyID(c)

	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	res, err := h.cancel.Execute(c.Request.Context(), vendorID, id)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// COMPLETE
// ======================================================

func (h *ReservationHandler) Complete(c *gin.Context) {
	vendorID := middleware.PartyID(c)

	id, ok := h.reservationID(c)
	if !ok {
		return
	}

	res, err := h.complete.Execute(c.Request.Context(), vendorID, id)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *ReservationHandler) ListByDate(c *gin.Context) {
	vendorID := middleware.PartyID(c)

	date := c.Query("date")
	if date == "" {
		now, _ := timezone.NowIn("UTC")
		date = now.Format(timezone.DateLayout)
	}

	zone := c.DefaultQuery("zone", "UTC")

	out, err := h.list.Execute(c.Request.Context(), vendorID, date, zone)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.List(c, out)
}
