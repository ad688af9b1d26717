package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/httpresp"
	"github.com/wellnesslane/session-scheduler/internal/middleware"
	"github.com/wellnesslane/session-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type SlotHandler struct {
	publish  *schedule.PublishSlot
	withdraw *schedule.WithdrawSlot
	window   *schedule.ListWindow
}

func NewSlotHandler(
	publish *schedule.PublishSlot,
	withdraw *schedule.WithdrawSlot,
	window *schedule.ListWindow,
) *SlotHandler {
	return &SlotHandler{
		publish:  publish,
		withdraw: withdraw,
		window:   window,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type PublishSlotRequest struct {
	Date  string `json:"date" binding:"required"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
	Zone  string `json:"zone" binding:"required"`
}

// ======================================================
// PUBLISH
// ======================================================

func (h *SlotHandler) Publish(c *gin.Context) {
	vendorID := middleware.PartyID(c)

	var req PublishSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed fields.")
		return
	}

	slot, err := h.publish.Execute(c.Request.Context(), schedule.PublishSlotInput{
		VendorID:   vendorID,
		Date:       req.Date,
		StartLocal: req.Start,
		EndLocal:   req.End,
		Zone:       req.Zone,
	})
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.Created(c, slot)
}

// ======================================================
// WITHDRAW
// ======================================================

func (h *SlotHandler) Withdraw(c *gin.Context) {
	vendorID := middleware.PartyID(c)

	slotID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_slot_id", "Slot id must be a UUID.")
		return
	}

	slot, err := h.withdraw.Execute(c.Request.Context(), vendorID, slotID)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, slot)
}

// ======================================================
// WINDOW
// ======================================================

func (h *SlotHandler) Window(c *gin.Context) {
	vendorID := middleware.PartyID(c)
	zone := c.DefaultQuery("zone", "UTC")

	window, err := h.window.Execute(c.Request.Context(), vendorID, zone)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, window)
}
