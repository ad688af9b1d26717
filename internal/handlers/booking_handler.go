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

type BookingHandler struct {
	book *schedule.BookSession
}

func NewBookingHandler(book *schedule.BookSession) *BookingHandler {
	return &BookingHandler{book: book}
}

// ======================================================
// REQUESTS
// ======================================================

type BookSessionRequest struct {
	VendorID string `json:"vendor_id" binding:"required"`
	Date     string `json:"date" binding:"required"`
	Start    string `json:"start" binding:"required"`
	End      string `json:"end" binding:"required"`
	Zone     string `json:"zone" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	clientID := middleware.PartyID(c)

	var req BookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Missing or malformed fields.")
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		httperr.BadRequest(c, "invalid_vendor_id", "Vendor id must be a UUID.")
		return
	}

	conf, err := h.book.Execute(c.Request.Context(), schedule.BookSessionInput{
		ClientID:   clientID,
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

	httpresp.Created(c, conf)
}
