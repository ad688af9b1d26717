package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/wellnesslane/session-scheduler/internal/httperr"
	"github.com/wellnesslane/session-scheduler/internal/httpresp"
	"github.com/wellnesslane/session-scheduler/internal/usecase/schedule"
)

// PublicHandler exposes the unauthenticated discovery surface: anyone can
// see a vendor's open window, nobody can mutate through it.
type PublicHandler struct {
	window *schedule.ListWindow
}

func NewPublicHandler(window *schedule.ListWindow) *PublicHandler {
	return &PublicHandler{window: window}
}

func (h *PublicHandler) VendorWindow(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_vendor_id", "Vendor id must be a UUID.")
		return
	}

	zone := c.DefaultQuery("zone", "UTC")

	window, err := h.window.Execute(c.Request.Context(), vendorID, zone)
	if err != nil {
		httperr.FromBusiness(c, err)
		return
	}

	httpresp.OK(c, window)
}
