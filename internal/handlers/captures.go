package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const errListCaptures = "failed to load captured buttons"

// @Summary      List captured buttons
// @Tags         captures
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, captures"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/captures [get]
// @Security     BearerAuth
func (h *Handler) getCaptures(c *gin.Context) {
	ctx := c.Request.Context()
	captures, err := h.services.Capture.List(ctx)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListCaptures, "captures_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":    len(captures),
		"captures": captures,
	})
}

// @Summary      Live clustering status
// @Description  Buffer fill, match threshold and the most repeated codes not yet promoted to buttons
// @Tags         captures
// @Produce      json
// @Success      200  {object}  service.CaptureStatus
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/captures/status [get]
// @Security     BearerAuth
func (h *Handler) getCaptureStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Capture.Status())
}
