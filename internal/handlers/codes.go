package handlers

import (
	"errors"
	"net/http"

	"soleus_remote/internal/protocol"
	"soleus_remote/internal/service"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK   = "ok"
	statusSent = "sent"

	errEncodeFailed    = "failed to encode command"
	errTransmitFailed  = "failed to reach IR transmitter"
	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// isCommandError reports whether err comes from command validation rather
// than from anything operational, so it maps to a 400.
func isCommandError(err error) bool {
	return errors.Is(err, protocol.ErrInvalidMode) ||
		errors.Is(err, protocol.ErrInvalidTemperature) ||
		errors.Is(err, protocol.ErrInvalidFanSpeed)
}

// Request DTO for encoding a command.
type commandRequest struct {
	Mode        string `json:"mode" binding:"required"` // TEMP | AUTO | ECO | SLEEP | FAN | DRY | POWER_OFF
	Temperature int    `json:"temperature,omitempty"`   // required for TEMP/ECO/SLEEP, 62..86
	FanSpeed    string `json:"fan_speed,omitempty"`     // LOW | MED | HIGH
}

// EncodeRequest is an exported model for Swagger docs of the encode payload.
type EncodeRequest struct {
	// Mode to encode. Allowed: TEMP, AUTO, ECO, SLEEP, FAN, DRY, POWER_OFF
	Mode string `json:"mode" example:"TEMP"`
	// Target temperature in Fahrenheit (required for TEMP, ECO, SLEEP)
	Temperature int `json:"temperature,omitempty" example:"72"`
	// Fan speed. Allowed: LOW, MED, HIGH
	FanSpeed string `json:"fan_speed,omitempty" example:"LOW"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Encode an AC command into a Pronto code
// @Description  TEMP, ECO and SLEEP require temperature; DRY forces LOW; POWER_OFF ignores both
// @Tags         codes
// @Accept       json
// @Produce      json
// @Param        body  body   EncodeRequest  true  "Command payload"
// @Success      200   {object}  service.EncodedCode
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/codes/encode [post]
// @Security     BearerAuth
func (h *Handler) encodeCode(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	code, err := h.services.Encoder.Encode(service.CommandParams{
		Mode:        req.Mode,
		Temperature: req.Temperature,
		FanSpeed:    req.FanSpeed,
	})
	if err != nil {
		if h.log != nil {
			h.log.Infow("encode_rejected", "err", err, "mode", req.Mode)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, code)
}

// @Summary      Full button catalog
// @Tags         codes
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, entries"
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/codes/catalog [get]
// @Security     BearerAuth
func (h *Handler) getCatalog(c *gin.Context) {
	entries := h.services.Catalog.Entries()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(entries),
		"entries": entries,
	})
}

// @Summary      Protocol reference
// @Tags         codes
// @Produce      json
// @Success      200  {object}  protocol.Info
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/codes/info [get]
// @Security     BearerAuth
func (h *Handler) getInfo(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Encoder.Info())
}

// @Summary      Encode and transmit an AC command
// @Description  Encodes the command and pushes the Pronto code to the configured IR transmitter
// @Tags         ac
// @Accept       json
// @Produce      json
// @Param        body  body   EncodeRequest  true  "Command payload"
// @Success      200   {object}  map[string]interface{}  "status, code"
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/v1/ac/command [post]
// @Security     BearerAuth
func (h *Handler) sendCommand(c *gin.Context) {
	var req commandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	code, err := h.services.Encoder.Encode(service.CommandParams{
		Mode:        req.Mode,
		Temperature: req.Temperature,
		FanSpeed:    req.FanSpeed,
	})
	if err != nil {
		if isCommandError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errEncodeFailed, "command_encode_failed", err, "mode", req.Mode)
		return
	}
	ctx := c.Request.Context()
	if err := h.services.Transmitter.Transmit(ctx, code.ProntoData); err != nil {
		if errors.Is(err, service.ErrNoDevice) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusBadGateway, errTransmitFailed, "command_transmit_failed", err, "mode", req.Mode)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": statusSent,
		"code":   code,
	})
}
