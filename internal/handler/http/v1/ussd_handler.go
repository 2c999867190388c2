package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary USSD gateway callback
// @Description Process a USSD menu step from the mobile gateway. Responses are prefixed CON (continue) or END (final).
// @Tags USSD
// @Accept json
// @Produce json
// @Param request body USSDRequest true "USSD gateway payload"
// @Success 200 {object} USSDResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /ussd [post]
func (h *Handler) handleUSSD(c *gin.Context) {
	var input USSDRequest
	log := h.logger.WithField("method", "handleUSSD")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		h.validationError(c, err)
		return
	}

	response, err := h.ussdService.Handle(c.Request.Context(), input.SessionID, input.Phone, input.Text)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, USSDResponse{Response: response})
}
