package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Create a legal case
// @Description Create a legal assistance case, optionally linked to one of the user's incidents
// @Tags LegalCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param case body CreateLegalCaseRequest true "Legal case creation request"
// @Success 201 {object} LegalCaseResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Linked incident belongs to another user"
// @Failure 404 {object} map[string]string "Linked incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legal-cases [post]
func (h *Handler) createLegalCase(c *gin.Context) {
	var input CreateLegalCaseRequest
	log := h.logger.WithField("method", "createLegalCase")

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

	legalCase := CreateRequestToLegalCase(input)
	legalCase.UserID = currentUser(c).ID

	if err := h.legalCaseService.Create(c.Request.Context(), legalCase); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, LegalCaseToResponse(legalCase))
}

// @Summary List own legal cases
// @Description Get a paginated list of the current user's legal cases
// @Tags LegalCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} LegalCaseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legal-cases [get]
func (h *Handler) listLegalCases(c *gin.Context) {
	log := h.logger.WithField("method", "listLegalCases")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	cases, err := h.legalCaseService.ListForUser(c.Request.Context(), currentUser(c).ID, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, LegalCasesToResponses(cases))
}

// @Summary Get legal case by ID
// @Description Get a single legal case owned by the current user
// @Tags LegalCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Legal case ID"
// @Success 200 {object} LegalCaseResponse
// @Failure 400 {object} map[string]string "Invalid legal case ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Legal case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legal-cases/{id} [get]
func (h *Handler) getLegalCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legal case ID"})
		return
	}
	log := h.logger.WithField("method", "getLegalCase").WithField("id", id)

	legalCase, err := h.legalCaseService.Get(c.Request.Context(), id, currentUser(c).ID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LegalCaseToResponse(legalCase))
}

// @Summary Update a legal case
// @Description Merge-patch update: only fields present in the body overwrite stored values
// @Tags LegalCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Legal case ID"
// @Param case body UpdateLegalCaseRequest true "Legal case update request"
// @Success 200 {object} LegalCaseResponse
// @Failure 400 {object} map[string]string "Invalid legal case ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Legal case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legal-cases/{id} [put]
func (h *Handler) updateLegalCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legal case ID"})
		return
	}
	log := h.logger.WithField("method", "updateLegalCase").WithField("id", id)

	var input UpdateLegalCaseRequest
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

	legalCase, err := h.legalCaseService.Update(c.Request.Context(), id, currentUser(c).ID, UpdateRequestToLegalCasePatch(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, LegalCaseToResponse(legalCase))
}

// @Summary Delete a legal case
// @Description Delete a legal case owned by the current user
// @Tags LegalCases
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Legal case ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid legal case ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Legal case not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /legal-cases/{id} [delete]
func (h *Handler) deleteLegalCase(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid legal case ID"})
		return
	}
	log := h.logger.WithField("method", "deleteLegalCase").WithField("id", id)

	if err := h.legalCaseService.Delete(c.Request.Context(), id, currentUser(c).ID); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
