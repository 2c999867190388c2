package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
)

// @Summary Upload evidence file
// @Description Upload an evidence file for an incident. The file is encrypted before storage.
// @Tags Evidence
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param file formData file true "Evidence file (image, audio, video or PDF)"
// @Success 201 {object} EvidenceResponse
// @Failure 400 {object} map[string]string "Invalid incident ID or missing file"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 413 {object} map[string]string "File too large"
// @Failure 415 {object} map[string]string "Unsupported media type"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/evidence [post]
func (h *Handler) uploadEvidence(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "uploadEvidence").WithField("incident_id", incidentID)

	// Отсекаем слишком большие тела до чтения формы
	if c.Request.ContentLength > h.cfg.MaxUploadBytes {
		h.respondError(c, log, service.ErrFileTooLarge)
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.MaxUploadBytes)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.WithError(err).Warn("Failed to read multipart file")
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("Failed to open multipart file")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	defer file.Close()

	evidence, err := h.evidenceService.Upload(c.Request.Context(), currentUser(c).ID, service.UploadInput{
		IncidentID:   incidentID,
		OriginalName: fileHeader.Filename,
		MimeType:     fileHeader.Header.Get("Content-Type"),
		SizeBytes:    fileHeader.Size,
		Reader:       file,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, EvidenceToResponse(evidence))
}

// @Summary List evidence for incident
// @Description Get metadata of all evidence files attached to an incident
// @Tags Evidence
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} EvidenceResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/evidence [get]
func (h *Handler) listEvidence(c *gin.Context) {
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "listEvidence").WithField("incident_id", incidentID)

	items, err := h.evidenceService.ListForIncident(c.Request.Context(), currentUser(c).ID, incidentID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, EvidenceListToResponses(items))
}

// @Summary Download evidence file
// @Description Download and decrypt a previously uploaded evidence file
// @Tags Evidence
// @Produce octet-stream
// @Security BearerAuth
// @Param id path string true "Evidence ID"
// @Success 200 {file} binary
// @Failure 400 {object} map[string]string "Invalid evidence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Evidence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evidence/{id}/download [get]
func (h *Handler) downloadEvidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid evidence ID"})
		return
	}
	log := h.logger.WithField("method", "downloadEvidence").WithField("evidence_id", id)

	evidence, data, err := h.evidenceService.Download(c.Request.Context(), currentUser(c).ID, id)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", evidence.OriginalName))
	c.Data(http.StatusOK, evidence.MimeType, data)
}

// @Summary Delete evidence
// @Description Delete an evidence record and its encrypted object
// @Tags Evidence
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Evidence ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid evidence ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Access denied"
// @Failure 404 {object} map[string]string "Evidence not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /evidence/{id} [delete]
func (h *Handler) deleteEvidence(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid evidence ID"})
		return
	}
	log := h.logger.WithField("method", "deleteEvidence").WithField("evidence_id", id)

	if err := h.evidenceService.Delete(c.Request.Context(), currentUser(c).ID, id); err != nil {
		h.respondError(c, log, err)
		return
	}

	c.Status(http.StatusNoContent)
}
