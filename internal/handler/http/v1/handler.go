package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/config"
	"github.com/luyandaaaa/SafeVoice-sub000/internal/service"
	"github.com/luyandaaaa/SafeVoice-sub000/pkg/token"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	authService      service.AuthService
	incidentService  service.IncidentService
	evidenceService  service.EvidenceService
	legalCaseService service.LegalCaseService
	ussdService      service.USSDService
	tokens           *token.Manager
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(
	authService service.AuthService,
	incidentService service.IncidentService,
	evidenceService service.EvidenceService,
	legalCaseService service.LegalCaseService,
	ussdService service.USSDService,
	tokens *token.Manager,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authService:      authService,
		incidentService:  incidentService,
		evidenceService:  evidenceService,
		legalCaseService: legalCaseService,
		ussdService:      ussdService,
		tokens:           tokens,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// respondError - единое отображение доменных ошибок на HTTP-статусы.
// Несовпадение владельца - всегда 403, ошибки аутентификации - всегда 401.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials", "code": "INVALID_CREDENTIALS"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied", "code": "FORBIDDEN"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found", "code": "NOT_FOUND"})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists", "code": "CONFLICT"})
	case errors.Is(err, service.ErrFileTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "file exceeds upload size limit", "code": "FILE_TOO_LARGE"})
	case errors.Is(err, service.ErrUnsupportedMediaType):
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "unsupported media type", "code": "UNSUPPORTED_MEDIA_TYPE"})
	case errors.Is(err, service.ErrInvalidStatusTransition):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "invalid status transition", "code": "INVALID_STATUS_TRANSITION"})
	case errors.Is(err, service.ErrMFAAlreadyEnabled):
		c.JSON(http.StatusConflict, gin.H{"error": "MFA already enabled", "code": "MFA_ALREADY_ENABLED"})
	case errors.Is(err, service.ErrMFANotEnrolled):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "MFA not enrolled", "code": "MFA_NOT_ENROLLED"})
	case errors.Is(err, service.ErrInvalidTOTPCode):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid TOTP code", "code": "INVALID_TOTP_CODE"})
	default:
		log.WithError(err).Error("Unhandled service error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// validationError - единый формат ошибок валидации со списком всех нарушений
func (h *Handler) validationError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fe.Field()+": failed on '"+fe.Tag()+"'")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "code": "VALIDATION_FAILED", "fields": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
