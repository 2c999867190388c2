package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Публичные маршруты аутентификации с лимитом запросов
	auth := api.Group("/auth", AuthRateLimitMiddleware(h.logger))
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/mfa/login", h.mfaLogin)
	}

	// Колбэк USSD-шлюза, авторизация на стороне оператора
	api.POST("/ussd", h.handleUSSD)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)

	// Все маршруты ниже требуют действующий access-токен
	protected := api.Group("", JWTAuthMiddleware(h.tokens, h.authService, h.logger))

	authorized := protected.Group("/auth")
	{
		authorized.GET("/verify", h.verify)
		authorized.GET("/mfa", h.getMFAStatus)
		authorized.PUT("/mfa", h.setMFAStatus)
		authorized.POST("/mfa/enroll", h.mfaEnroll)
		authorized.POST("/mfa/verify", h.mfaVerify)
	}

	// Маршруты для управления инцидентами (CRUD)
	incidents := protected.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PUT("/:id", h.updateIncident)
		incidents.DELETE("/:id", h.deleteIncident)
		incidents.POST("/:id/evidence", h.uploadEvidence)
		incidents.GET("/:id/evidence", h.listEvidence)
	}

	// Маршруты улик вне контекста инцидента
	evidence := protected.Group("/evidence")
	{
		evidence.GET("/:id/download", h.downloadEvidence)
		evidence.DELETE("/:id", h.deleteEvidence)
	}

	// Маршруты юридических дел
	legalCases := protected.Group("/legal-cases")
	{
		legalCases.POST("", h.createLegalCase)
		legalCases.GET("", h.listLegalCases)
		legalCases.GET("/:id", h.getLegalCase)
		legalCases.PUT("/:id", h.updateLegalCase)
		legalCases.DELETE("/:id", h.deleteLegalCase)
	}

	// Панель кейс-менеджера, только для роли reviewer
	review := protected.Group("/review", RequireReviewer())
	{
		review.GET("/incidents", h.listIncidentsForReview)
		review.PUT("/incidents/:id/status", h.updateIncidentStatus)
	}
}
