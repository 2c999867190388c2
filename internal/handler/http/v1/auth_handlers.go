package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// @Summary Register a new user
// @Description Register a new reporting user and issue an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/register [post]
func (h *Handler) register(c *gin.Context) {
	var input RegisterRequest
	log := h.logger.WithField("method", "register")

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

	user, accessToken, err := h.authService.Register(c.Request.Context(), registerInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{Token: accessToken, User: UserToResponse(user)})
}

// @Summary Log in
// @Description First login step. Users with MFA enabled receive a pending token instead of an access token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/login [post]
func (h *Handler) login(c *gin.Context) {
	var input LoginRequest
	log := h.logger.WithField("method", "login")

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

	result, err := h.authService.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	resp := AuthResponse{Token: result.Token, MFARequired: result.MFARequired}
	if !result.MFARequired {
		resp.User = UserToResponse(result.User)
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Complete MFA login
// @Description Second login step: exchange the pending token and a TOTP code for an access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body MFALoginRequest true "MFA login request"
// @Success 200 {object} AuthResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid pending token or TOTP code"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/mfa/login [post]
func (h *Handler) mfaLogin(c *gin.Context) {
	var input MFALoginRequest
	log := h.logger.WithField("method", "mfaLogin")

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

	result, err := h.authService.CompleteMFALogin(c.Request.Context(), input.PendingToken, input.Code)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AuthResponse{Token: result.Token, User: UserToResponse(result.User)})
}

// @Summary Verify access token
// @Description Verify the presented bearer token and return the current user
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} VerifyResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/verify [get]
func (h *Handler) verify(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, VerifyResponse{Valid: true, User: UserToResponse(user)})
}

// @Summary Get MFA status
// @Description Get whether MFA is enabled for the current user
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MFAStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /auth/mfa [get]
func (h *Handler) getMFAStatus(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, MFAStatusResponse{MFAEnabled: user.MFAEnabled})
}

// @Summary Toggle MFA
// @Description Enable MFA (requires a previously verified secret) or disable it, wiping the secret
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MFAStatusRequest true "MFA status request"
// @Success 200 {object} MFAStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "MFA not enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/mfa [put]
func (h *Handler) setMFAStatus(c *gin.Context) {
	var input MFAStatusRequest
	log := h.logger.WithField("method", "setMFAStatus")

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

	user, err := h.authService.SetMFAStatus(c.Request.Context(), currentUser(c).ID, *input.MFAEnabled)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, MFAStatusResponse{MFAEnabled: user.MFAEnabled})
}

// @Summary Enroll TOTP
// @Description Generate a TOTP secret and otpauth URL. MFA stays disabled until the code is verified.
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MFAEnrollResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "MFA already enabled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/mfa/enroll [post]
func (h *Handler) mfaEnroll(c *gin.Context) {
	log := h.logger.WithField("method", "mfaEnroll")

	enrollment, err := h.authService.EnrollTOTP(c.Request.Context(), currentUser(c).ID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, MFAEnrollResponse{Secret: enrollment.Secret, URL: enrollment.URL})
}

// @Summary Verify TOTP
// @Description Verify a TOTP code against the enrolled secret and enable MFA
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body MFAVerifyRequest true "TOTP verification request"
// @Success 200 {object} MFAStatusResponse
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 401 {object} map[string]string "Invalid TOTP code"
// @Failure 422 {object} map[string]string "MFA not enrolled"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/mfa/verify [post]
func (h *Handler) mfaVerify(c *gin.Context) {
	var input MFAVerifyRequest
	log := h.logger.WithField("method", "mfaVerify")

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

	user, err := h.authService.VerifyTOTP(c.Request.Context(), currentUser(c).ID, input.Code)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, MFAStatusResponse{MFAEnabled: user.MFAEnabled})
}
