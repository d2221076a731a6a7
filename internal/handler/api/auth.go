package api

import (
	"errors"
	"net/http"

	"stayhub/internal/domain/user"
	"stayhub/internal/domain/verification"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/cookie"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands         commands.AuthCommands
	verificationCommands commands.VerificationCommands
	userQueries          queries.UserQueries
}

func NewAuthHandler(
	authCommands commands.AuthCommands,
	verificationCommands commands.VerificationCommands,
	userQueries queries.UserQueries,
) *AuthHandler {
	return &AuthHandler{
		authCommands:         authCommands,
		verificationCommands: verificationCommands,
		userQueries:          userQueries,
	}
}

// @Summary Sign up
// @Description Start a registration; the account is created only after the emailed code is verified
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.SignupRequest true "Signup request"
// @Success 202 {object} resdto.SignupResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req reqdto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.authCommands.Signup(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		case errors.Is(err, user.ErrInvalidEmail), errors.Is(err, user.ErrPasswordTooWeak),
			errors.Is(err, user.ErrInvalidRole), errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data"})
		case errors.Is(err, commands.ErrDeliveryFailed):
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification code"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusAccepted, resdto.SignupResponse{
		SignupToken:       result.SignupToken,
		CodeExpiresAt:     result.CodeExpiresAt,
		ResendAvailableAt: result.ResendAvailableAt,
	})
}

// @Summary Verify signup
// @Description Verify the emailed code and create the account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.VerifySignupRequest true "Verify signup request"
// @Success 201 {object} resdto.VerifySignupResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /auth/signup/verify [post]
func (h *AuthHandler) VerifySignup(c *gin.Context) {
	var req reqdto.VerifySignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	userID, err := h.verificationCommands.VerifySignup(c.Request.Context(), req.Token, req.Code)
	if err != nil {
		respondVerificationError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.VerifySignupResponse{UserID: userID})
}

// @Summary Resend signup code
// @Description Resend the verification code for a pending signup
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.ResendSignupCodeRequest true "Resend request"
// @Success 200 {object} resdto.IssueCodeResponse
// @Failure 404 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /auth/signup/resend [post]
func (h *AuthHandler) ResendSignupCode(c *gin.Context) {
	var req reqdto.ResendSignupCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.verificationCommands.IssueSignupCode(c.Request.Context(), req.Token)
	if err != nil {
		respondVerificationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.IssueCodeResponse{
		ExpiresAt:         result.ExpiresAt,
		ResendAvailableAt: result.ResendAvailableAt,
	})
}

// @Summary User login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAccessToken(c, result.AccessToken, 24*60*60)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		UserID:      result.UserID,
	})
}

// @Summary User logout
// @Description Logout current user session
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, queries.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAuthorizedUserView(view))
}

// respondVerificationError maps the verification state machine's outcomes.
// The distinctions matter to clients: an expired code invites a resend, a
// mismatch invites a retry.
func respondVerificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSignupNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Pending signup not found or expired"})
	case errors.Is(err, commands.ErrAlreadyVerified):
		c.JSON(http.StatusConflict, gin.H{"error": "Account already verified"})
	case errors.Is(err, commands.ErrRequesterNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case errors.Is(err, verification.ErrNoLiveCode):
		c.JSON(http.StatusNotFound, gin.H{"error": "No active verification code; request a new one"})
	case errors.Is(err, verification.ErrCodeExpired):
		c.JSON(http.StatusGone, gin.H{"error": "Verification code has expired; request a new one"})
	case errors.Is(err, verification.ErrCodeMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Verification code does not match"})
	case errors.Is(err, verification.ErrResendThrottle):
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before requesting another code"})
	case errors.Is(err, commands.ErrDeliveryFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send verification code"})
	case errors.Is(err, commands.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
