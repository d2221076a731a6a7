package api

import (
	"net/http"

	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type VerificationHandler struct {
	verificationCommands commands.VerificationCommands
}

func NewVerificationHandler(verificationCommands commands.VerificationCommands) *VerificationHandler {
	return &VerificationHandler{
		verificationCommands: verificationCommands,
	}
}

// @Summary Request verification code
// @Description Send a verification code to the current account's email
// @Tags verification
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.IssueCodeResponse
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 429 {object} map[string]string
// @Router /verification/code [post]
func (h *VerificationHandler) IssueCode(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.verificationCommands.IssueAccountCode(c.Request.Context(), userID)
	if err != nil {
		respondVerificationError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.IssueCodeResponse{
		ExpiresAt:         result.ExpiresAt,
		ResendAvailableAt: result.ResendAvailableAt,
	})
}

// @Summary Verify account
// @Description Submit the emailed code to mark the account verified
// @Tags verification
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.VerifyAccountRequest true "Verify request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /verification/verify [post]
func (h *VerificationHandler) Verify(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.VerifyAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := h.verificationCommands.VerifyAccount(c.Request.Context(), userID, req.Code); err != nil {
		respondVerificationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
