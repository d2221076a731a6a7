//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"stayhub/internal/domain/verification"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type VerificationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockVerificationCommands
	handler      *api.VerificationHandler
	actorID      uuid.UUID
}

func (s *VerificationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockVerificationCommands(s.mockCtrl)
	s.handler = api.NewVerificationHandler(s.mockCommands)
	s.actorID = uuid.New()

	// Mock middleware behavior: identity comes from the suite field.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
	})
	s.router.POST("/verification/code", s.handler.IssueCode)
	s.router.POST("/verification/verify", s.handler.Verify)
}

func (s *VerificationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestVerificationHandlerSuite(t *testing.T) {
	suite.Run(t, new(VerificationHandlerTestSuite))
}

func (s *VerificationHandlerTestSuite) TestIssueCode() {
	s.Run("success: returns the code window", func() {
		now := time.Now().UTC()
		s.mockCommands.EXPECT().IssueAccountCode(gomock.Any(), s.actorID).
			Return(&commands.IssueCodeResult{
				ExpiresAt:         now.Add(15 * time.Minute),
				ResendAvailableAt: now.Add(time.Minute),
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/code", nil, "")

		var response resdto.IssueCodeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 409 Conflict for an already verified account", func() {
		s.mockCommands.EXPECT().IssueAccountCode(gomock.Any(), s.actorID).
			Return(nil, commands.ErrAlreadyVerified).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/code", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already verified")
	})

	s.Run("error: 429 Too Many Requests inside the cooldown", func() {
		s.mockCommands.EXPECT().IssueAccountCode(gomock.Any(), s.actorID).
			Return(nil, verification.ErrResendThrottle).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/code", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusTooManyRequests, "")
	})
}

func (s *VerificationHandlerTestSuite) TestVerify() {
	body := map[string]any{"code": "482913"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().VerifyAccount(gomock.Any(), s.actorID, "482913").
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/verify", body, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for a malformed code", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/verify",
			map[string]any{"code": "12ab"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 410 Gone for an expired code", func() {
		s.mockCommands.EXPECT().VerifyAccount(gomock.Any(), s.actorID, "482913").
			Return(verification.ErrCodeExpired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/verify", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusGone, "expired")
	})

	s.Run("error: 400 Bad Request for a mismatched code", func() {
		s.mockCommands.EXPECT().VerifyAccount(gomock.Any(), s.actorID, "482913").
			Return(verification.ErrCodeMismatch).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/verification/verify", body, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "does not match")
	})
}
