//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/resource"
	"stayhub/internal/domain/user"
	"stayhub/internal/handler/api"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"
	"stayhub/tests/common/builder"
	"stayhub/tests/common/httptest"
	commandsmock "stayhub/tests/mock/commands"
	queriesmock "stayhub/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()
	s.actorRole = user.RoleGuest

	// Mock middleware behavior: identity comes from the suite fields.
	s.router.Use(func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
	})
	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.ListMyBookings)
	s.router.GET("/bookings/owned", s.handler.ListOwnedBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.POST("/bookings/:id/confirm", s.handler.ConfirmBooking)
	s.router.POST("/bookings/:id/reject", s.handler.RejectBooking)
	s.router.POST("/bookings/:id/cancel", s.handler.CancelBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) idempotencyHeader() map[string]string {
	return map[string]string{"Idempotency-Key": uuid.NewString()}
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 Created for a new booking", func() {
		b := builder.NewBookingBuilder().WithRequester(s.actorID)
		reqBody := b.BuildDTO()
		view := b.BuildView()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.actorID, gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: view, IsReplayed: false}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.idempotencyHeader(), "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID, response.ID)
		s.Equal(view.TotalCents, response.TotalCents)
		s.Equal("pending", response.Status)
	})

	s.Run("success: replay of a completed request returns 200 OK", func() {
		b := builder.NewBookingBuilder().WithRequester(s.actorID)
		reqBody := b.BuildDTO()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.actorID, gomock.Any()).
			Return(&commands.CreateBookingResult{Booking: b.BuildView(), IsReplayed: true}, nil).Times(1)

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.idempotencyHeader(), "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})

	s.Run("error: 400 Bad Request without an idempotency key", func() {
		reqBody := builder.NewBookingBuilder().BuildDTO()

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "idempotency-key header required")
	})

	s.Run("error: 400 Bad Request with a malformed idempotency key", func() {
		reqBody := builder.NewBookingBuilder().BuildDTO()
		headers := map[string]string{"Idempotency-Key": "not-a-uuid"}

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, headers, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid idempotency key")
	})

	s.Run("error: 400 Bad Request on a malformed body", func() {
		body := map[string]any{"resource_id": "not-a-uuid", "start_date": "2026-06-10", "guest_count": 2}

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, body, s.idempotencyHeader(), "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: command outcomes map to distinct statuses", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{"resource missing", commands.ErrResourceNotFound, http.StatusNotFound},
			{"requester unverified", commands.ErrNotVerified, http.StatusForbidden},
			{"requester inactive", commands.ErrRequesterInactive, http.StatusForbidden},
			{"outside available ranges", resource.ErrOutsideAvailableRange, http.StatusUnprocessableEntity},
			{"dates already booked", resource.ErrDateAlreadyBooked, http.StatusConflict},
			{"occupancy exceeded", resource.ErrOccupancyExceeded, http.StatusUnprocessableEntity},
			{"invalid coupon", commands.ErrInvalidCoupon, http.StatusBadRequest},
			{"insufficient points", commands.ErrInsufficientPoints, http.StatusConflict},
			{"concurrent conflict", commands.ErrBookingConflict, http.StatusConflict},
			{"key reused with different payload", commands.ErrDuplicateRequest, http.StatusConflict},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				reqBody := builder.NewBookingBuilder().BuildDTO()
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), reqBody, s.actorID, gomock.Any()).
					Return(nil, tc.err).Times(1)

				rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, s.idempotencyHeader(), "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the booking", func() {
		view := builder.NewBookingBuilder().WithRequester(s.actorID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, s.actorRole, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "")

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, s.actorRole, id).
			Return(nil, queries.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 Forbidden for an unrelated actor", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actorID, s.actorRole, id).
			Return(nil, queries.ErrBookingAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *BookingHandlerTestSuite) TestListBookings() {
	s.Run("success: lists requester bookings with a next cursor", func() {
		items := []*queries.BookingListItem{
			{ID: uuid.New(), ResourceName: "Seaside Cabin", Status: "pending", TotalCents: 39600},
		}
		next := &queries.Cursor{After: "djE6MTIzLWFiYw"}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.actorID, nil, 0).
			Return(items, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Require().NotNil(response.NextCursor)
		s.Equal(next.After, *response.NextCursor)
	})

	s.Run("success: forwards cursor and limit query params", func() {
		after := &queries.Cursor{After: "djE6NDU2LWRlZg"}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.actorID, after, 50).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after="+after.After+"&limit=50", nil, "")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response.Items)
		s.Nil(response.NextCursor)
	})

	s.Run("success: owned listing hits the owner query", func() {
		s.mockQueries.EXPECT().ListByOwner(gomock.Any(), s.actorID, nil, 0).
			Return([]*queries.BookingListItem{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owned", nil, "")

		var response resdto.BookingPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	})
}

func (s *BookingHandlerTestSuite) TestTransitions() {
	bookingID := uuid.New()

	s.Run("success: confirm returns 204 No Content", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/confirm", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: reject returns 204 No Content", func() {
		s.mockCommands.EXPECT().RejectBooking(gomock.Any(), bookingID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/reject", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: cancel returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden when the actor may not decide", func() {
		s.mockCommands.EXPECT().ConfirmBooking(gomock.Any(), bookingID, s.actorID).
			Return(booking.ErrNotOwner).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed")
	})

	s.Run("error: 409 Conflict for a decided booking", func() {
		s.mockCommands.EXPECT().CancelBooking(gomock.Any(), bookingID, s.actorID).
			Return(booking.ErrNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/cancel", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already been decided")
	})

	s.Run("error: 404 Not Found for an unknown booking", func() {
		s.mockCommands.EXPECT().RejectBooking(gomock.Any(), bookingID, s.actorID).
			Return(commands.ErrBookingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/"+bookingID.String()+"/reject", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 400 Bad Request for a malformed booking ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/oops/confirm", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID")
	})
}
