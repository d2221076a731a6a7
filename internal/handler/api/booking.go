package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"stayhub/internal/domain/booking"
	"stayhub/internal/domain/coupon"
	"stayhub/internal/domain/resource"
	"stayhub/internal/domain/shared/daterange"
	reqdto "stayhub/internal/handler/dto/request"
	resdto "stayhub/internal/handler/dto/response"
	"stayhub/internal/handler/httperr"
	"stayhub/internal/handler/middleware"
	"stayhub/internal/usecase/commands"
	"stayhub/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errIdempotencyKeyRequired = errors.New("idempotency-key header required")

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Create booking
// @Description Reserve a resource for a date interval with an idempotency key
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Idempotency key for duplicate prevention"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	result, err := h.bookingCommands.CreateBooking(c.Request.Context(), req, userID, idempotencyKey)
	if err != nil {
		h.respondCreateError(c, err)
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromBookingView(result.Booking))
}

func (h *BookingHandler) respondCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrResourceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
	case errors.Is(err, commands.ErrNotVerified):
		c.JSON(http.StatusForbidden, gin.H{"error": "Email verification required before booking"})
	case errors.Is(err, commands.ErrRequesterInactive):
		c.JSON(http.StatusForbidden, gin.H{"error": "Account is inactive"})
	case errors.Is(err, daterange.ErrInvalidInterval):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date interval"})
	case errors.Is(err, resource.ErrOutsideAvailableRange):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Requested dates are outside the available ranges"})
	case errors.Is(err, resource.ErrDateAlreadyBooked):
		c.JSON(http.StatusConflict, gin.H{"error": "One or more requested dates are already booked"})
	case errors.Is(err, resource.ErrOccupancyExceeded):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Guest count exceeds the resource occupancy"})
	case errors.Is(err, coupon.ErrCouponExpired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Coupon has expired"})
	case errors.Is(err, coupon.ErrCouponInactive), errors.Is(err, commands.ErrInvalidCoupon):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coupon"})
	case errors.Is(err, commands.ErrInsufficientPoints):
		c.JSON(http.StatusConflict, gin.H{"error": "Insufficient loyalty points"})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Booking conflicts with a concurrent reservation"})
	case errors.Is(err, commands.ErrDuplicateRequest):
		c.JSON(http.StatusConflict, gin.H{"error": "Idempotency key reused with different parameters"})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Booking validation failed"})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get booking
// @Description Get booking by ID (requester, owner or admin only)
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, queries.ErrBookingAccess):
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List my bookings
// @Description List bookings requested by the current user, newest first
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListMyBookings(c *gin.Context) {
	h.list(c, h.bookingQueries.ListByRequester)
}

// @Summary List bookings on my resources
// @Description List bookings targeting resources owned by the current user
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param after query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.BookingPageResponse
// @Failure 401 {object} map[string]string
// @Router /bookings/owned [get]
func (h *BookingHandler) ListOwnedBookings(c *gin.Context) {
	h.list(c, h.bookingQueries.ListByOwner)
}

func (h *BookingHandler) list(
	c *gin.Context,
	fetch func(ctx context.Context, actorID uuid.UUID, after *queries.Cursor, limit int) ([]*queries.BookingListItem, *queries.Cursor, error),
) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var after *queries.Cursor
	if cursorParam := c.Query("after"); cursorParam != "" {
		after = &queries.Cursor{After: cursorParam}
	}
	limit := 0
	if limitParam := c.Query("limit"); limitParam != "" {
		if parsed, err := strconv.Atoi(limitParam); err == nil {
			limit = parsed
		}
	}

	items, next, err := fetch(c.Request.Context(), userID, after, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingListItems(items, next))
}

// @Summary Confirm booking
// @Description Resource owner confirms a pending booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/confirm [post]
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.ConfirmBooking)
}

// @Summary Reject booking
// @Description Resource owner rejects a pending booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reject [post]
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.RejectBooking)
}

// @Summary Cancel booking
// @Description Requester cancels a pending booking before the owner decides
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/cancel [post]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.bookingCommands.CancelBooking)
}

func (h *BookingHandler) transition(c *gin.Context, apply func(ctx context.Context, bookingID, actorID uuid.UUID) error) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking ID format"})
		return
	}

	if err := apply(c.Request.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrNotOwner), errors.Is(err, booking.ErrNotRequester):
			c.JSON(http.StatusForbidden, gin.H{"error": "Not allowed to change this booking"})
		case errors.Is(err, booking.ErrNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "Booking has already been decided"})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errIdempotencyKeyRequired
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
