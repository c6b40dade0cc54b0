package reservations

import (
	"errors"
	"net/http"

	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// CreateReservation books seats for the authenticated user
func (c *Controller) CreateReservation(ctx *gin.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "user not found in context", nil)
		return
	}

	var req CreateReservationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	reservation, err := c.service.CreateReservation(ctx.Request.Context(), userID, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to create reservation")
		return
	}

	response.Success(ctx, http.StatusCreated, "Reservation created successfully", reservation)
}

// CancelReservation cancels one of the authenticated user's reservations
func (c *Controller) CancelReservation(ctx *gin.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "user not found in context", nil)
		return
	}

	reservationID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid reservation ID", nil)
		return
	}

	reservation, err := c.service.CancelReservation(ctx.Request.Context(), userID, reservationID)
	if err != nil {
		c.respondError(ctx, err, "Failed to cancel reservation")
		return
	}

	response.Success(ctx, http.StatusOK, "Reservation cancelled successfully", reservation)
}

// GetUserReservations lists the authenticated user's reservations
func (c *Controller) GetUserReservations(ctx *gin.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "user not found in context", nil)
		return
	}

	result, err := c.service.GetUserReservations(ctx.Request.Context(), userID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch reservations", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Reservations fetched successfully", result)
}

// GetUserUpcomingReservations lists confirmed reservations for future showtimes
func (c *Controller) GetUserUpcomingReservations(ctx *gin.Context) {
	userID, ok := contextUserID(ctx)
	if !ok {
		response.Error(ctx, http.StatusUnauthorized, "user not found in context", nil)
		return
	}

	result, err := c.service.GetUserUpcomingReservations(ctx.Request.Context(), userID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch reservations", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Upcoming reservations fetched successfully", result)
}

// GetAllReservations lists every reservation (admin)
func (c *Controller) GetAllReservations(ctx *gin.Context) {
	result, err := c.service.GetAllReservations(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch reservations", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Reservations fetched successfully", result)
}

// GetReservation returns a single reservation by id (admin)
func (c *Controller) GetReservation(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid reservation ID", nil)
		return
	}

	reservation, err := c.service.GetReservationByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch reservation")
		return
	}

	response.Success(ctx, http.StatusOK, "Reservation fetched successfully", reservation)
}

func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	var conflict *SeatConflictError
	switch {
	case errors.Is(err, ErrShowtimeNotFound):
		response.Error(ctx, http.StatusNotFound, "Showtime not found", nil)
	case errors.Is(err, ErrReservationNotFound):
		response.Error(ctx, http.StatusNotFound, "Reservation not found", nil)
	case errors.Is(err, ErrSeatsNotFound):
		response.Error(ctx, http.StatusNotFound, ErrSeatsNotFound.Error(), nil)
	case errors.Is(err, ErrPastShowtime):
		response.Error(ctx, http.StatusBadRequest, ErrPastShowtime.Error(), nil)
	case errors.Is(err, ErrShowtimeStarted):
		response.Error(ctx, http.StatusBadRequest, ErrShowtimeStarted.Error(), nil)
	case errors.Is(err, ErrNoSeatsRequested):
		response.Error(ctx, http.StatusBadRequest, ErrNoSeatsRequested.Error(), nil)
	case errors.Is(err, ErrNotOwner):
		response.Error(ctx, http.StatusForbidden, "You can only cancel your own reservations", nil)
	case errors.As(err, &conflict):
		response.Error(ctx, http.StatusBadRequest, conflict.Error(), gin.H{
			"reserved_seats": conflict.Labels,
		})
	default:
		response.Error(ctx, http.StatusInternalServerError, fallback, nil)
	}
}

// contextUserID extracts the authenticated user id set by the JWT middleware
func contextUserID(ctx *gin.Context) (uuid.UUID, bool) {
	value, exists := ctx.Get("user_id")
	if !exists {
		return uuid.Nil, false
	}
	raw, ok := value.(string)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
