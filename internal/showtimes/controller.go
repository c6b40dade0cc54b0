package showtimes

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

// CreateShowtime schedules a showtime and generates its seat grid (admin)
func (c *Controller) CreateShowtime(ctx *gin.Context) {
	var req CreateShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	showtime, err := c.service.CreateShowtime(ctx.Request.Context(), req)
	if err != nil {
		c.respondError(ctx, err, "Failed to create showtime")
		return
	}

	response.Success(ctx, http.StatusCreated, "Showtime created successfully", showtime)
}

// GetShowtime returns a showtime with its movie summary
func (c *Controller) GetShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid showtime ID", nil)
		return
	}

	showtime, err := c.service.GetShowtimeByID(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch showtime")
		return
	}

	response.Success(ctx, http.StatusOK, "Showtime fetched successfully", showtime)
}

// GetAllShowtimes lists every showtime (admin)
func (c *Controller) GetAllShowtimes(ctx *gin.Context) {
	result, err := c.service.GetAllShowtimes(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch showtimes", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Showtimes fetched successfully", result)
}

// GetShowtimesByDate lists active showtimes starting on the given day
func (c *Controller) GetShowtimesByDate(ctx *gin.Context) {
	result, err := c.service.GetShowtimesByDate(ctx.Request.Context(), ctx.Param("date"))
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch showtimes")
		return
	}

	response.Success(ctx, http.StatusOK, "Showtimes fetched successfully", result)
}

// GetShowtimesByMovie lists upcoming active showtimes for a movie
func (c *Controller) GetShowtimesByMovie(ctx *gin.Context) {
	movieID, err := uuid.Parse(ctx.Param("movieId"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid movie ID", nil)
		return
	}

	result, err := c.service.GetShowtimesByMovie(ctx.Request.Context(), movieID)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch showtimes", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Showtimes fetched successfully", result)
}

// GetSeatMap returns the seat grid for a showtime, row then number ascending
func (c *Controller) GetSeatMap(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid showtime ID", nil)
		return
	}

	seatMap, err := c.service.GetSeatMap(ctx.Request.Context(), id)
	if err != nil {
		c.respondError(ctx, err, "Failed to fetch seats")
		return
	}

	response.Success(ctx, http.StatusOK, "Seats fetched successfully", seatMap)
}

// UpdateShowtime reschedules or edits a showtime (admin)
func (c *Controller) UpdateShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid showtime ID", nil)
		return
	}

	var req UpdateShowtimeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	showtime, err := c.service.UpdateShowtime(ctx.Request.Context(), id, req)
	if err != nil {
		c.respondError(ctx, err, "Failed to update showtime")
		return
	}

	response.Success(ctx, http.StatusOK, "Showtime updated successfully", showtime)
}

// DeleteShowtime removes a showtime and its seats (admin)
func (c *Controller) DeleteShowtime(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid showtime ID", nil)
		return
	}

	if err := c.service.DeleteShowtime(ctx.Request.Context(), id); err != nil {
		c.respondError(ctx, err, "Failed to delete showtime")
		return
	}

	response.Success(ctx, http.StatusOK, "Showtime deleted successfully", nil)
}

func (c *Controller) respondError(ctx *gin.Context, err error, fallback string) {
	var conflict *ConflictError
	switch {
	case errors.Is(err, ErrShowtimeNotFound):
		response.Error(ctx, http.StatusNotFound, "Showtime not found", nil)
	case errors.Is(err, ErrMovieNotFound):
		response.Error(ctx, http.StatusNotFound, "Movie not found", nil)
	case errors.Is(err, ErrInvalidTimeRange):
		response.Error(ctx, http.StatusBadRequest, ErrInvalidTimeRange.Error(), nil)
	case errors.Is(err, ErrInvalidDate):
		response.Error(ctx, http.StatusBadRequest, ErrInvalidDate.Error(), nil)
	case errors.As(err, &conflict):
		response.Error(ctx, http.StatusBadRequest, conflict.Error(), gin.H{
			"conflicting_showtime_id": conflict.ShowtimeID,
			"theater":                 conflict.Theater,
			"start_time":              conflict.StartTime,
			"end_time":                conflict.EndTime,
		})
	default:
		response.Error(ctx, http.StatusInternalServerError, fallback, nil)
	}
}
