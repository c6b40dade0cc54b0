package movies

import (
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

// CreateMovie adds a movie to the catalog (admin)
func (c *Controller) CreateMovie(ctx *gin.Context) {
	var req CreateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	movie, err := c.service.CreateMovie(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to create movie", nil)
		return
	}

	response.Success(ctx, http.StatusCreated, "Movie created successfully", movie)
}

// GetMovie returns a movie by id
func (c *Controller) GetMovie(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid movie ID", nil)
		return
	}

	movie, err := c.service.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		switch err {
		case ErrMovieNotFound:
			response.Error(ctx, http.StatusNotFound, "Movie not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to fetch movie", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Movie fetched successfully", movie)
}

// GetAllMovies lists every movie including inactive ones (admin)
func (c *Controller) GetAllMovies(ctx *gin.Context) {
	result, err := c.service.GetAllMovies(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch movies", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Movies fetched successfully", result)
}

// GetActiveMovies lists movies currently showing
func (c *Controller) GetActiveMovies(ctx *gin.Context) {
	result, err := c.service.GetActiveMovies(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch movies", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Movies fetched successfully", result)
}

// GetMoviesByGenre lists active movies carrying the given genre
func (c *Controller) GetMoviesByGenre(ctx *gin.Context) {
	genre := ctx.Param("genre")
	if genre == "" {
		response.Error(ctx, http.StatusBadRequest, "Genre is required", nil)
		return
	}

	result, err := c.service.GetMoviesByGenre(ctx.Request.Context(), genre)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch movies", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Movies fetched successfully", result)
}

// UpdateMovie edits catalog fields of a movie (admin)
func (c *Controller) UpdateMovie(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid movie ID", nil)
		return
	}

	var req UpdateMovieRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	movie, err := c.service.UpdateMovie(ctx.Request.Context(), id, req)
	if err != nil {
		switch err {
		case ErrMovieNotFound:
			response.Error(ctx, http.StatusNotFound, "Movie not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to update movie", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie removes a movie and, via cascade, its showtimes (admin)
func (c *Controller) DeleteMovie(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid movie ID", nil)
		return
	}

	if err := c.service.DeleteMovie(ctx.Request.Context(), id); err != nil {
		switch err {
		case ErrMovieNotFound:
			response.Error(ctx, http.StatusNotFound, "Movie not found", nil)
		default:
			response.Error(ctx, http.StatusInternalServerError, "Failed to delete movie", nil)
		}
		return
	}

	response.Success(ctx, http.StatusOK, "Movie deleted successfully", nil)
}
