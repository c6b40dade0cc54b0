package reports

import (
	"errors"
	"net/http"

	"cinepass/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// GetSummaryReport returns all report sections over one date range
func (c *Controller) GetSummaryReport(ctx *gin.Context) {
	report, err := c.service.GetSummaryReport(ctx.Request.Context(), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Report generated successfully", report)
}

// GetRevenueByStatus returns revenue and reservation counts grouped by status
func (c *Controller) GetRevenueByStatus(ctx *gin.Context) {
	rows, err := c.service.GetRevenueByStatus(ctx.Request.Context(), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Revenue report generated successfully", rows)
}

// GetTopMovies returns the most reserved movies in the range
func (c *Controller) GetTopMovies(ctx *gin.Context) {
	rows, err := c.service.GetTopMovies(ctx.Request.Context(), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Top movies report generated successfully", rows)
}

// GetTheaterOccupancy returns average seat fill rates per theater
func (c *Controller) GetTheaterOccupancy(ctx *gin.Context) {
	rows, err := c.service.GetTheaterOccupancy(ctx.Request.Context(), ctx.Query("startDate"), ctx.Query("endDate"))
	if err != nil {
		c.respondError(ctx, err)
		return
	}
	response.Success(ctx, http.StatusOK, "Occupancy report generated successfully", rows)
}

func (c *Controller) respondError(ctx *gin.Context, err error) {
	if errors.Is(err, ErrInvalidDateRange) {
		response.Error(ctx, http.StatusBadRequest, ErrInvalidDateRange.Error(), nil)
		return
	}
	response.Error(ctx, http.StatusInternalServerError, "Failed to generate report", nil)
}
