package reports

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReportRoutes(router *gin.RouterGroup, controller *Controller) {
	reports := router.Group("/admin/reservations/reports")
	reports.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		reports.GET("", controller.GetSummaryReport)              // GET /api/v1/admin/reservations/reports
		reports.GET("/revenue", controller.GetRevenueByStatus)    // GET /api/v1/admin/reservations/reports/revenue
		reports.GET("/top-movies", controller.GetTopMovies)       // GET /api/v1/admin/reservations/reports/top-movies
		reports.GET("/occupancy", controller.GetTheaterOccupancy) // GET /api/v1/admin/reservations/reports/occupancy
	}
}
