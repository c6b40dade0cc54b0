package showtimes

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupShowtimeRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes
	publicShowtimes := router.Group("/showtimes")
	{
		publicShowtimes.GET("/date/:date", controller.GetShowtimesByDate)      // GET /api/v1/showtimes/date/:date
		publicShowtimes.GET("/movie/:movieId", controller.GetShowtimesByMovie) // GET /api/v1/showtimes/movie/:movieId
		publicShowtimes.GET("/:id", controller.GetShowtime)                    // GET /api/v1/showtimes/:id
		publicShowtimes.GET("/:id/seats", controller.GetSeatMap)               // GET /api/v1/showtimes/:id/seats
	}

	// Admin routes
	adminShowtimes := router.Group("/admin/showtimes")
	adminShowtimes.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminShowtimes.GET("", controller.GetAllShowtimes)       // GET /api/v1/admin/showtimes
		adminShowtimes.POST("", controller.CreateShowtime)       // POST /api/v1/admin/showtimes
		adminShowtimes.PUT("/:id", controller.UpdateShowtime)    // PUT /api/v1/admin/showtimes/:id
		adminShowtimes.DELETE("/:id", controller.DeleteShowtime) // DELETE /api/v1/admin/showtimes/:id
	}
}
