package reservations

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupReservationRoutes(router *gin.RouterGroup, controller *Controller) {
	// User routes
	userReservations := router.Group("/reservations")
	userReservations.Use(middleware.JWTAuth())
	{
		userReservations.POST("", controller.CreateReservation)                        // POST /api/v1/reservations
		userReservations.GET("/user", controller.GetUserReservations)                  // GET /api/v1/reservations/user
		userReservations.GET("/user/upcoming", controller.GetUserUpcomingReservations) // GET /api/v1/reservations/user/upcoming
		userReservations.PUT("/:id/cancel", controller.CancelReservation)              // PUT /api/v1/reservations/:id/cancel
	}

	// Admin routes
	adminReservations := router.Group("/admin/reservations")
	adminReservations.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminReservations.GET("", controller.GetAllReservations) // GET /api/v1/admin/reservations
		adminReservations.GET("/:id", controller.GetReservation) // GET /api/v1/admin/reservations/:id
	}
}
