package movies

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupMovieRoutes(router *gin.RouterGroup, controller *Controller) {
	// Public routes
	publicMovies := router.Group("/movies")
	{
		publicMovies.GET("/active", controller.GetActiveMovies)        // GET /api/v1/movies/active
		publicMovies.GET("/genre/:genre", controller.GetMoviesByGenre) // GET /api/v1/movies/genre/:genre
		publicMovies.GET("/:id", controller.GetMovie)                  // GET /api/v1/movies/:id
	}

	// Admin routes
	adminMovies := router.Group("/admin/movies")
	adminMovies.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminMovies.GET("", controller.GetAllMovies)       // GET /api/v1/admin/movies
		adminMovies.POST("", controller.CreateMovie)       // POST /api/v1/admin/movies
		adminMovies.PUT("/:id", controller.UpdateMovie)    // PUT /api/v1/admin/movies/:id
		adminMovies.DELETE("/:id", controller.DeleteMovie) // DELETE /api/v1/admin/movies/:id
	}
}
