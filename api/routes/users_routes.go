// Moved from internal/users/router.go to break the import cycle
// internal/shared/middleware -> internal/users -> internal/shared/middleware.
package routes

import (
	"cinepass/internal/shared/middleware"
	"cinepass/internal/users"

	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(router *gin.RouterGroup, controller *users.Controller) {
	// Self-service routes
	profile := router.Group("/users")
	profile.Use(middleware.JWTAuth())
	{
		profile.GET("/profile", controller.GetProfile) // GET /api/v1/users/profile
	}

	// Admin routes
	adminUsers := router.Group("/admin/users")
	adminUsers.Use(middleware.JWTAuth(), middleware.RequireAdmin())
	{
		adminUsers.GET("", controller.ListUsers)                  // GET /api/v1/admin/users
		adminUsers.GET("/:id", controller.GetUser)                // GET /api/v1/admin/users/:id
		adminUsers.PUT("/:id", controller.UpdateUser)             // PUT /api/v1/admin/users/:id
		adminUsers.PUT("/:id/promote", controller.PromoteToAdmin) // PUT /api/v1/admin/users/:id/promote
		adminUsers.DELETE("/:id", controller.DeleteUser)          // DELETE /api/v1/admin/users/:id
	}
}
