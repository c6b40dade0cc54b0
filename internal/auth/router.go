package auth

import (
	"cinepass/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup, controller *Controller) {
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/signup", controller.Signup)        // POST /api/v1/auth/signup
		authGroup.POST("/signin", controller.Signin)        // POST /api/v1/auth/signin
		authGroup.POST("/refresh", controller.RefreshToken) // POST /api/v1/auth/refresh

		protected := authGroup.Group("")
		protected.Use(middleware.JWTAuth())
		{
			protected.PUT("/change-password", controller.ChangePassword) // PUT /api/v1/auth/change-password
		}
	}
}
