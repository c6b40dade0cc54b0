package genres

import (
	"github.com/gin-gonic/gin"
)

func SetupGenreRoutes(router *gin.RouterGroup, controller *Controller) {
	publicGenres := router.Group("/genres")
	{
		publicGenres.GET("", controller.GetAllGenres) // GET /api/v1/genres
	}
}
