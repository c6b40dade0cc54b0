package genres

import (
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

// GetAllGenres lists every genre, alphabetically
func (c *Controller) GetAllGenres(ctx *gin.Context) {
	result, err := c.service.GetAllGenres(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to fetch genres", nil)
		return
	}

	response.Success(ctx, http.StatusOK, "Genres fetched successfully", result)
}
