package controllers

import (
	"github.com/gin-gonic/gin"

	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type PopularController struct {
	popularService services.PopularServiceInterface
}

func NewPopularController(popularService services.PopularServiceInterface) *PopularController {
	return &PopularController{
		popularService: popularService,
	}
}

// List godoc
// @Summary List the most popular trip destinations
// @Tags Places
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /popular-places [get]
func (p *PopularController) List(c *gin.Context) {
	destinations, err := p.popularService.PopularDestinations(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, destinations, "Popular destinations fetched successfully")
}
