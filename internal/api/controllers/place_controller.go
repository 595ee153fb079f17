package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type PlaceController struct {
	placeService services.PlaceServiceInterface
}

func NewPlaceController(placeService services.PlaceServiceInterface) *PlaceController {
	return &PlaceController{
		placeService: placeService,
	}
}

// GetDestination godoc
// @Summary Get attraction details
// @Tags Places
// @Produce json
// @Param placeId path string true "Catalog place id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/destinations/{placeId} [get]
func (p *PlaceController) GetDestination(c *gin.Context) {
	detail, err := p.placeService.GetDestinationDetail(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Destination fetched successfully")
}

// GetMeal godoc
// @Summary Get restaurant details
// @Tags Places
// @Produce json
// @Param placeId path string true "Catalog place id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /places/meals/{placeId} [get]
func (p *PlaceController) GetMeal(c *gin.Context) {
	detail, err := p.placeService.GetMealDetail(c.Request.Context(), c.Param("placeId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Meal fetched successfully")
}

// RecommendRestaurants godoc
// @Summary Recommend restaurants by food type and region
// @Tags Places
// @Accept json
// @Produce json
// @Param request body request_models.RecommendRestaurantsRequest true "Recommendation filters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /places/restaurants/recommend [post]
func (p *PlaceController) RecommendRestaurants(c *gin.Context) {
	var req request_models.RecommendRestaurantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	recommendations, err := p.placeService.RecommendRestaurants(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, recommendations, "Restaurants fetched successfully")
}
