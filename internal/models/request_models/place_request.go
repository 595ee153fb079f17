package request_models

type RecommendRestaurantsRequest struct {
	FoodTypes []string `json:"foodTypes" binding:"required,min=1"`
	Region    string   `json:"region" binding:"required"`
}
