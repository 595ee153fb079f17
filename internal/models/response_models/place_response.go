package response_models

type DestinationDetail struct {
	Name         string   `json:"name"`
	Area         string   `json:"area"`
	Rating       float64  `json:"rating"`
	ReviewCount  int      `json:"reviewCount"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
	OpeningHours string   `json:"openingHours,omitempty"`
	ImageURL     string   `json:"imageUrl,omitempty"`
	PlaceID      string   `json:"placeId"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Reviews      []string `json:"reviews"`
}

type MealDetail struct {
	Name        string   `json:"name"`
	FoodType    string   `json:"foodType"`
	Area        string   `json:"area"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	ImageURL    string   `json:"imageUrl,omitempty"`
	PlaceID     string   `json:"placeId"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Reviews     []string `json:"reviews"`
}

type RestaurantRecommendation struct {
	Name        string  `json:"name"`
	FoodType    string  `json:"foodType"`
	Area        string  `json:"area"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	PlaceID     string  `json:"placeId"`
}

type PopularDestination struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}
