package services

import (
	"context"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

const recommendationLimit = 10

type PlaceServiceInterface interface {
	GetDestinationDetail(ctx context.Context, placeID string) (*response_models.DestinationDetail, error)
	GetMealDetail(ctx context.Context, placeID string) (*response_models.MealDetail, error)
	RecommendRestaurants(ctx context.Context, req request_models.RecommendRestaurantsRequest) ([]response_models.RestaurantRecommendation, error)
}

type PlaceService struct {
	catalogRepo repositories.CatalogRepository
}

func NewPlaceService(catalogRepo repositories.CatalogRepository) PlaceServiceInterface {
	return &PlaceService{catalogRepo: catalogRepo}
}

func reviewComments(reviews []db_models.Review) []string {
	comments := make([]string, 0, len(reviews))
	for _, review := range reviews {
		if review.Comment != "" {
			comments = append(comments, review.Comment)
		}
	}
	return comments
}

func (s *PlaceService) GetDestinationDetail(ctx context.Context, placeID string) (*response_models.DestinationDetail, error) {
	if placeID == "" {
		return nil, utils.ErrInvalidInput
	}
	destination, err := s.catalogRepo.GetDestinationByPlaceID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if destination == nil {
		return nil, utils.ErrPlaceNotFound
	}

	return &response_models.DestinationDetail{
		Name:         destination.Name,
		Area:         destination.Area,
		Rating:       destination.Rating,
		ReviewCount:  destination.ReviewCount,
		PhoneNumber:  destination.PhoneNumber,
		OpeningHours: destination.OpeningHours,
		ImageURL:     destination.ImageURL,
		PlaceID:      destination.PlaceID,
		Latitude:     destination.Latitude,
		Longitude:    destination.Longitude,
		Reviews:      reviewComments(destination.Reviews),
	}, nil
}

func (s *PlaceService) GetMealDetail(ctx context.Context, placeID string) (*response_models.MealDetail, error) {
	if placeID == "" {
		return nil, utils.ErrInvalidInput
	}
	meal, err := s.catalogRepo.GetMealByPlaceID(ctx, placeID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if meal == nil {
		return nil, utils.ErrPlaceNotFound
	}

	return &response_models.MealDetail{
		Name:        meal.Name,
		FoodType:    meal.FoodType,
		Area:        meal.Area,
		Rating:      meal.Rating,
		ReviewCount: meal.ReviewCount,
		ImageURL:    meal.ImageURL,
		PlaceID:     meal.PlaceID,
		Latitude:    meal.Latitude,
		Longitude:   meal.Longitude,
		Reviews:     reviewComments(meal.Reviews),
	}, nil
}

func (s *PlaceService) RecommendRestaurants(ctx context.Context, req request_models.RecommendRestaurantsRequest) ([]response_models.RestaurantRecommendation, error) {
	if len(req.FoodTypes) == 0 || req.Region == "" {
		return nil, utils.ErrInvalidInput
	}

	meals, err := s.catalogRepo.RecommendMeals(ctx, req.FoodTypes, req.Region, recommendationLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	recommendations := make([]response_models.RestaurantRecommendation, 0, len(meals))
	for _, meal := range meals {
		recommendations = append(recommendations, response_models.RestaurantRecommendation{
			Name:        meal.Name,
			FoodType:    meal.FoodType,
			Area:        meal.Area,
			Rating:      meal.Rating,
			ReviewCount: meal.ReviewCount,
			ImageURL:    meal.ImageURL,
			PlaceID:     meal.PlaceID,
		})
	}
	return recommendations, nil
}
