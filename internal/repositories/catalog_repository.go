package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"moodtrip/internal/models/db_models"
)

// CatalogRepository is the read-only accessor over destinations, meals and
// accommodations. A place identifier resolves to at most one record across the
// three tables; lookup order is destinations, meals, accommodations.
type CatalogRepository interface {
	FindPlaceByID(ctx context.Context, placeID string) (*db_models.Place, error)
	QueryDestinations(ctx context.Context, region string, limit int) ([]db_models.Place, error)
	QueryMeals(ctx context.Context, region string, limit int) ([]db_models.Place, error)
	QueryAccommodations(ctx context.Context, region string, limit int) ([]db_models.Place, error)

	GetDestinationByPlaceID(ctx context.Context, placeID string) (*db_models.Destination, error)
	GetMealByPlaceID(ctx context.Context, placeID string) (*db_models.Meal, error)
	RecommendMeals(ctx context.Context, foodTypes []string, region string, limit int) ([]db_models.Meal, error)
}

type catalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func destinationToPlace(d *db_models.Destination) *db_models.Place {
	return &db_models.Place{
		PlaceID:     d.PlaceID,
		Name:        d.Name,
		Type:        db_models.PlaceTypeSights,
		Area:        d.Area,
		Rating:      d.Rating,
		ReviewCount: d.ReviewCount,
		PriceLevel:  d.PriceLevel,
		Latitude:    d.Latitude,
		Longitude:   d.Longitude,
	}
}

func mealToPlace(m *db_models.Meal) *db_models.Place {
	return &db_models.Place{
		PlaceID:     m.PlaceID,
		Name:        m.Name,
		Type:        db_models.PlaceTypeMeal,
		Area:        m.Area,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		PriceLevel:  m.PriceLevel,
		Latitude:    m.Latitude,
		Longitude:   m.Longitude,
	}
}

func accommodationToPlace(a *db_models.Accommodation) *db_models.Place {
	return &db_models.Place{
		PlaceID:      a.PlaceID,
		Name:         a.Name,
		Type:         db_models.PlaceTypeAccommodation,
		Area:         a.Area,
		Rating:       a.Rating,
		ReviewCount:  a.ReviewCount,
		NightlyPrice: a.Price,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
	}
}

func (r *catalogRepository) FindPlaceByID(ctx context.Context, placeID string) (*db_models.Place, error) {
	if placeID == "" {
		return nil, nil
	}

	var destination db_models.Destination
	err := r.db.WithContext(ctx).First(&destination, "place_id = ?", placeID).Error
	if err == nil {
		return destinationToPlace(&destination), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var meal db_models.Meal
	err = r.db.WithContext(ctx).First(&meal, "place_id = ?", placeID).Error
	if err == nil {
		return mealToPlace(&meal), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var accommodation db_models.Accommodation
	err = r.db.WithContext(ctx).First(&accommodation, "place_id = ?", placeID).Error
	if err == nil {
		return accommodationToPlace(&accommodation), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	return nil, nil
}

func (r *catalogRepository) QueryDestinations(ctx context.Context, region string, limit int) ([]db_models.Place, error) {
	var destinations []db_models.Destination
	err := r.db.WithContext(ctx).
		Where("area ILIKE ?", "%"+region+"%").
		Order("rating DESC").
		Limit(limit).
		Find(&destinations).Error
	if err != nil {
		return nil, err
	}

	places := make([]db_models.Place, 0, len(destinations))
	for i := range destinations {
		places = append(places, *destinationToPlace(&destinations[i]))
	}
	return places, nil
}

func (r *catalogRepository) QueryMeals(ctx context.Context, region string, limit int) ([]db_models.Place, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("area ILIKE ?", "%"+region+"%").
		Order("rating DESC").
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}

	places := make([]db_models.Place, 0, len(meals))
	for i := range meals {
		places = append(places, *mealToPlace(&meals[i]))
	}
	return places, nil
}

func (r *catalogRepository) QueryAccommodations(ctx context.Context, region string, limit int) ([]db_models.Place, error) {
	var accommodations []db_models.Accommodation
	err := r.db.WithContext(ctx).
		Where("area ILIKE ?", "%"+region+"%").
		Order("rating DESC").
		Limit(limit).
		Find(&accommodations).Error
	if err != nil {
		return nil, err
	}

	places := make([]db_models.Place, 0, len(accommodations))
	for i := range accommodations {
		places = append(places, *accommodationToPlace(&accommodations[i]))
	}
	return places, nil
}

func (r *catalogRepository) GetDestinationByPlaceID(ctx context.Context, placeID string) (*db_models.Destination, error) {
	var destination db_models.Destination
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		First(&destination, "place_id = ?", placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &destination, nil
}

func (r *catalogRepository) GetMealByPlaceID(ctx context.Context, placeID string) (*db_models.Meal, error) {
	var meal db_models.Meal
	err := r.db.WithContext(ctx).
		Preload("Reviews").
		First(&meal, "place_id = ?", placeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &meal, nil
}

func (r *catalogRepository) RecommendMeals(ctx context.Context, foodTypes []string, region string, limit int) ([]db_models.Meal, error) {
	var meals []db_models.Meal
	err := r.db.WithContext(ctx).
		Where("food_type IN ?", foodTypes).
		Where("area ILIKE ?", "%"+region+"%").
		Order("rating DESC").
		Limit(limit).
		Find(&meals).Error
	if err != nil {
		return nil, err
	}
	return meals, nil
}
