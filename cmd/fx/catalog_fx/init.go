package catalog_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	provideCatalogRepo, providePlaceService)

func provideCatalogRepo(db *gorm.DB) repositories.CatalogRepository {
	return repositories.NewCatalogRepository(db)
}

func providePlaceService(catalogRepo repositories.CatalogRepository) services.PlaceServiceInterface {
	return services.NewPlaceService(catalogRepo)
}
