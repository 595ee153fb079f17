package schedule_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

var Module = fx.Provide(
	provideScheduleRepo, provideReconcileService, provideScheduleService)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideReconcileService(catalogRepo repositories.CatalogRepository) services.ReconcileServiceInterface {
	return services.NewReconcileService(catalogRepo)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	catalogRepo repositories.CatalogRepository,
	aiClient utils.CompletionClientInterface,
	prompts services.PromptServiceInterface,
	extractor services.PlanExtractorInterface,
	reconciler services.ReconcileServiceInterface,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, catalogRepo, aiClient, prompts, extractor, reconciler)
}
