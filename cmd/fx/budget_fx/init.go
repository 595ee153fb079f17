package budget_fx

import (
	"os"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

var Module = fx.Provide(
	provideBudgetRepo, provideFareService, provideBudgetService, provideQuickBudgetService)

func provideBudgetRepo(db *gorm.DB) repositories.BudgetRepository {
	return repositories.NewBudgetRepository(db)
}

func provideFareService() services.TransitFareService {
	return services.NewTransitFareService(os.Getenv("ODSAY_API_KEY"), os.Getenv("ODSAY_BASE_URL"))
}

func provideBudgetService(
	scheduleRepo repositories.ScheduleRepository,
	catalogRepo repositories.CatalogRepository,
	budgetRepo repositories.BudgetRepository,
	fareService services.TransitFareService,
	aiClient utils.CompletionClientInterface,
	prompts services.PromptServiceInterface,
) services.BudgetServiceInterface {
	return services.NewBudgetService(scheduleRepo, catalogRepo, budgetRepo, fareService, aiClient, prompts)
}

func provideQuickBudgetService(
	budgetRepo repositories.BudgetRepository,
	aiClient utils.CompletionClientInterface,
	prompts services.PromptServiceInterface,
) services.QuickBudgetServiceInterface {
	return services.NewQuickBudgetService(budgetRepo, aiClient, prompts)
}
