package controllers_fx

import (
	"go.uber.org/fx"

	"moodtrip/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewScheduleController),
	fx.Provide(controllers.NewBudgetController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewPopularController))
