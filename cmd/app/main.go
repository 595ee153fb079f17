package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"moodtrip/cmd/fx/account_fx"
	"moodtrip/cmd/fx/ai_fx"
	"moodtrip/cmd/fx/budget_fx"
	"moodtrip/cmd/fx/catalog_fx"
	"moodtrip/cmd/fx/controllers_fx"
	"moodtrip/cmd/fx/db_fx"
	"moodtrip/cmd/fx/popular_fx"
	"moodtrip/cmd/fx/redis_fx"
	"moodtrip/cmd/fx/schedule_fx"
	"moodtrip/internal/api/controllers"
	"moodtrip/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		redis_fx.Module,
		ai_fx.Module,
		catalog_fx.Module,
		account_fx.Module,
		schedule_fx.Module,
		budget_fx.Module,
		popular_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	scheduleController *controllers.ScheduleController,
	budgetController *controllers.BudgetController,
	placeController *controllers.PlaceController,
	popularController *controllers.PopularController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, accountController, scheduleController, budgetController, placeController, popularController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	scheduleController *controllers.ScheduleController,
	budgetController *controllers.BudgetController,
	placeController *controllers.PlaceController,
	popularController *controllers.PopularController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	// Generation works for anonymous callers too; a valid token just
	// attaches the schedule to the account.
	aiGroup := r.Group("/ai", middleware.OptionalAuthMiddleware())
	aiGroup.POST("/schedules", scheduleController.Generate)

	scheduleGroup := r.Group("/schedules")
	scheduleGroup.GET("", middleware.JWTAuthMiddleware(), scheduleController.List)
	scheduleGroup.GET("/:scheduleId", scheduleController.Get)
	scheduleGroup.PUT("/:scheduleId", scheduleController.Update)
	scheduleGroup.DELETE("/:scheduleId", scheduleController.Delete)
	scheduleGroup.POST("/:scheduleId/budget", budgetController.Estimate)
	scheduleGroup.GET("/:scheduleId/budget", budgetController.Get)

	r.POST("/budgets/quick", budgetController.Quick)
	r.GET("/popular-places", popularController.List)

	placeGroup := r.Group("/places")
	placeGroup.GET("/destinations/:placeId", placeController.GetDestination)
	placeGroup.GET("/meals/:placeId", placeController.GetMeal)
	placeGroup.POST("/restaurants/recommend", placeController.RecommendRestaurants)
}
