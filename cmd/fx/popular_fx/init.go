package popular_fx

import (
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"moodtrip/internal/repositories"
	"moodtrip/internal/services"
)

var Module = fx.Provide(
	providePopularService)

func providePopularService(scheduleRepo repositories.ScheduleRepository, redisClient *redis.Client) services.PopularServiceInterface {
	return services.NewPopularService(scheduleRepo, redisClient)
}
