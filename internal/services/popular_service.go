package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

const (
	popularDestinationsKey = "popular_destinations"
	popularDestinationTop  = 9
	popularCacheTTL        = time.Hour
)

// PopularService serves the most frequent trip destinations. Reads hit Redis
// first; a miss recomputes from the schedules table and refills the cache.
type PopularServiceInterface interface {
	PopularDestinations(ctx context.Context) ([]response_models.PopularDestination, error)
}

type PopularService struct {
	scheduleRepo repositories.ScheduleRepository
	redisClient  *redis.Client
}

func NewPopularService(scheduleRepo repositories.ScheduleRepository, redisClient *redis.Client) PopularServiceInterface {
	return &PopularService{
		scheduleRepo: scheduleRepo,
		redisClient:  redisClient,
	}
}

func (s *PopularService) PopularDestinations(ctx context.Context) ([]response_models.PopularDestination, error) {
	if cached := s.readCache(ctx); cached != nil {
		return cached, nil
	}

	counts, err := s.scheduleRepo.TopEndCities(ctx, popularDestinationTop)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	destinations := make([]response_models.PopularDestination, 0, len(counts))
	for _, count := range counts {
		destinations = append(destinations, response_models.PopularDestination{
			Destination: count.EndCity,
			Count:       count.Count,
		})
	}

	s.writeCache(ctx, destinations)
	return destinations, nil
}

func (s *PopularService) readCache(ctx context.Context) []response_models.PopularDestination {
	if s.redisClient == nil {
		return nil
	}
	raw, err := s.redisClient.Get(ctx, popularDestinationsKey).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("popular: cache read failed: %v", err)
		}
		return nil
	}
	var destinations []response_models.PopularDestination
	if err := json.Unmarshal([]byte(raw), &destinations); err != nil {
		log.Printf("popular: discarding unreadable cache entry: %v", err)
		return nil
	}
	return destinations
}

func (s *PopularService) writeCache(ctx context.Context, destinations []response_models.PopularDestination) {
	if s.redisClient == nil {
		return
	}
	encoded, err := json.Marshal(destinations)
	if err != nil {
		return
	}
	if err := s.redisClient.Set(ctx, popularDestinationsKey, encoded, popularCacheTTL).Err(); err != nil {
		log.Printf("popular: cache write failed: %v", err)
	}
}
