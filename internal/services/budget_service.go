package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

// priceTierWon maps a catalog price level to an average per-person cost in won.
var priceTierWon = map[int]int{
	0: 0,
	1: 7000,
	2: 14000,
	3: 23000,
	4: 40000,
}

const (
	// Legs shorter than this are treated as walkable, no fare.
	minFareDistanceKm = 1.0

	// Fallback fares by leg distance when the transit API has no answer.
	shortLegFare  = 1250
	mediumLegFare = 1800
	longLegFare   = 2500

	extraGuestSurcharge = 0.3

	budgetCommentFallback = "We couldn't put together a budget analysis this time, but the estimate above should be a solid starting point!"
)

// BudgetService recomputes a full cost breakdown from a schedule's reconciled
// plan. Food and known entry fees come from catalog price tiers, unknown entry
// fees from the model, transport from the transit API with distance-band
// fallbacks, and lodging from catalog nightly prices.
type BudgetServiceInterface interface {
	EstimateForSchedule(ctx context.Context, scheduleID string) (*response_models.BudgetBreakdown, error)
	EstimateBudget(ctx context.Context, schedule *db_models.Schedule) (*response_models.BudgetBreakdown, error)
	GetBudget(ctx context.Context, scheduleID string) (*response_models.BudgetBreakdown, error)
}

type BudgetService struct {
	scheduleRepo repositories.ScheduleRepository
	catalogRepo  repositories.CatalogRepository
	budgetRepo   repositories.BudgetRepository
	fareService  TransitFareService
	aiClient     utils.CompletionClientInterface
	prompts      PromptServiceInterface
}

func NewBudgetService(
	scheduleRepo repositories.ScheduleRepository,
	catalogRepo repositories.CatalogRepository,
	budgetRepo repositories.BudgetRepository,
	fareService TransitFareService,
	aiClient utils.CompletionClientInterface,
	prompts PromptServiceInterface,
) BudgetServiceInterface {
	return &BudgetService{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		budgetRepo:   budgetRepo,
		fareService:  fareService,
		aiClient:     aiClient,
		prompts:      prompts,
	}
}

func (s *BudgetService) EstimateForSchedule(ctx context.Context, scheduleID string) (*response_models.BudgetBreakdown, error) {
	if _, err := uuid.Parse(scheduleID); err != nil {
		return nil, utils.ErrInvalidInput
	}
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	return s.EstimateBudget(ctx, schedule)
}

func (s *BudgetService) EstimateBudget(ctx context.Context, schedule *db_models.Schedule) (*response_models.BudgetBreakdown, error) {
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}

	var plan response_models.PlanResponse
	if err := json.Unmarshal([]byte(schedule.PlanJSON), &plan); err != nil {
		return nil, utils.ErrInvalidInput
	}

	people := schedule.PeopleCount
	if people < 1 {
		people = 1
	}

	places, err := s.resolvePlaces(ctx, &plan)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	foodCost := s.foodCost(&plan, places, people)
	entryFees := s.entryFees(ctx, &plan, places, people)
	transportCost := s.transportCost(ctx, &plan, people)
	accommodationCost := s.accommodationCost(&plan, places, people)

	total := foodCost + entryFees + transportCost + accommodationCost
	comment := s.budgetComment(ctx, total, schedule, len(plan.Plans), people)

	breakdown := &response_models.BudgetBreakdown{
		FoodCost:          foodCost,
		EntryFees:         entryFees,
		TransportCost:     transportCost,
		AccommodationCost: accommodationCost,
		TotalBudget:       total,
		Comment:           comment,
	}

	record := &db_models.Budget{
		ScheduleID:        schedule.ID,
		FoodCost:          foodCost,
		EntryFees:         entryFees,
		TransportCost:     transportCost,
		AccommodationCost: accommodationCost,
		TotalBudget:       total,
		Comment:           comment,
	}
	if _, err := s.budgetRepo.Create(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return breakdown, nil
}

func (s *BudgetService) GetBudget(ctx context.Context, scheduleID string) (*response_models.BudgetBreakdown, error) {
	parsed, err := uuid.Parse(scheduleID)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	budget, err := s.budgetRepo.GetByScheduleID(ctx, parsed)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if budget == nil {
		return nil, utils.ErrBudgetNotFound
	}
	return &response_models.BudgetBreakdown{
		FoodCost:          budget.FoodCost,
		EntryFees:         budget.EntryFees,
		TransportCost:     budget.TransportCost,
		AccommodationCost: budget.AccommodationCost,
		TotalBudget:       budget.TotalBudget,
		Comment:           budget.Comment,
	}, nil
}

// resolvePlaces looks up every distinct placeId in the plan once.
func (s *BudgetService) resolvePlaces(ctx context.Context, plan *response_models.PlanResponse) (map[string]*db_models.Place, error) {
	places := make(map[string]*db_models.Place)
	for _, day := range plan.Plans {
		for _, item := range day.Schedule {
			if item.PlaceID == "" {
				continue
			}
			if _, ok := places[item.PlaceID]; ok {
				continue
			}
			place, err := s.catalogRepo.FindPlaceByID(ctx, item.PlaceID)
			if err != nil {
				return nil, err
			}
			if place != nil {
				places[item.PlaceID] = place
			}
		}
	}
	return places, nil
}

func (s *BudgetService) foodCost(plan *response_models.PlanResponse, places map[string]*db_models.Place, people int) int {
	total := 0
	for _, day := range plan.Plans {
		for _, item := range day.Schedule {
			place := places[item.PlaceID]
			if place == nil || place.Type != db_models.PlaceTypeMeal {
				continue
			}
			tier := 2 // assume mid-range when the catalog has no tier
			if place.PriceLevel != nil {
				tier = *place.PriceLevel
			}
			total += priceTierWon[tier] * people
		}
	}
	return total
}

var firstIntegerPattern = regexp.MustCompile(`\d+`)

// entryFees sums attraction costs. Known price tiers use the tier table;
// unknown ones are estimated by the model concurrently. A failed or
// non-numeric estimate counts as free rather than failing the whole budget.
func (s *BudgetService) entryFees(ctx context.Context, plan *response_models.PlanResponse, places map[string]*db_models.Place, people int) int {
	total := 0
	var unknown []*db_models.Place

	for _, day := range plan.Plans {
		for _, item := range day.Schedule {
			place := places[item.PlaceID]
			if place == nil || place.Type != db_models.PlaceTypeSights {
				continue
			}
			if place.PriceLevel != nil {
				total += priceTierWon[*place.PriceLevel] * people
				continue
			}
			unknown = append(unknown, place)
		}
	}

	if len(unknown) == 0 {
		return total
	}

	var mu sync.Mutex
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(5)

	for _, place := range unknown {
		place := place
		group.Go(func() error {
			fee := s.estimateEntryFee(groupCtx, place.Name)
			mu.Lock()
			total += fee * people
			mu.Unlock()
			return nil
		})
	}
	_ = group.Wait() // workers never return errors; failures become zero fees

	return total
}

func (s *BudgetService) estimateEntryFee(ctx context.Context, placeName string) int {
	reply, err := s.aiClient.Complete(ctx, "You estimate entry fees for travel destinations.", s.prompts.BuildEntryFeePrompt(placeName), 16, 0.3)
	if err != nil {
		log.Printf("budget: entry fee estimate failed for %q: %v", placeName, err)
		return 0
	}
	match := firstIntegerPattern.FindString(reply)
	if match == "" {
		return 0
	}
	fee, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return fee
}

type fareLeg struct {
	fromLat, fromLng float64
	toLat, toLng     float64
	distanceKm       float64
}

// transportCost sums fares over consecutive coordinated items, including the
// transition from one day's last stop to the next day's first. Legs under the
// walkable threshold cost nothing.
func (s *BudgetService) transportCost(ctx context.Context, plan *response_models.PlanResponse, people int) int {
	var legs []fareLeg
	var prev *response_models.ScheduleItem
	for _, day := range plan.Plans {
		for i := range day.Schedule {
			item := &day.Schedule[i]
			if item.Latitude == nil || item.Longitude == nil {
				continue
			}
			if prev != nil {
				distance := haversineKm(*prev.Latitude, *prev.Longitude, *item.Latitude, *item.Longitude)
				if distance >= minFareDistanceKm {
					legs = append(legs, fareLeg{
						fromLat:    *prev.Latitude,
						fromLng:    *prev.Longitude,
						toLat:      *item.Latitude,
						toLng:      *item.Longitude,
						distanceKm: distance,
					})
				}
			}
			prev = item
		}
	}

	if len(legs) == 0 {
		return 0
	}

	fares := make([]int, len(legs))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(5)

	for i, leg := range legs {
		i, leg := i, leg
		group.Go(func() error {
			fare, err := s.fareService.Fare(groupCtx, leg.fromLat, leg.fromLng, leg.toLat, leg.toLng)
			if err != nil {
				if !errors.Is(err, utils.ErrFareUnavailable) {
					log.Printf("budget: fare lookup error: %v", err)
				}
				fare = fallbackFare(leg.distanceKm)
			}
			fares[i] = fare
			return nil
		})
	}
	_ = group.Wait()

	total := 0
	for _, fare := range fares {
		total += fare * people
	}
	return total
}

func fallbackFare(distanceKm float64) int {
	switch {
	case distanceKm < 5:
		return shortLegFare
	case distanceKm < 15:
		return mediumLegFare
	default:
		return longLegFare
	}
}

// accommodationCost charges one night per day except the last. Parties larger
// than two pay a 30% surcharge on the nightly price per extra guest.
func (s *BudgetService) accommodationCost(plan *response_models.PlanResponse, places map[string]*db_models.Place, people int) int {
	total := 0
	for i, day := range plan.Plans {
		if i == len(plan.Plans)-1 {
			break
		}
		for _, item := range day.Schedule {
			place := places[item.PlaceID]
			if place == nil || place.Type != db_models.PlaceTypeAccommodation {
				continue
			}
			nightly := float64(place.NightlyPrice)
			if people > 2 {
				nightly *= 1 + extraGuestSurcharge*float64(people-2)
			}
			total += int(nightly)
			break // one night per day
		}
	}
	return total
}

func (s *BudgetService) budgetComment(ctx context.Context, total int, schedule *db_models.Schedule, days, people int) string {
	regions := []string{schedule.EndCity}
	if schedule.StartCity != "" && !strings.EqualFold(schedule.StartCity, schedule.EndCity) {
		regions = append([]string{schedule.StartCity}, regions...)
	}

	reply, err := s.aiClient.Complete(ctx, "You are a friendly travel budget advisor.",
		s.prompts.BuildBudgetCommentPrompt(total, regions, days, people), 160, 0.7)
	if err != nil || strings.TrimSpace(reply) == "" {
		log.Printf("budget: comment generation failed: %v", err)
		return budgetCommentFallback
	}
	return strings.TrimSpace(reply)
}

// haversineKm is the great-circle distance between two coordinates.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	const earthRadiusKm = 6371.0

	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
