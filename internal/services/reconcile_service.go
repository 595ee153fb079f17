package services

import (
	"context"
	"log"

	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
)

// ReconcileService validates a generated plan against the catalog. Items whose
// placeId is missing, unresolvable or already used are dropped; resolved items
// get the catalog's authoritative name, type and coordinates. A plan that
// loses every item is replaced by a single placeholder day so callers never
// see an empty itinerary.
type ReconcileServiceInterface interface {
	Reconcile(ctx context.Context, plan *response_models.PlanResponse) (*response_models.PlanResponse, error)
}

type ReconcileService struct {
	catalogRepo repositories.CatalogRepository
}

func NewReconcileService(catalogRepo repositories.CatalogRepository) ReconcileServiceInterface {
	return &ReconcileService{catalogRepo: catalogRepo}
}

func (s *ReconcileService) Reconcile(ctx context.Context, plan *response_models.PlanResponse) (*response_models.PlanResponse, error) {
	seen := make(map[string]bool)
	out := &response_models.PlanResponse{
		AiEmpathy: plan.AiEmpathy,
		Tags:      plan.Tags,
	}

	for _, day := range plan.Plans {
		var kept []response_models.ScheduleItem
		for _, item := range day.Schedule {
			if item.PlaceID == "" {
				log.Printf("reconcile: dropping item %q without placeId", item.Place)
				continue
			}
			if seen[item.PlaceID] {
				log.Printf("reconcile: dropping duplicate placeId %s", item.PlaceID)
				continue
			}

			place, err := s.catalogRepo.FindPlaceByID(ctx, item.PlaceID)
			if err != nil {
				return nil, err
			}
			if place == nil {
				log.Printf("reconcile: dropping unknown placeId %s (%q)", item.PlaceID, item.Place)
				continue
			}

			seen[item.PlaceID] = true
			item.Place = place.Name
			item.PlaceType = place.Type
			item.Latitude = place.Latitude
			item.Longitude = place.Longitude
			kept = append(kept, item)
		}

		if len(kept) == 0 {
			continue
		}
		out.Plans = append(out.Plans, response_models.DayPlan{
			Day:      day.Day,
			Schedule: kept,
		})
	}

	if len(out.Plans) == 0 {
		out.Plans = []response_models.DayPlan{placeholderDay()}
	}

	for i := range out.Plans {
		out.Plans[i].Day = i + 1
	}
	return out, nil
}

// placeholderDay is the stand-in used when reconciliation removed every
// generated item: one day with an empty schedule, so callers get a non-empty
// plan without any fabricated catalog references.
func placeholderDay() response_models.DayPlan {
	return response_models.DayPlan{
		Day:      1,
		Schedule: []response_models.ScheduleItem{},
	}
}
