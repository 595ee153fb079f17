package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/repositories"
)

// Shared hand-rolled fakes for the service tests.

type fakeCatalogRepo struct {
	places       map[string]*db_models.Place
	attractions  []db_models.Place
	meals        []db_models.Place
	lodgings     []db_models.Place
	destinations map[string]*db_models.Destination
	mealDetails  map[string]*db_models.Meal
	recommended  []db_models.Meal
	err          error
}

func newFakeCatalogRepo(places ...*db_models.Place) *fakeCatalogRepo {
	repo := &fakeCatalogRepo{
		places:       map[string]*db_models.Place{},
		destinations: map[string]*db_models.Destination{},
		mealDetails:  map[string]*db_models.Meal{},
	}
	for _, place := range places {
		repo.places[place.PlaceID] = place
	}
	return repo
}

func (f *fakeCatalogRepo) FindPlaceByID(ctx context.Context, placeID string) (*db_models.Place, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.places[placeID], nil
}

func (f *fakeCatalogRepo) QueryDestinations(ctx context.Context, region string, limit int) ([]db_models.Place, error) {
	return f.attractions, f.err
}

func (f *fakeCatalogRepo) QueryMeals(ctx context.Context, region string, limit int) ([]db_models.Place, error) {
	return f.meals, f.err
}

func (f *fakeCatalogRepo) QueryAccommodations(ctx context.Context, region string, limit int) ([]db_models.Place, error) {
	return f.lodgings, f.err
}

func (f *fakeCatalogRepo) GetDestinationByPlaceID(ctx context.Context, placeID string) (*db_models.Destination, error) {
	return f.destinations[placeID], f.err
}

func (f *fakeCatalogRepo) GetMealByPlaceID(ctx context.Context, placeID string) (*db_models.Meal, error) {
	return f.mealDetails[placeID], f.err
}

func (f *fakeCatalogRepo) RecommendMeals(ctx context.Context, foodTypes []string, region string, limit int) ([]db_models.Meal, error) {
	return f.recommended, f.err
}

type fakeScheduleRepo struct {
	schedules map[string]*db_models.Schedule
	created   []*db_models.Schedule
	topCities []repositories.CityCount
	err       error
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{schedules: map[string]*db_models.Schedule{}}
}

func (f *fakeScheduleRepo) Create(ctx context.Context, schedule *db_models.Schedule) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	if schedule.ID == uuid.Nil {
		schedule.ID = uuid.New()
	}
	f.created = append(f.created, schedule)
	f.schedules[schedule.ID.String()] = schedule
	return schedule.ID, nil
}

func (f *fakeScheduleRepo) GetByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.schedules[id], nil
}

func (f *fakeScheduleRepo) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Schedule, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []db_models.Schedule
	for _, schedule := range f.created {
		if schedule.UserID != nil && schedule.UserID.String() == userID {
			out = append(out, *schedule)
		}
	}
	return out, nil
}

func (f *fakeScheduleRepo) Update(ctx context.Context, schedule *db_models.Schedule) error {
	if f.err != nil {
		return f.err
	}
	f.schedules[schedule.ID.String()] = schedule
	return nil
}

func (f *fakeScheduleRepo) Delete(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.schedules, id)
	return nil
}

func (f *fakeScheduleRepo) TopEndCities(ctx context.Context, limit int) ([]repositories.CityCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	if limit < len(f.topCities) {
		return f.topCities[:limit], nil
	}
	return f.topCities, nil
}

type fakeBudgetRepo struct {
	budgets      []*db_models.Budget
	quickBudgets []*db_models.QuickBudget
	err          error
}

func (f *fakeBudgetRepo) Create(ctx context.Context, budget *db_models.Budget) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	budget.ID = uuid.New()
	f.budgets = append(f.budgets, budget)
	return budget.ID, nil
}

func (f *fakeBudgetRepo) GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) (*db_models.Budget, error) {
	if f.err != nil {
		return nil, f.err
	}
	for i := len(f.budgets) - 1; i >= 0; i-- {
		if f.budgets[i].ScheduleID == scheduleID {
			return f.budgets[i], nil
		}
	}
	return nil, nil
}

func (f *fakeBudgetRepo) CreateQuickBudget(ctx context.Context, quick *db_models.QuickBudget) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	quick.ID = uuid.New()
	f.quickBudgets = append(f.quickBudgets, quick)
	return quick.ID, nil
}

// fakeCompletionClient replays canned replies per user-prompt substring, with
// a default reply when nothing matches.
type fakeCompletionClient struct {
	replies map[string]string
	reply   string
	err     error
	calls   []string
}

func (f *fakeCompletionClient) Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int, temperature float32) (string, error) {
	f.calls = append(f.calls, userPrompt)
	if f.err != nil {
		return "", f.err
	}
	for needle, reply := range f.replies {
		if needle != "" && strings.Contains(userPrompt, needle) {
			return reply, nil
		}
	}
	return f.reply, nil
}

type fakeFareService struct {
	fare  int
	err   error
	calls int
}

func (f *fakeFareService) Fare(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.fare, nil
}

var errFakeDown = errors.New("backend down")
