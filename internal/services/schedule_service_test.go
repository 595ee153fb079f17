package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/pkg/utils"
)

func newScheduleService(scheduleRepo *fakeScheduleRepo, catalog *fakeCatalogRepo, ai *fakeCompletionClient) ScheduleServiceInterface {
	prompts := NewPromptService()
	return NewScheduleService(scheduleRepo, catalog, ai, prompts, NewPlanExtractor(), NewReconcileService(catalog))
}

func TestGenerateScheduleHappyPath(t *testing.T) {
	catalog := newFakeCatalogRepo(
		&db_models.Place{PlaceID: "d1", Name: "Bulguksa", Type: db_models.PlaceTypeSights, Latitude: floatPtr(35.79), Longitude: floatPtr(129.33)},
		&db_models.Place{PlaceID: "m1", Name: "Ssambap Alley", Type: db_models.PlaceTypeMeal},
	)
	catalog.attractions = []db_models.Place{*catalog.places["d1"]}
	catalog.meals = []db_models.Place{*catalog.places["m1"]}

	ai := &fakeCompletionClient{reply: "```json\n" + `{
  "aiEmpathy": "A slow trip to settle your mind.",
  "tags": ["healing"],
  "plans": [{"day": 1, "schedule": [
    {"time": "09:00", "place": "Bulguksa Temple", "placeId": "d1", "aiComment": "quiet morning"},
    {"time": "12:00", "place": "Ssambap", "placeId": "m1"}
  ]}]
}` + "\n```"}

	scheduleRepo := newFakeScheduleRepo()
	service := newScheduleService(scheduleRepo, catalog, ai)

	userID := uuid.New()
	detail, err := service.GenerateSchedule(context.Background(), &userID, request_models.ScheduleCreateRequest{
		StartCity: "Seoul",
		EndCity:   "Gyeongju",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
		Emotions:  []string{"sad"},
	})
	require.NoError(t, err)

	assert.Equal(t, "A slow trip to settle your mind.", detail.Plan.AiEmpathy)
	require.Len(t, detail.Plan.Plans, 1)
	require.Len(t, detail.Plan.Plans[0].Schedule, 2)

	// Reconciliation replaced the hallucinated name with the catalog one.
	assert.Equal(t, "Bulguksa", detail.Plan.Plans[0].Schedule[0].Place)
	assert.Equal(t, db_models.PlaceTypeSights, detail.Plan.Plans[0].Schedule[0].PlaceType)

	// Persisted, attached to the caller, with the reconciled plan as the blob.
	require.Len(t, scheduleRepo.created, 1)
	stored := scheduleRepo.created[0]
	require.NotNil(t, stored.UserID)
	assert.Equal(t, userID, *stored.UserID)

	var persisted response_models.PlanResponse
	require.NoError(t, json.Unmarshal([]byte(stored.PlanJSON), &persisted))
	assert.Equal(t, detail.Plan, persisted)
}

func TestGenerateScheduleAnonymous(t *testing.T) {
	catalog := newFakeCatalogRepo(&db_models.Place{PlaceID: "d1", Name: "Tower", Type: db_models.PlaceTypeSights})
	ai := &fakeCompletionClient{reply: `{"plans":[{"day":1,"schedule":[{"time":"09:00","place":"T","placeId":"d1"}]}]}`}
	scheduleRepo := newFakeScheduleRepo()
	service := newScheduleService(scheduleRepo, catalog, ai)

	_, err := service.GenerateSchedule(context.Background(), nil, request_models.ScheduleCreateRequest{
		StartCity: "A", EndCity: "B", StartDate: "2026-09-01", EndDate: "2026-09-02",
	})
	require.NoError(t, err)
	require.Len(t, scheduleRepo.created, 1)
	assert.Nil(t, scheduleRepo.created[0].UserID)
}

func TestGenerateScheduleInvalidDates(t *testing.T) {
	service := newScheduleService(newFakeScheduleRepo(), newFakeCatalogRepo(), &fakeCompletionClient{})

	_, err := service.GenerateSchedule(context.Background(), nil, request_models.ScheduleCreateRequest{
		StartCity: "A", EndCity: "B", StartDate: "2026-09-05", EndDate: "2026-09-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	_, err = service.GenerateSchedule(context.Background(), nil, request_models.ScheduleCreateRequest{
		StartCity: "A", EndCity: "B", StartDate: "September 1st", EndDate: "2026-09-01",
	})
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}

func TestGenerateScheduleNothingPersistedOnFailure(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()

	// Model down.
	service := newScheduleService(scheduleRepo, newFakeCatalogRepo(), &fakeCompletionClient{err: errFakeDown})
	_, err := service.GenerateSchedule(context.Background(), nil, request_models.ScheduleCreateRequest{
		StartCity: "A", EndCity: "B", StartDate: "2026-09-01", EndDate: "2026-09-02",
	})
	assert.ErrorIs(t, err, utils.ErrGenerationFailed)
	assert.Empty(t, scheduleRepo.created)

	// Model replies with prose instead of JSON.
	service = newScheduleService(scheduleRepo, newFakeCatalogRepo(), &fakeCompletionClient{reply: "sorry, no can do"})
	_, err = service.GenerateSchedule(context.Background(), nil, request_models.ScheduleCreateRequest{
		StartCity: "A", EndCity: "B", StartDate: "2026-09-01", EndDate: "2026-09-02",
	})
	assert.Error(t, err)
	assert.Empty(t, scheduleRepo.created)
}

func TestGenerateScheduleUnresolvablePlanGetsPlaceholder(t *testing.T) {
	// Catalog knows nothing the model mentions.
	ai := &fakeCompletionClient{reply: `{"plans":[{"day":1,"schedule":[{"time":"09:00","place":"X","placeId":"nope"}]}]}`}
	scheduleRepo := newFakeScheduleRepo()
	service := newScheduleService(scheduleRepo, newFakeCatalogRepo(), ai)

	detail, err := service.GenerateSchedule(context.Background(), nil, request_models.ScheduleCreateRequest{
		StartCity: "A", EndCity: "B", StartDate: "2026-09-01", EndDate: "2026-09-01",
	})
	require.NoError(t, err)
	require.Len(t, detail.Plan.Plans, 1)
	assert.Empty(t, detail.Plan.Plans[0].Schedule)
}

func TestScheduleCRUD(t *testing.T) {
	scheduleRepo := newFakeScheduleRepo()
	service := newScheduleService(scheduleRepo, newFakeCatalogRepo(), &fakeCompletionClient{})

	userID := uuid.New()
	schedule := &db_models.Schedule{
		UserID:      &userID,
		StartCity:   "Seoul",
		EndCity:     "Busan",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-03",
		Emotions:    pq.StringArray{"sad"},
		Companions:  pq.StringArray{"friend"},
		PeopleCount: 2,
		PlanJSON:    `{"aiEmpathy":"","tags":[],"plans":[]}`,
	}
	_, err := scheduleRepo.Create(context.Background(), schedule)
	require.NoError(t, err)
	id := schedule.ID.String()

	detail, err := service.GetSchedule(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Busan", detail.EndCity)
	assert.Equal(t, []string{"sad"}, detail.Emotions)

	newCity := "Jeju"
	detail, err = service.UpdateSchedule(context.Background(), id, request_models.ScheduleUpdateRequest{EndCity: &newCity})
	require.NoError(t, err)
	assert.Equal(t, "Jeju", detail.EndCity)

	badDate := "2020-01-01"
	_, err = service.UpdateSchedule(context.Background(), id, request_models.ScheduleUpdateRequest{EndDate: &badDate})
	assert.ErrorIs(t, err, utils.ErrInvalidDateRange)

	list, err := service.ListSchedules(context.Background(), userID.String(), 1, 10)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, service.DeleteSchedule(context.Background(), id))
	_, err = service.GetSchedule(context.Background(), id)
	assert.ErrorIs(t, err, utils.ErrScheduleNotFound)

	_, err = service.GetSchedule(context.Background(), "not-a-uuid")
	assert.ErrorIs(t, err, utils.ErrInvalidInput)
}
