package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/google/uuid"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

const (
	sampleAttractionLimit = 20
	sampleMealLimit       = 20
	sampleLodgingLimit    = 10

	generationMaxTokens   = 4096
	generationTemperature = 0.7
)

// ScheduleService orchestrates the full generation pipeline: catalog sampling,
// prompt construction, model call, extraction, reconciliation and persistence.
// Nothing is persisted when any stage fails.
type ScheduleServiceInterface interface {
	GenerateSchedule(ctx context.Context, userID *uuid.UUID, req request_models.ScheduleCreateRequest) (*response_models.ScheduleDetail, error)
	GetSchedule(ctx context.Context, id string) (*response_models.ScheduleDetail, error)
	ListSchedules(ctx context.Context, userID string, page, pageSize int) ([]response_models.ScheduleSummary, error)
	UpdateSchedule(ctx context.Context, id string, req request_models.ScheduleUpdateRequest) (*response_models.ScheduleDetail, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type ScheduleService struct {
	scheduleRepo repositories.ScheduleRepository
	catalogRepo  repositories.CatalogRepository
	aiClient     utils.CompletionClientInterface
	prompts      PromptServiceInterface
	extractor    PlanExtractorInterface
	reconciler   ReconcileServiceInterface
}

func NewScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	catalogRepo repositories.CatalogRepository,
	aiClient utils.CompletionClientInterface,
	prompts PromptServiceInterface,
	extractor PlanExtractorInterface,
	reconciler ReconcileServiceInterface,
) ScheduleServiceInterface {
	return &ScheduleService{
		scheduleRepo: scheduleRepo,
		catalogRepo:  catalogRepo,
		aiClient:     aiClient,
		prompts:      prompts,
		extractor:    extractor,
		reconciler:   reconciler,
	}
}

func (s *ScheduleService) GenerateSchedule(ctx context.Context, userID *uuid.UUID, req request_models.ScheduleCreateRequest) (*response_models.ScheduleDetail, error) {
	dayCount, err := tripDayCount(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	sample, err := s.sampleCatalog(ctx, req.EndCity)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if sample.Empty() {
		log.Printf("schedule: no catalog entries for region %q, generation will fall back to a placeholder plan", req.EndCity)
	}

	prompt := s.prompts.BuildSchedulePrompt(req, sample, dayCount)
	reply, err := s.aiClient.Complete(ctx, scheduleSystemPrompt, prompt, generationMaxTokens, generationTemperature)
	if err != nil {
		log.Printf("schedule: model call failed: %v", err)
		return nil, utils.ErrGenerationFailed
	}

	plan, err := s.extractor.ExtractPlan(reply)
	if err != nil {
		return nil, err
	}

	plan, err = s.reconciler.Reconcile(ctx, plan)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	planJSON, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}

	people := req.PeopleCount
	if people < 1 {
		people = 1
	}

	schedule := &db_models.Schedule{
		UserID:      userID,
		StartCity:   req.StartCity,
		EndCity:     req.EndCity,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Emotions:    req.Emotions,
		Companions:  req.Companions,
		PeopleCount: people,
		PlanJSON:    string(planJSON),
	}
	if _, err := s.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return scheduleToDetail(schedule, plan), nil
}

func (s *ScheduleService) sampleCatalog(ctx context.Context, region string) (CatalogSample, error) {
	attractions, err := s.catalogRepo.QueryDestinations(ctx, region, sampleAttractionLimit)
	if err != nil {
		return CatalogSample{}, err
	}
	meals, err := s.catalogRepo.QueryMeals(ctx, region, sampleMealLimit)
	if err != nil {
		return CatalogSample{}, err
	}
	lodgings, err := s.catalogRepo.QueryAccommodations(ctx, region, sampleLodgingLimit)
	if err != nil {
		return CatalogSample{}, err
	}
	return CatalogSample{Attractions: attractions, Meals: meals, Lodgings: lodgings}, nil
}

func (s *ScheduleService) GetSchedule(ctx context.Context, id string) (*response_models.ScheduleDetail, error) {
	schedule, err := s.fetchSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	var plan response_models.PlanResponse
	if err := json.Unmarshal([]byte(schedule.PlanJSON), &plan); err != nil {
		log.Printf("schedule: stored plan for %s is unreadable: %v", id, err)
	}
	return scheduleToDetail(schedule, &plan), nil
}

func (s *ScheduleService) ListSchedules(ctx context.Context, userID string, page, pageSize int) ([]response_models.ScheduleSummary, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 10
	}

	schedules, err := s.scheduleRepo.ListByUser(ctx, userID, page, pageSize)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	summaries := make([]response_models.ScheduleSummary, 0, len(schedules))
	for i := range schedules {
		summaries = append(summaries, scheduleToSummary(&schedules[i]))
	}
	return summaries, nil
}

func (s *ScheduleService) UpdateSchedule(ctx context.Context, id string, req request_models.ScheduleUpdateRequest) (*response_models.ScheduleDetail, error) {
	schedule, err := s.fetchSchedule(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.StartCity != nil {
		schedule.StartCity = *req.StartCity
	}
	if req.EndCity != nil {
		schedule.EndCity = *req.EndCity
	}
	if req.StartDate != nil {
		schedule.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		schedule.EndDate = *req.EndDate
	}
	if _, err := tripDayCount(schedule.StartDate, schedule.EndDate); err != nil {
		return nil, err
	}
	if req.Emotions != nil {
		schedule.Emotions = req.Emotions
	}
	if req.Companions != nil {
		schedule.Companions = req.Companions
	}
	if req.Plan != nil {
		planJSON, err := json.Marshal(req.Plan)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		schedule.PlanJSON = string(planJSON)
	}

	if err := s.scheduleRepo.Update(ctx, schedule); err != nil {
		return nil, utils.ErrDatabaseError
	}

	var plan response_models.PlanResponse
	_ = json.Unmarshal([]byte(schedule.PlanJSON), &plan)
	return scheduleToDetail(schedule, &plan), nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	if _, err := s.fetchSchedule(ctx, id); err != nil {
		return err
	}
	if err := s.scheduleRepo.Delete(ctx, id); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ScheduleService) fetchSchedule(ctx context.Context, id string) (*db_models.Schedule, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, utils.ErrInvalidInput
	}
	schedule, err := s.scheduleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if schedule == nil {
		return nil, utils.ErrScheduleNotFound
	}
	return schedule, nil
}

func scheduleToSummary(schedule *db_models.Schedule) response_models.ScheduleSummary {
	return response_models.ScheduleSummary{
		ID:          schedule.ID.String(),
		StartCity:   schedule.StartCity,
		EndCity:     schedule.EndCity,
		StartDate:   schedule.StartDate,
		EndDate:     schedule.EndDate,
		Emotions:    schedule.Emotions,
		Companions:  schedule.Companions,
		PeopleCount: schedule.PeopleCount,
	}
}

func scheduleToDetail(schedule *db_models.Schedule, plan *response_models.PlanResponse) *response_models.ScheduleDetail {
	return &response_models.ScheduleDetail{
		ScheduleSummary: scheduleToSummary(schedule),
		Plan:            *plan,
	}
}
