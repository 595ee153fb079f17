package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"moodtrip/internal/models/db_models"
	"moodtrip/internal/models/request_models"
	"moodtrip/internal/models/response_models"
	"moodtrip/internal/repositories"
	"moodtrip/pkg/utils"
)

// QuickBudgetService produces a rough trip estimate before any schedule
// exists. The model returns average per-person per-day costs which are scaled
// by party size and trip length.
type QuickBudgetServiceInterface interface {
	Estimate(ctx context.Context, req request_models.QuickBudgetRequest) (*response_models.BudgetBreakdown, error)
}

type QuickBudgetService struct {
	budgetRepo repositories.BudgetRepository
	aiClient   utils.CompletionClientInterface
	prompts    PromptServiceInterface
}

func NewQuickBudgetService(
	budgetRepo repositories.BudgetRepository,
	aiClient utils.CompletionClientInterface,
	prompts PromptServiceInterface,
) QuickBudgetServiceInterface {
	return &QuickBudgetService{
		budgetRepo: budgetRepo,
		aiClient:   aiClient,
		prompts:    prompts,
	}
}

type quickEstimate struct {
	Food      int `json:"food"`
	Entry     int `json:"entry"`
	Transport int `json:"transport"`
}

func (s *QuickBudgetService) Estimate(ctx context.Context, req request_models.QuickBudgetRequest) (*response_models.BudgetBreakdown, error) {
	days, err := tripDayCount(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	people := req.PeopleCount
	if people < 1 {
		people = 1
	}

	reply, err := s.aiClient.Complete(ctx, "You estimate travel costs in Korean won.",
		s.prompts.BuildQuickBudgetPrompt(req.StartCity, req.EndCity, days, people), 64, 0.3)
	if err != nil {
		return nil, utils.ErrGenerationFailed
	}

	candidate, err := extractJSONCandidate(reply)
	if err != nil {
		return nil, err
	}
	var estimate quickEstimate
	if err := json.Unmarshal([]byte(stripTrailingCommas(candidate)), &estimate); err != nil {
		return nil, utils.NewExtractionError(reply, err)
	}

	scale := people * days
	breakdown := &response_models.BudgetBreakdown{
		FoodCost:      clampNonNegative(estimate.Food) * scale,
		EntryFees:     clampNonNegative(estimate.Entry) * scale,
		TransportCost: clampNonNegative(estimate.Transport) * scale,
	}
	breakdown.TotalBudget = breakdown.FoodCost + breakdown.EntryFees + breakdown.TransportCost
	breakdown.Comment = s.comment(ctx, breakdown.TotalBudget, req, days, people)

	record := &db_models.QuickBudget{
		StartCity:     req.StartCity,
		EndCity:       req.EndCity,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		PeopleCount:   people,
		FoodCost:      breakdown.FoodCost,
		EntryFees:     breakdown.EntryFees,
		TransportCost: breakdown.TransportCost,
		TotalBudget:   breakdown.TotalBudget,
		Comment:       breakdown.Comment,
	}
	if _, err := s.budgetRepo.CreateQuickBudget(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return breakdown, nil
}

func (s *QuickBudgetService) comment(ctx context.Context, total int, req request_models.QuickBudgetRequest, days, people int) string {
	reply, err := s.aiClient.Complete(ctx, "You are a friendly travel budget advisor.",
		s.prompts.BuildBudgetCommentPrompt(total, []string{req.StartCity, req.EndCity}, days, people), 160, 0.7)
	if err != nil || strings.TrimSpace(reply) == "" {
		log.Printf("quick budget: comment generation failed: %v", err)
		return budgetCommentFallback
	}
	return strings.TrimSpace(reply)
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

// tripDayCount is inclusive of both endpoints: a same-day trip is 1 day.
func tripDayCount(startDate, endDate string) (int, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return 0, utils.ErrInvalidInput
	}
	if end.Before(start) {
		return 0, utils.ErrInvalidDateRange
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}
