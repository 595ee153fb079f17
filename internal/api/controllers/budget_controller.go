package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type BudgetController struct {
	budgetService      services.BudgetServiceInterface
	quickBudgetService services.QuickBudgetServiceInterface
}

func NewBudgetController(
	budgetService services.BudgetServiceInterface,
	quickBudgetService services.QuickBudgetServiceInterface,
) *BudgetController {
	return &BudgetController{
		budgetService:      budgetService,
		quickBudgetService: quickBudgetService,
	}
}

// Estimate godoc
// @Summary Estimate the budget for a schedule
// @Description Recompute a full cost breakdown from the schedule's reconciled plan
// @Tags Budgets
// @Produce json
// @Param scheduleId path string true "Schedule id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedules/{scheduleId}/budget [post]
func (b *BudgetController) Estimate(c *gin.Context) {
	breakdown, err := b.budgetService.EstimateForSchedule(c.Request.Context(), c.Param("scheduleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown.ToResponse(), "Budget estimated successfully")
}

// Get godoc
// @Summary Get the latest budget for a schedule
// @Tags Budgets
// @Produce json
// @Param scheduleId path string true "Schedule id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedules/{scheduleId}/budget [get]
func (b *BudgetController) Get(c *gin.Context) {
	breakdown, err := b.budgetService.GetBudget(c.Request.Context(), c.Param("scheduleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown.ToResponse(), "Budget fetched successfully")
}

// Quick godoc
// @Summary Quick trip budget estimate
// @Description Model-only estimate for trips that have no schedule yet
// @Tags Budgets
// @Accept json
// @Produce json
// @Param request body request_models.QuickBudgetRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /budgets/quick [post]
func (b *BudgetController) Quick(c *gin.Context) {
	var req request_models.QuickBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	breakdown, err := b.quickBudgetService.Estimate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, breakdown.ToResponse(), "Budget estimated successfully")
}
