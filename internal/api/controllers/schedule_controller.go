package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"moodtrip/internal/models/request_models"
	"moodtrip/internal/services"
	"moodtrip/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// authenticatedUserID returns the caller's id when the optional auth
// middleware resolved one, nil for anonymous requests.
func authenticatedUserID(c *gin.Context) *uuid.UUID {
	raw, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	s, ok := raw.(string)
	if !ok {
		return nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil
	}
	return &id
}

// Generate godoc
// @Summary Generate an AI travel schedule
// @Description Build a personalized itinerary from the catalog using the configured AI provider
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.ScheduleCreateRequest true "Trip parameters"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /ai/schedules [post]
func (s *ScheduleController) Generate(c *gin.Context) {
	var req request_models.ScheduleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := s.scheduleService.GenerateSchedule(c.Request.Context(), authenticatedUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule generated successfully")
}

// Get godoc
// @Summary Get a schedule by id
// @Tags Schedules
// @Produce json
// @Param scheduleId path string true "Schedule id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedules/{scheduleId} [get]
func (s *ScheduleController) Get(c *gin.Context) {
	detail, err := s.scheduleService.GetSchedule(c.Request.Context(), c.Param("scheduleId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule fetched successfully")
}

// List godoc
// @Summary List the caller's schedules
// @Tags Schedules
// @Produce json
// @Param page query int false "Page number"
// @Param pageSize query int false "Page size"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /schedules [get]
func (s *ScheduleController) List(c *gin.Context) {
	userID, ok := c.Get("user_id")
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "10"))

	summaries, err := s.scheduleService.ListSchedules(c.Request.Context(), userID.(string), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summaries, "Schedules fetched successfully")
}

// Update godoc
// @Summary Update a schedule
// @Tags Schedules
// @Accept json
// @Produce json
// @Param scheduleId path string true "Schedule id"
// @Param request body request_models.ScheduleUpdateRequest true "Fields to update"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedules/{scheduleId} [put]
func (s *ScheduleController) Update(c *gin.Context) {
	var req request_models.ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	detail, err := s.scheduleService.UpdateSchedule(c.Request.Context(), c.Param("scheduleId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, detail, "Schedule updated successfully")
}

// Delete godoc
// @Summary Delete a schedule
// @Tags Schedules
// @Produce json
// @Param scheduleId path string true "Schedule id"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /schedules/{scheduleId} [delete]
func (s *ScheduleController) Delete(c *gin.Context) {
	if err := s.scheduleService.DeleteSchedule(c.Request.Context(), c.Param("scheduleId")); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule deleted successfully")
}
