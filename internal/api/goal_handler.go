package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GoalHandler serves the goal overview and the aggregate dashboard.
type GoalHandler struct {
	trackerService service.TrackerService
}

func NewGoalHandler(trackerService service.TrackerService) *GoalHandler {
	return &GoalHandler{trackerService: trackerService}
}

type SetGoalModeRequest struct {
	Mode domain.GoalMode `json:"mode" binding:"required,oneof=loss gain"`
}

// GetGoalOverview godoc
// @Summary Goal target, diet plan, tips and progress for the active mode
// @Tags Goals
// @Produce json
// @Success 200 {object} service.GoalOverview
// @Router /goals [get]
func (h *GoalHandler) GetGoalOverview(c *gin.Context) {
	mode, err := h.trackerService.GetGoalMode(c.Request.Context())
	if err != nil {
		respondServiceError(c, "retrieve goal mode", err)
		return
	}
	c.JSON(http.StatusOK, service.BuildGoalOverview(mode))
}

// SetGoalMode godoc
// @Summary Switch between weight loss and weight gain
// @Tags Goals
// @Accept json
// @Produce json
// @Param mode body SetGoalModeRequest true "Goal mode"
// @Success 200 {object} service.GoalOverview
// @Failure 400 {object} gin.H "Unknown mode"
// @Router /goals/mode [put]
func (h *GoalHandler) SetGoalMode(c *gin.Context) {
	var req SetGoalModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.trackerService.SetGoalMode(c.Request.Context(), req.Mode); err != nil {
		respondServiceError(c, "set goal mode", err)
		return
	}
	c.JSON(http.StatusOK, service.BuildGoalOverview(req.Mode))
}

// GetDashboard godoc
// @Summary Totals across workouts and friends
// @Tags Goals
// @Produce json
// @Success 200 {object} service.Dashboard
// @Router /summary [get]
func (h *GoalHandler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()
	mode, err := h.trackerService.GetGoalMode(ctx)
	if err != nil {
		respondServiceError(c, "retrieve goal mode", err)
		return
	}
	workouts, err := h.trackerService.GetWorkouts(ctx)
	if err != nil {
		respondServiceError(c, "retrieve workouts", err)
		return
	}
	friends, err := h.trackerService.GetFriends(ctx)
	if err != nil {
		respondServiceError(c, "retrieve friends", err)
		return
	}
	c.JSON(http.StatusOK, service.BuildDashboard(mode, workouts, friends))
}
