package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// WorkoutHandler holds the tracker service dependency.
type WorkoutHandler struct {
	trackerService service.TrackerService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(trackerService service.TrackerService) *WorkoutHandler {
	return &WorkoutHandler{trackerService: trackerService}
}

// --- DTOs ---

// CreateWorkoutRequest carries the raw form values. Calories stay text so the
// service owns numeric validation.
type CreateWorkoutRequest struct {
	Name     string `json:"name" binding:"required"`
	Calories string `json:"calories" binding:"required"`
}

// WorkoutListResponse bundles the list with its aggregate.
type WorkoutListResponse struct {
	Workouts []domain.Workout       `json:"workouts"`
	Summary  service.WorkoutSummary `json:"summary"`
}

// --- Handler Methods ---

// ListWorkouts godoc
// @Summary List today's workouts
// @Tags Workouts
// @Produce json
// @Success 200 {object} WorkoutListResponse
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	workouts, err := h.trackerService.GetWorkouts(c.Request.Context())
	if err != nil {
		respondServiceError(c, "retrieve workouts", err)
		return
	}
	c.JSON(http.StatusOK, WorkoutListResponse{
		Workouts: workouts,
		Summary:  service.CompletionSummary(workouts),
	})
}

// CreateWorkout godoc
// @Summary Add a workout
// @Tags Workouts
// @Accept json
// @Produce json
// @Param workout body CreateWorkoutRequest true "Workout name and calories"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Validation error"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	workout, err := h.trackerService.AddWorkout(c.Request.Context(), req.Name, req.Calories)
	if err != nil {
		respondServiceError(c, "create workout", err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ToggleWorkout godoc
// @Summary Flip the completed flag of a workout
// @Tags Workouts
// @Produce json
// @Param workoutId path string true "Workout ID"
// @Success 200 {object} domain.Workout
// @Failure 404 {object} gin.H "Workout not found"
// @Router /workouts/{workoutId}/toggle [patch]
func (h *WorkoutHandler) ToggleWorkout(c *gin.Context) {
	workout, err := h.trackerService.ToggleWorkoutCompleted(c.Request.Context(), c.Param("workoutId"))
	if err != nil {
		respondServiceError(c, "toggle workout", err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a workout (idempotent)
// @Tags Workouts
// @Param workoutId path string true "Workout ID"
// @Success 204
// @Router /workouts/{workoutId} [delete]
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	if err := h.trackerService.DeleteWorkout(c.Request.Context(), c.Param("workoutId")); err != nil {
		respondServiceError(c, "delete workout", err)
		return
	}
	c.Status(http.StatusNoContent)
}
