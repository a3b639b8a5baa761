package api

import (
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds a gin engine with recovery and request logging, then
// registers all routes. A nil gatherer disables /metrics.
func NewRouter(trackerService service.TrackerService, m *metrics.Manager, gatherer prometheus.Gatherer) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(m))
	SetupRoutes(router, trackerService, gatherer)
	return router
}

func SetupRoutes(router *gin.Engine, trackerService service.TrackerService, gatherer prometheus.Gatherer) {
	workoutHandler := NewWorkoutHandler(trackerService)
	friendHandler := NewFriendHandler(trackerService)
	goalHandler := NewGoalHandler(trackerService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		workoutGroup := apiV1.Group("/workouts")
		{
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			// PATCH /api/v1/workouts/{workoutId}/toggle
			workoutGroup.PATCH("/:workoutId/toggle", workoutHandler.ToggleWorkout)
			workoutGroup.DELETE("/:workoutId", workoutHandler.DeleteWorkout)
		}

		friendGroup := apiV1.Group("/friends")
		{
			friendGroup.GET("", friendHandler.ListFriends)
			friendGroup.POST("", friendHandler.CreateFriend)
			friendGroup.DELETE("/:friendId", friendHandler.DeleteFriend)
		}

		goalGroup := apiV1.Group("/goals")
		{
			goalGroup.GET("", goalHandler.GetGoalOverview)
			goalGroup.PUT("/mode", goalHandler.SetGoalMode)
		}

		apiV1.GET("/summary", goalHandler.GetDashboard)
	}
}
