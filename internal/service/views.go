package service

import "alcyxob/fitness-tracker/internal/domain"

// The functions below are pure projections of the current state. They never
// mutate their inputs and can be recomputed after every mutation.

// WorkoutSummary aggregates the workout list.
type WorkoutSummary struct {
	TotalCalories  int `json:"totalCalories"`
	CompletedCount int `json:"completedCount"`
	TotalCount     int `json:"totalCount"`
}

// GoalOverview is everything the goals screen shows for one mode.
type GoalOverview struct {
	Mode     domain.GoalMode           `json:"mode"`
	Label    string                    `json:"label"`
	Target   domain.GoalTarget         `json:"target"`
	DietPlan domain.DietPlan           `json:"dietPlan"`
	Tips     []string                  `json:"tips"`
	Progress []domain.CategoryProgress `json:"progress"`
}

// Dashboard is the header summary across all sections.
type Dashboard struct {
	Mode        domain.GoalMode `json:"mode"`
	Workouts    WorkoutSummary  `json:"workouts"`
	FriendCount int             `json:"friendCount"`
}

func ActiveDietPlan(mode domain.GoalMode) domain.DietPlan {
	return domain.DietPlanFor(mode)
}

// ActiveProgressSample is the same list for every mode.
func ActiveProgressSample() []domain.CategoryProgress {
	return domain.CategoryProgressSample()
}

func ActiveGoalTarget(mode domain.GoalMode) domain.GoalTarget {
	return domain.GoalTargetFor(mode)
}

func ActiveTips(mode domain.GoalMode) []string {
	return domain.TipsFor(mode)
}

// CompletionSummary sums calories over all workouts, completed or not.
func CompletionSummary(workouts []domain.Workout) WorkoutSummary {
	summary := WorkoutSummary{TotalCount: len(workouts)}
	for _, w := range workouts {
		summary.TotalCalories += w.Calories
		if w.Completed {
			summary.CompletedCount++
		}
	}
	return summary
}

func FriendCount(friends []domain.Friend) int {
	return len(friends)
}

func BuildGoalOverview(mode domain.GoalMode) GoalOverview {
	return GoalOverview{
		Mode:     mode,
		Label:    mode.Label(),
		Target:   ActiveGoalTarget(mode),
		DietPlan: ActiveDietPlan(mode),
		Tips:     ActiveTips(mode),
		Progress: ActiveProgressSample(),
	}
}

func BuildDashboard(mode domain.GoalMode, workouts []domain.Workout, friends []domain.Friend) Dashboard {
	return Dashboard{
		Mode:        mode,
		Workouts:    CompletionSummary(workouts),
		FriendCount: FriendCount(friends),
	}
}
