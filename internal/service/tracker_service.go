package service

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/metrics"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// --- Error Definitions ---
var (
	ErrValidationFailed = errors.New("validation failed")
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrInvalidGoalMode  = errors.New("invalid goal mode")
)

// Operation names used for logging and the mutation metric.
const (
	OpAddWorkout    = "add_workout"
	OpToggleWorkout = "toggle_workout"
	OpDeleteWorkout = "delete_workout"
	OpAddFriend     = "add_friend"
	OpDeleteFriend  = "delete_friend"
	OpSetGoalMode   = "set_goal_mode"
)

// --- Service Interface ---
type TrackerService interface {
	// Read access
	GetWorkouts(ctx context.Context) ([]domain.Workout, error)
	GetFriends(ctx context.Context) ([]domain.Friend, error)
	GetGoalMode(ctx context.Context) (domain.GoalMode, error)

	// Workouts
	AddWorkout(ctx context.Context, name, caloriesText string) (*domain.Workout, error)
	ToggleWorkoutCompleted(ctx context.Context, workoutID string) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, workoutID string) error

	// Friends
	AddFriend(ctx context.Context, name string) (*domain.Friend, error)
	DeleteFriend(ctx context.Context, friendID string) error

	// Goals
	SetGoalMode(ctx context.Context, mode domain.GoalMode) error
}

// --- Service Implementation ---

// Clock returns the current time; "today" for new workouts is derived from it.
type Clock func() time.Time

// trackerService implements the TrackerService interface.
type trackerService struct {
	workoutRepo repository.WorkoutRepository
	friendRepo  repository.FriendRepository
	goalRepo    repository.GoalRepository
	metrics     *metrics.Manager
	now         Clock
}

// NewTrackerService creates a new instance of trackerService.
// A nil clock means time.Now.
func NewTrackerService(
	workoutRepo repository.WorkoutRepository,
	friendRepo repository.FriendRepository,
	goalRepo repository.GoalRepository,
	metricsManager *metrics.Manager,
	clock Clock,
) TrackerService {
	if metricsManager == nil {
		panic("metrics manager cannot be nil")
	}
	if clock == nil {
		clock = time.Now
	}
	s := &trackerService{
		workoutRepo: workoutRepo,
		friendRepo:  friendRepo,
		goalRepo:    goalRepo,
		metrics:     metricsManager,
		now:         clock,
	}
	s.refreshGauges(context.Background())
	return s
}

func (s *trackerService) GetWorkouts(ctx context.Context) ([]domain.Workout, error) {
	return s.workoutRepo.List(ctx)
}

func (s *trackerService) GetFriends(ctx context.Context) ([]domain.Friend, error) {
	return s.friendRepo.List(ctx)
}

func (s *trackerService) GetGoalMode(ctx context.Context) (domain.GoalMode, error) {
	return s.goalRepo.GetMode(ctx)
}

// AddWorkout validates raw form input and appends a new, not yet completed workout dated today.
func (s *trackerService) AddWorkout(ctx context.Context, name, caloriesText string) (*domain.Workout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, s.reject(OpAddWorkout, fmt.Errorf("%w: workout name is required", ErrValidationFailed))
	}
	calories, err := parseCalories(caloriesText)
	if err != nil {
		return nil, s.reject(OpAddWorkout, err)
	}

	workout, err := s.workoutRepo.Create(ctx, name, calories, domain.FormatDate(s.now()))
	if err != nil {
		s.metrics.ObserveMutation(OpAddWorkout, metrics.OutcomeFailed)
		return nil, fmt.Errorf("create workout: %w", err)
	}

	log.Debugf("workout added: id=%s name=%q calories=%d", workout.ID, workout.Name, workout.Calories)
	s.applied(ctx, OpAddWorkout)
	return workout, nil
}

// ToggleWorkoutCompleted flips the completed flag of an existing workout.
func (s *trackerService) ToggleWorkoutCompleted(ctx context.Context, workoutID string) (*domain.Workout, error) {
	workout, err := s.workoutRepo.ToggleCompleted(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, s.reject(OpToggleWorkout, fmt.Errorf("%w: %s", ErrWorkoutNotFound, workoutID))
		}
		s.metrics.ObserveMutation(OpToggleWorkout, metrics.OutcomeFailed)
		return nil, fmt.Errorf("toggle workout: %w", err)
	}

	log.Debugf("workout toggled: id=%s completed=%t", workout.ID, workout.Completed)
	s.applied(ctx, OpToggleWorkout)
	return workout, nil
}

// DeleteWorkout removes a workout. Deleting an unknown id is a no-op.
func (s *trackerService) DeleteWorkout(ctx context.Context, workoutID string) error {
	deleted, err := s.workoutRepo.Delete(ctx, workoutID)
	if err != nil {
		s.metrics.ObserveMutation(OpDeleteWorkout, metrics.OutcomeFailed)
		return fmt.Errorf("delete workout: %w", err)
	}
	if !deleted {
		log.Debugf("delete workout: id=%s not present, nothing to do", workoutID)
		s.metrics.ObserveMutation(OpDeleteWorkout, metrics.OutcomeNoop)
		return nil
	}

	log.Debugf("workout deleted: id=%s", workoutID)
	s.applied(ctx, OpDeleteWorkout)
	return nil
}

// AddFriend appends a new friend with no workouts and zero progress.
func (s *trackerService) AddFriend(ctx context.Context, name string) (*domain.Friend, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, s.reject(OpAddFriend, fmt.Errorf("%w: friend name is required", ErrValidationFailed))
	}

	friend, err := s.friendRepo.Create(ctx, name)
	if err != nil {
		s.metrics.ObserveMutation(OpAddFriend, metrics.OutcomeFailed)
		return nil, fmt.Errorf("create friend: %w", err)
	}

	log.Debugf("friend added: id=%s name=%q", friend.ID, friend.Name)
	s.applied(ctx, OpAddFriend)
	return friend, nil
}

// DeleteFriend removes a friend. Deleting an unknown id is a no-op.
func (s *trackerService) DeleteFriend(ctx context.Context, friendID string) error {
	deleted, err := s.friendRepo.Delete(ctx, friendID)
	if err != nil {
		s.metrics.ObserveMutation(OpDeleteFriend, metrics.OutcomeFailed)
		return fmt.Errorf("delete friend: %w", err)
	}
	if !deleted {
		log.Debugf("delete friend: id=%s not present, nothing to do", friendID)
		s.metrics.ObserveMutation(OpDeleteFriend, metrics.OutcomeNoop)
		return nil
	}

	log.Debugf("friend deleted: id=%s", friendID)
	s.applied(ctx, OpDeleteFriend)
	return nil
}

// SetGoalMode switches the active goal. Setting the current mode again is allowed.
func (s *trackerService) SetGoalMode(ctx context.Context, mode domain.GoalMode) error {
	if !mode.IsValid() {
		return s.reject(OpSetGoalMode, fmt.Errorf("%w: %q", ErrInvalidGoalMode, mode))
	}
	if err := s.goalRepo.SetMode(ctx, mode); err != nil {
		s.metrics.ObserveMutation(OpSetGoalMode, metrics.OutcomeFailed)
		return fmt.Errorf("set goal mode: %w", err)
	}

	log.Debugf("goal mode set: %s", mode)
	s.metrics.ObserveMutation(OpSetGoalMode, metrics.OutcomeApplied)
	return nil
}

// parseCalories accepts a base-10 non-negative integer, surrounding whitespace allowed.
func parseCalories(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("%w: calories are required", ErrValidationFailed)
	}
	calories, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: calories must be a whole number, got %q", ErrValidationFailed, text)
	}
	if calories < 0 {
		return 0, fmt.Errorf("%w: calories cannot be negative", ErrValidationFailed)
	}
	return calories, nil
}

func (s *trackerService) reject(op string, err error) error {
	log.Infof("%s rejected: %s", op, err)
	s.metrics.ObserveMutation(op, metrics.OutcomeRejected)
	return err
}

func (s *trackerService) applied(ctx context.Context, op string) {
	s.metrics.ObserveMutation(op, metrics.OutcomeApplied)
	s.refreshGauges(ctx)
}

func (s *trackerService) refreshGauges(ctx context.Context) {
	workouts, err := s.workoutRepo.List(ctx)
	if err != nil {
		log.Errorf("refresh gauges, list workouts: %s", err)
		return
	}
	friends, err := s.friendRepo.List(ctx)
	if err != nil {
		log.Errorf("refresh gauges, list friends: %s", err)
		return
	}

	summary := CompletionSummary(workouts)
	s.metrics.GaugeWorkouts.Set(float64(summary.TotalCount))
	s.metrics.GaugeCompletedWorkouts.Set(float64(summary.CompletedCount))
	s.metrics.GaugeFriends.Set(float64(FriendCount(friends)))
}
