// Package memory holds the session state for the process lifetime.
// Nothing here survives a restart.
package memory

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/repository"
	"context"
	"sync"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers unique for the process lifetime.
type IDGenerator func() string

// Store is the single owner of session data: workouts, friends and the goal mode.
// Every mutation builds a complete new slice and swaps it in, so readers never
// see a half-applied change.
type Store struct {
	mu       sync.RWMutex
	workouts []domain.Workout
	friends  []domain.Friend
	mode     domain.GoalMode
	newID    IDGenerator
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides uuid-based id generation.
func WithIDGenerator(gen IDGenerator) Option {
	return func(s *Store) {
		s.newID = gen
	}
}

// WithGoalMode sets the initially active mode. Invalid modes are ignored.
func WithGoalMode(mode domain.GoalMode) Option {
	return func(s *Store) {
		if mode.IsValid() {
			s.mode = mode
		}
	}
}

// WithSampleWorkouts seeds the store with the given entries dated on date.
func WithSampleWorkouts(samples []domain.SampleWorkout, date string) Option {
	return func(s *Store) {
		for _, sample := range samples {
			s.workouts = append(s.workouts, domain.Workout{
				ID:        s.newID(),
				Name:      sample.Name,
				Calories:  sample.Calories,
				Completed: sample.Completed,
				Date:      date,
			})
		}
	}
}

// NewStore creates an empty store in the default goal mode.
// Options are applied in order; put WithIDGenerator first when seeding.
func NewStore(opts ...Option) *Store {
	s := &Store{
		workouts: []domain.Workout{},
		friends:  []domain.Friend{},
		mode:     domain.DefaultGoalMode,
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Workouts exposes the store as a repository.WorkoutRepository.
func (s *Store) Workouts() repository.WorkoutRepository {
	return (*workoutRepo)(s)
}

// Friends exposes the store as a repository.FriendRepository.
func (s *Store) Friends() repository.FriendRepository {
	return (*friendRepo)(s)
}

// Goals exposes the store as a repository.GoalRepository.
func (s *Store) Goals() repository.GoalRepository {
	return (*goalRepo)(s)
}

// --- Workouts ---

type workoutRepo Store

func (r *workoutRepo) Create(_ context.Context, name string, calories int, date string) (*domain.Workout, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	workout := domain.Workout{
		ID:       s.newID(),
		Name:     name,
		Calories: calories,
		Date:     date,
	}
	next := make([]domain.Workout, len(s.workouts), len(s.workouts)+1)
	copy(next, s.workouts)
	s.workouts = append(next, workout)
	return &workout, nil
}

func (r *workoutRepo) List(_ context.Context) ([]domain.Workout, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Workout, len(s.workouts))
	copy(out, s.workouts)
	return out, nil
}

func (r *workoutRepo) ToggleCompleted(_ context.Context, id string) (*domain.Workout, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.workouts {
		if s.workouts[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, repository.ErrNotFound
	}

	next := make([]domain.Workout, len(s.workouts))
	copy(next, s.workouts)
	next[idx].Completed = !next[idx].Completed
	s.workouts = next

	updated := next[idx]
	return &updated, nil
}

func (r *workoutRepo) Delete(_ context.Context, id string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Workout, 0, len(s.workouts))
	for _, w := range s.workouts {
		if w.ID != id {
			next = append(next, w)
		}
	}
	if len(next) == len(s.workouts) {
		return false, nil
	}
	s.workouts = next
	return true, nil
}

// --- Friends ---

type friendRepo Store

func (r *friendRepo) Create(_ context.Context, name string) (*domain.Friend, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	friend := domain.Friend{
		ID:   s.newID(),
		Name: name,
	}
	next := make([]domain.Friend, len(s.friends), len(s.friends)+1)
	copy(next, s.friends)
	s.friends = append(next, friend)
	return &friend, nil
}

func (r *friendRepo) List(_ context.Context) ([]domain.Friend, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Friend, len(s.friends))
	copy(out, s.friends)
	return out, nil
}

func (r *friendRepo) Delete(_ context.Context, id string) (bool, error) {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]domain.Friend, 0, len(s.friends))
	for _, f := range s.friends {
		if f.ID != id {
			next = append(next, f)
		}
	}
	if len(next) == len(s.friends) {
		return false, nil
	}
	s.friends = next
	return true, nil
}

// --- Goal mode ---

type goalRepo Store

func (r *goalRepo) GetMode(_ context.Context) (domain.GoalMode, error) {
	s := (*Store)(r)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.mode, nil
}

func (r *goalRepo) SetMode(_ context.Context, mode domain.GoalMode) error {
	s := (*Store)(r)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = mode
	return nil
}
