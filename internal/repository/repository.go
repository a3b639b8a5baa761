package repository

import (
	"alcyxob/fitness-tracker/internal/domain"
	"context"
)

// Error constants for repository layer
var (
	ErrNotFound = RepositoryError("not found")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// WorkoutRepository defines the interface for interacting with workout entries.
// List results preserve insertion order.
type WorkoutRepository interface {
	Create(ctx context.Context, name string, calories int, date string) (*domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	ToggleCompleted(ctx context.Context, id string) (*domain.Workout, error) // ErrNotFound if absent
	Delete(ctx context.Context, id string) (deleted bool, err error)         // Missing id is not an error
}

// FriendRepository defines the interface for interacting with tracked friends.
type FriendRepository interface {
	Create(ctx context.Context, name string) (*domain.Friend, error)
	List(ctx context.Context) ([]domain.Friend, error)
	Delete(ctx context.Context, id string) (deleted bool, err error)
}

// GoalRepository holds the single active goal mode.
type GoalRepository interface {
	GetMode(ctx context.Context) (domain.GoalMode, error)
	SetMode(ctx context.Context, mode domain.GoalMode) error
}
