// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// GeneralGoalRepository defines the interface for general goal persistence operations.
type GeneralGoalRepository interface {
	// Upsert creates or replaces the user's general goal.
	Upsert(ctx context.Context, goal *entity.GeneralGoal) error

	// FindByUserID retrieves the user's general goal, if any.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.GeneralGoal, error)
}

// ExerciseGoalRepository defines the interface for exercise goal persistence operations.
type ExerciseGoalRepository interface {
	// Create creates a new exercise goal in the database.
	Create(ctx context.Context, goal *entity.ExerciseGoal) error

	// FindByID retrieves an exercise goal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseGoal, error)

	// FindByUserID retrieves all exercise goals for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseGoal, error)

	// Delete removes an exercise goal from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
