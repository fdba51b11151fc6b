// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// SleepRecordRepository defines the interface for sleep record persistence operations.
type SleepRecordRepository interface {
	// Create creates a new sleep record in the database.
	Create(ctx context.Context, record *entity.SleepRecord) error

	// FindByID retrieves a sleep record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SleepRecord, error)

	// FindByUserID retrieves all sleep records for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SleepRecord, error)

	// FindByUserIDInRange retrieves sleep records whose wake-up time falls in [start, end).
	FindByUserIDInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.SleepRecord, error)

	// HasOverlapping checks whether any existing session overlaps the given interval.
	HasOverlapping(ctx context.Context, userID uuid.UUID, sleepTime, wakeupTime time.Time) (bool, error)

	// Delete removes a sleep record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ExerciseRecordRepository defines the interface for exercise record persistence operations.
type ExerciseRecordRepository interface {
	// Create creates a new exercise record in the database.
	Create(ctx context.Context, record *entity.ExerciseRecord) error

	// FindByID retrieves an exercise record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ExerciseRecord, error)

	// FindByUserID retrieves all exercise records for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ExerciseRecord, error)

	// FindByUserIDInRange retrieves exercise records whose time falls in [start, end).
	FindByUserIDInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.ExerciseRecord, error)

	// Delete removes an exercise record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}

// DietRecordRepository defines the interface for diet record persistence operations.
type DietRecordRepository interface {
	// Create creates a new diet record in the database.
	Create(ctx context.Context, record *entity.DietRecord) error

	// FindByID retrieves a diet record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.DietRecord, error)

	// FindByUserID retrieves all diet records for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.DietRecord, error)

	// FindByUserIDInRange retrieves diet records whose eaten-at time falls in [start, end).
	FindByUserIDInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DietRecord, error)

	// Delete removes a diet record from the database.
	Delete(ctx context.Context, id uuid.UUID) error
}
