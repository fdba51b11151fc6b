// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// CreateExerciseRecordInput represents the input for creating an exercise record.
type CreateExerciseRecordInput struct {
	UserID          uuid.UUID
	Type            entity.ExerciseType
	DurationMinutes float64
	CaloriesBurned  float64 // required for the "other" type, ignored otherwise
	ExerciseTime    time.Time
}

// CreateExerciseRecordOutput represents the output of creating an exercise record.
type CreateExerciseRecordOutput struct {
	Record *entity.ExerciseRecord
}

// CreateExerciseRecordUseCase handles exercise record creation.
type CreateExerciseRecordUseCase struct {
	exerciseRepo adapter.ExerciseRecordRepository
	userRepo     adapter.UserRepository
}

// NewCreateExerciseRecordUseCase creates a new CreateExerciseRecordUseCase instance.
func NewCreateExerciseRecordUseCase(exerciseRepo adapter.ExerciseRecordRepository, userRepo adapter.UserRepository) *CreateExerciseRecordUseCase {
	return &CreateExerciseRecordUseCase{
		exerciseRepo: exerciseRepo,
		userRepo:     userRepo,
	}
}

// Execute creates the exercise record. Known exercise types get a MET-based
// calorie estimate from the user's weight; the "other" type records the
// calories the user supplied.
func (uc *CreateExerciseRecordUseCase) Execute(ctx context.Context, input CreateExerciseRecordInput) (*CreateExerciseRecordOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewExerciseError(
			domainerror.ErrCodeInvalidExerciseType,
			fmt.Sprintf("unknown exercise type %q", input.Type),
			domainerror.ErrInvalidExerciseType,
		)
	}

	if input.DurationMinutes <= 0 {
		return nil, domainerror.NewExerciseError(
			domainerror.ErrCodeInvalidDuration,
			"duration must be positive",
			domainerror.ErrInvalidDuration,
		)
	}

	caloriesBurned := input.CaloriesBurned
	if met, ok := input.Type.MET(); ok {
		user, err := uc.userRepo.FindByID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to load user: %w", err)
		}
		caloriesBurned = entity.EstimateCaloriesBurned(met, input.DurationMinutes, user.EffectiveWeightKg())
	} else if caloriesBurned <= 0 {
		return nil, domainerror.NewExerciseError(
			domainerror.ErrCodeManualCalories,
			"calories burned must be provided for this exercise type",
			domainerror.ErrManualCaloriesRequired,
		)
	}

	record := entity.NewExerciseRecord(input.UserID, input.Type, input.DurationMinutes, caloriesBurned, input.ExerciseTime)
	if err := uc.exerciseRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create exercise record: %w", err)
	}

	return &CreateExerciseRecordOutput{Record: record}, nil
}
