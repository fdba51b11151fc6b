// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// CreateExerciseGoalInput represents the input for creating an exercise goal.
type CreateExerciseGoalInput struct {
	UserID       uuid.UUID
	GoalType     entity.ExerciseGoalType
	TargetValue  float64
	ExerciseType *entity.ExerciseType
}

// CreateExerciseGoalOutput represents the output of creating an exercise goal.
type CreateExerciseGoalOutput struct {
	Goal *entity.ExerciseGoal
}

// CreateExerciseGoalUseCase handles exercise goal creation.
type CreateExerciseGoalUseCase struct {
	exerciseGoalRepo adapter.ExerciseGoalRepository
}

// NewCreateExerciseGoalUseCase creates a new CreateExerciseGoalUseCase instance.
func NewCreateExerciseGoalUseCase(exerciseGoalRepo adapter.ExerciseGoalRepository) *CreateExerciseGoalUseCase {
	return &CreateExerciseGoalUseCase{
		exerciseGoalRepo: exerciseGoalRepo,
	}
}

// Execute creates the goal.
func (uc *CreateExerciseGoalUseCase) Execute(ctx context.Context, input CreateExerciseGoalInput) (*CreateExerciseGoalOutput, error) {
	if !input.GoalType.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			fmt.Sprintf("unknown goal type %q", input.GoalType),
			domainerror.ErrInvalidGoalType,
		)
	}
	if input.TargetValue <= 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidTargetValue,
			"target value must be positive",
			domainerror.ErrInvalidTargetValue,
		)
	}
	if input.ExerciseType != nil && !input.ExerciseType.IsValid() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeMissingGoalFields,
			fmt.Sprintf("unknown exercise type %q", *input.ExerciseType),
			domainerror.ErrInvalidGoalType,
		)
	}

	goal := entity.NewExerciseGoal(input.UserID, input.GoalType, input.TargetValue, input.ExerciseType)
	if err := uc.exerciseGoalRepo.Create(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to create exercise goal: %w", err)
	}

	return &CreateExerciseGoalOutput{Goal: goal}, nil
}
