// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// DeleteExerciseGoalInput represents the input for deleting an exercise goal.
type DeleteExerciseGoalInput struct {
	UserID uuid.UUID
	GoalID uuid.UUID
}

// DeleteExerciseGoalUseCase handles exercise goal deletion with an ownership check.
type DeleteExerciseGoalUseCase struct {
	exerciseGoalRepo adapter.ExerciseGoalRepository
}

// NewDeleteExerciseGoalUseCase creates a new DeleteExerciseGoalUseCase instance.
func NewDeleteExerciseGoalUseCase(exerciseGoalRepo adapter.ExerciseGoalRepository) *DeleteExerciseGoalUseCase {
	return &DeleteExerciseGoalUseCase{
		exerciseGoalRepo: exerciseGoalRepo,
	}
}

// Execute deletes the goal if it belongs to the user.
func (uc *DeleteExerciseGoalUseCase) Execute(ctx context.Context, input DeleteExerciseGoalInput) error {
	goal, err := uc.exerciseGoalRepo.FindByID(ctx, input.GoalID)
	if err != nil {
		return domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"exercise goal not found",
			domainerror.ErrGoalNotFound,
		)
	}

	if goal.UserID != input.UserID {
		return domainerror.NewGoalError(
			domainerror.ErrCodeUnauthorizedGoalAccess,
			"exercise goal belongs to another user",
			domainerror.ErrUnauthorizedGoalAccess,
		)
	}

	if err := uc.exerciseGoalRepo.Delete(ctx, input.GoalID); err != nil {
		return fmt.Errorf("failed to delete exercise goal: %w", err)
	}
	return nil
}
