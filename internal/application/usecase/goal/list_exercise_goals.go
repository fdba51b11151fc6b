// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
)

// ListExerciseGoalsInput represents the input for listing exercise goals.
type ListExerciseGoalsInput struct {
	UserID uuid.UUID
}

// ListExerciseGoalsOutput represents the output of listing exercise goals.
type ListExerciseGoalsOutput struct {
	Goals []*entity.ExerciseGoal
}

// ListExerciseGoalsUseCase handles listing a user's exercise goals.
type ListExerciseGoalsUseCase struct {
	exerciseGoalRepo adapter.ExerciseGoalRepository
}

// NewListExerciseGoalsUseCase creates a new ListExerciseGoalsUseCase instance.
func NewListExerciseGoalsUseCase(exerciseGoalRepo adapter.ExerciseGoalRepository) *ListExerciseGoalsUseCase {
	return &ListExerciseGoalsUseCase{
		exerciseGoalRepo: exerciseGoalRepo,
	}
}

// Execute lists the goals.
func (uc *ListExerciseGoalsUseCase) Execute(ctx context.Context, input ListExerciseGoalsInput) (*ListExerciseGoalsOutput, error) {
	goals, err := uc.exerciseGoalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercise goals: %w", err)
	}

	return &ListExerciseGoalsOutput{Goals: goals}, nil
}
