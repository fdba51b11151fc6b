// Package goal contains goal-related use cases.
package goal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// UpsertGeneralGoalInput represents the input for setting the general goal.
type UpsertGeneralGoalInput struct {
	UserID              uuid.UUID
	TargetSleepHours    float64
	TargetCalorieIntake float64
}

// UpsertGeneralGoalOutput represents the output of setting the general goal.
type UpsertGeneralGoalOutput struct {
	Goal *entity.GeneralGoal
}

// UpsertGeneralGoalUseCase creates or replaces a user's general goal.
type UpsertGeneralGoalUseCase struct {
	generalGoalRepo adapter.GeneralGoalRepository
}

// NewUpsertGeneralGoalUseCase creates a new UpsertGeneralGoalUseCase instance.
func NewUpsertGeneralGoalUseCase(generalGoalRepo adapter.GeneralGoalRepository) *UpsertGeneralGoalUseCase {
	return &UpsertGeneralGoalUseCase{
		generalGoalRepo: generalGoalRepo,
	}
}

// Execute performs the upsert.
func (uc *UpsertGeneralGoalUseCase) Execute(ctx context.Context, input UpsertGeneralGoalInput) (*UpsertGeneralGoalOutput, error) {
	if input.TargetSleepHours < 0 || input.TargetSleepHours > 24 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidSleepTarget,
			"sleep target must be between 0 and 24 hours",
			domainerror.ErrInvalidSleepTarget,
		)
	}
	if input.TargetCalorieIntake < 0 {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidCalorieTarget,
			"calorie intake target must not be negative",
			domainerror.ErrInvalidCalorieTarget,
		)
	}

	goal, err := uc.generalGoalRepo.FindByUserID(ctx, input.UserID)
	if err != nil && !errors.Is(err, domainerror.ErrGoalNotFound) {
		return nil, fmt.Errorf("failed to load general goal: %w", err)
	}

	if goal == nil {
		goal = entity.NewGeneralGoal(input.UserID, input.TargetSleepHours, input.TargetCalorieIntake)
	} else {
		goal.TargetSleepHours = input.TargetSleepHours
		goal.TargetCalorieIntake = input.TargetCalorieIntake
	}

	if err := uc.generalGoalRepo.Upsert(ctx, goal); err != nil {
		return nil, fmt.Errorf("failed to save general goal: %w", err)
	}

	return &UpsertGeneralGoalOutput{Goal: goal}, nil
}
