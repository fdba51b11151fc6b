// Package goal contains goal-related use cases.
package goal

import (
	"context"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// GetGeneralGoalInput represents the input for fetching the general goal.
type GetGeneralGoalInput struct {
	UserID uuid.UUID
}

// GetGeneralGoalOutput represents the output of fetching the general goal.
type GetGeneralGoalOutput struct {
	Goal *entity.GeneralGoal
}

// GetGeneralGoalUseCase handles reading a user's general goal.
type GetGeneralGoalUseCase struct {
	generalGoalRepo adapter.GeneralGoalRepository
}

// NewGetGeneralGoalUseCase creates a new GetGeneralGoalUseCase instance.
func NewGetGeneralGoalUseCase(generalGoalRepo adapter.GeneralGoalRepository) *GetGeneralGoalUseCase {
	return &GetGeneralGoalUseCase{
		generalGoalRepo: generalGoalRepo,
	}
}

// Execute fetches the goal.
func (uc *GetGeneralGoalUseCase) Execute(ctx context.Context, input GetGeneralGoalInput) (*GetGeneralGoalOutput, error) {
	goal, err := uc.generalGoalRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"no general goal set",
			domainerror.ErrGoalNotFound,
		)
	}

	return &GetGeneralGoalOutput{Goal: goal}, nil
}
