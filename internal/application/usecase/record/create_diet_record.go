// Package record contains sleep, exercise, and diet record use cases.
package record

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// CreateDietRecordInput represents the input for creating a diet record.
// Catalog foods compute calories from the portion in grams; custom foods
// record one serving with the calories the user supplied.
type CreateDietRecordInput struct {
	UserID         uuid.UUID
	FoodName       string
	Custom         bool
	MealType       entity.MealType
	PortionGrams   decimal.Decimal
	ManualCalories decimal.Decimal
	EatenAt        time.Time
}

// CreateDietRecordOutput represents the output of creating a diet record.
type CreateDietRecordOutput struct {
	Record *entity.DietRecord
}

// CreateDietRecordUseCase handles diet record creation.
type CreateDietRecordUseCase struct {
	dietRepo adapter.DietRecordRepository
}

// NewCreateDietRecordUseCase creates a new CreateDietRecordUseCase instance.
func NewCreateDietRecordUseCase(dietRepo adapter.DietRecordRepository) *CreateDietRecordUseCase {
	return &CreateDietRecordUseCase{
		dietRepo: dietRepo,
	}
}

// Execute creates the diet record.
func (uc *CreateDietRecordUseCase) Execute(ctx context.Context, input CreateDietRecordInput) (*CreateDietRecordOutput, error) {
	if !input.MealType.IsValid() {
		return nil, domainerror.NewDietError(
			domainerror.ErrCodeInvalidMealType,
			fmt.Sprintf("unknown meal type %q", input.MealType),
			domainerror.ErrInvalidMealType,
		)
	}

	var portion, calories decimal.Decimal
	if input.Custom {
		// Custom foods carry no per-100g data, so the portion is a single
		// serving and the calories come from the user.
		portion = decimal.NewFromInt(1)
		calories = input.ManualCalories
	} else {
		food, ok := entity.LookupFoodItem(input.FoodName)
		if !ok {
			return nil, domainerror.NewDietError(
				domainerror.ErrCodeUnknownFood,
				fmt.Sprintf("food %q is not in the catalog", input.FoodName),
				domainerror.ErrUnknownFood,
			)
		}
		portion = input.PortionGrams
		calories = food.CaloriesForPortion(portion)
	}

	if calories.LessThanOrEqual(decimal.Zero) {
		return nil, domainerror.NewDietError(
			domainerror.ErrCodeZeroCalories,
			"diet entry must have positive calories",
			domainerror.ErrZeroCalories,
		)
	}

	record := entity.NewDietRecord(input.UserID, input.FoodName, input.MealType, portion, calories, input.EatenAt)
	if err := uc.dietRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create diet record: %w", err)
	}

	return &CreateDietRecordOutput{Record: record}, nil
}
