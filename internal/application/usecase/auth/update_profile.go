// Package auth contains authentication-related use cases.
package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// UpdateProfileInput represents the input for updating a user's profile.
type UpdateProfileInput struct {
	UserID   uuid.UUID
	Name     string
	Gender   entity.Gender
	Age      int
	HeightCm float64
	WeightKg float64
}

// UpdateProfileOutput represents the output of updating a profile.
type UpdateProfileOutput struct {
	User *entity.User
}

// UpdateProfileUseCase handles profile updates, including the BMI refresh.
type UpdateProfileUseCase struct {
	userRepo adapter.UserRepository
}

// NewUpdateProfileUseCase creates a new UpdateProfileUseCase instance.
func NewUpdateProfileUseCase(userRepo adapter.UserRepository) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo: userRepo,
	}
}

// Execute performs the profile update.
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, input UpdateProfileInput) (*UpdateProfileOutput, error) {
	if err := validateProfile(input); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeUserNotFound,
			"user not found",
			domainerror.ErrUserNotFound,
		)
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	user.UpdateProfile(input.Gender, input.Age, input.HeightCm, input.WeightKg)

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return &UpdateProfileOutput{User: user}, nil
}

// validateProfile checks the measurement ranges.
func validateProfile(input UpdateProfileInput) error {
	invalid := input.Age < 0 || input.Age > 150 ||
		input.HeightCm < 0 || input.HeightCm > 300 ||
		input.WeightKg < 0 || input.WeightKg > 500

	if invalid {
		return domainerror.NewAuthError(
			domainerror.ErrCodeInvalidProfile,
			"profile measurements are out of range",
			domainerror.ErrInvalidProfile,
		)
	}
	return nil
}
