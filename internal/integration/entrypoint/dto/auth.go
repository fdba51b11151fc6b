// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// RegisterRequest represents the request body for user registration.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UpdateProfileRequest represents the request body for profile update.
type UpdateProfileRequest struct {
	Name     string  `json:"name" binding:"required,min=1,max=100"`
	Gender   string  `json:"gender" binding:"omitempty,oneof=male female other"`
	Age      int     `json:"age" binding:"omitempty,gte=0,lte=150"`
	HeightCm float64 `json:"height_cm" binding:"omitempty,gte=0"`
	WeightKg float64 `json:"weight_kg" binding:"omitempty,gte=0"`
}

// DeleteAccountRequest represents the request body for account deletion.
type DeleteAccountRequest struct {
	Password     string `json:"password" binding:"required"`
	Confirmation string `json:"confirmation"`
}

// AuthResponse represents the response for authentication endpoints.
type AuthResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MessageResponse represents a generic message response.
type MessageResponse struct {
	Message string `json:"message"`
}

// UserResponse represents the user data in API responses.
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Gender    string    `json:"gender,omitempty"`
	Age       int       `json:"age,omitempty"`
	HeightCm  float64   `json:"height_cm,omitempty"`
	WeightKg  float64   `json:"weight_kg,omitempty"`
	BMI       float64   `json:"bmi,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToUserResponse converts a domain User entity to a UserResponse DTO.
func ToUserResponse(user *entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		Gender:    string(user.Gender),
		Age:       user.Age,
		HeightCm:  user.HeightCm,
		WeightKg:  user.WeightKg,
		BMI:       user.BMI,
		CreatedAt: user.CreatedAt,
	}
}
