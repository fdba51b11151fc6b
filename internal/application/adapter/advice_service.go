// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// AdviceRequest carries the metrics the advice prompt is built from.
type AdviceRequest struct {
	AvgSleepHours     float64
	AvgCaloriesBurned float64
	AvgCaloriesEaten  float64
	BMI               float64
}

// AdviceService defines the interface for AI-generated health advice.
type AdviceService interface {
	// GenerateAdvice produces advice text for the given metrics.
	GenerateAdvice(ctx context.Context, request AdviceRequest) (string, error)

	// IsAvailable checks if the advice service is available and properly configured.
	IsAvailable() bool
}

// AdviceCache defines the interface for caching generated advice per user.
type AdviceCache interface {
	// Get returns the cached advice for a user, or ("", nil) on a miss.
	Get(ctx context.Context, userID uuid.UUID) (string, error)

	// Set stores advice for a user with the given TTL.
	Set(ctx context.Context, userID uuid.UUID, advice string, ttl time.Duration) error

	// Invalidate drops the cached advice for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
