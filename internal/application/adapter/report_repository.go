// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// HealthReportRepository defines the interface for report history persistence operations.
type HealthReportRepository interface {
	// Create stores a generated report.
	Create(ctx context.Context, report *entity.HealthReport) error

	// FindByUserID retrieves a user's report history, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.HealthReport, error)
}
