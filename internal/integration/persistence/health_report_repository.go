// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	"github.com/health-tracker/backend/internal/integration/persistence/model"
)

// healthReportRepository implements the adapter.HealthReportRepository interface.
type healthReportRepository struct {
	db *gorm.DB
}

// NewHealthReportRepository creates a new health report repository instance.
func NewHealthReportRepository(db *gorm.DB) adapter.HealthReportRepository {
	return &healthReportRepository{
		db: db,
	}
}

// Create stores a generated report.
func (r *healthReportRepository) Create(ctx context.Context, report *entity.HealthReport) error {
	reportModel := model.HealthReportFromEntity(report)
	result := r.db.WithContext(ctx).Create(reportModel)
	return result.Error
}

// FindByUserID retrieves a user's report history, newest first.
func (r *healthReportRepository) FindByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.HealthReport, error) {
	var reportModels []model.HealthReportModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("generated_at DESC").
		Limit(limit).
		Find(&reportModels)
	if result.Error != nil {
		return nil, result.Error
	}

	reports := make([]*entity.HealthReport, len(reportModels))
	for i, rm := range reportModels {
		reports[i] = rm.ToEntity()
	}
	return reports, nil
}
