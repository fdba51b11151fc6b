// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
	"github.com/health-tracker/backend/internal/integration/persistence/model"
)

// dietRecordRepository implements the adapter.DietRecordRepository interface.
type dietRecordRepository struct {
	db *gorm.DB
}

// NewDietRecordRepository creates a new diet record repository instance.
func NewDietRecordRepository(db *gorm.DB) adapter.DietRecordRepository {
	return &dietRecordRepository{
		db: db,
	}
}

// Create creates a new diet record in the database.
func (r *dietRecordRepository) Create(ctx context.Context, record *entity.DietRecord) error {
	recordModel := model.DietRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	return result.Error
}

// FindByID retrieves a diet record by its ID.
func (r *dietRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DietRecord, error) {
	var recordModel model.DietRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUserID retrieves all diet records for a user, newest first.
func (r *dietRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.DietRecord, error) {
	var recordModels []model.DietRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("eaten_at DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.DietRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// FindByUserIDInRange retrieves diet records whose eaten-at time falls in [start, end).
func (r *dietRecordRepository) FindByUserIDInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.DietRecord, error) {
	var recordModels []model.DietRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND eaten_at >= ? AND eaten_at < ?", userID, start, end).
		Order("eaten_at ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.DietRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// Delete removes a diet record from the database.
func (r *dietRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DietRecordModel{}, "id = ?", id)
	return result.Error
}
