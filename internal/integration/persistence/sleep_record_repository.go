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

// sleepRecordRepository implements the adapter.SleepRecordRepository interface.
type sleepRecordRepository struct {
	db *gorm.DB
}

// NewSleepRecordRepository creates a new sleep record repository instance.
func NewSleepRecordRepository(db *gorm.DB) adapter.SleepRecordRepository {
	return &sleepRecordRepository{
		db: db,
	}
}

// Create creates a new sleep record in the database.
func (r *sleepRecordRepository) Create(ctx context.Context, record *entity.SleepRecord) error {
	recordModel := model.SleepRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	return result.Error
}

// FindByID retrieves a sleep record by its ID.
func (r *sleepRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SleepRecord, error) {
	var recordModel model.SleepRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUserID retrieves all sleep records for a user, newest first.
func (r *sleepRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.SleepRecord, error) {
	var recordModels []model.SleepRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("sleep_time DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.SleepRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// FindByUserIDInRange retrieves sleep records whose wake-up time falls in [start, end).
func (r *sleepRecordRepository) FindByUserIDInRange(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]*entity.SleepRecord, error) {
	var recordModels []model.SleepRecordModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND wakeup_time >= ? AND wakeup_time < ?", userID, start, end).
		Order("sleep_time ASC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.SleepRecord, len(recordModels))
	for i, rm := range recordModels {
		records[i] = rm.ToEntity()
	}
	return records, nil
}

// HasOverlapping checks whether any existing session overlaps the given interval.
func (r *sleepRecordRepository) HasOverlapping(ctx context.Context, userID uuid.UUID, sleepTime, wakeupTime time.Time) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.SleepRecordModel{}).
		Where("user_id = ? AND sleep_time < ? AND wakeup_time > ?", userID, wakeupTime, sleepTime).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// Delete removes a sleep record from the database.
func (r *sleepRecordRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.SleepRecordModel{}, "id = ?", id)
	return result.Error
}
