package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodtrip/internal/models/db_models"
)

type CityCount struct {
	EndCity string
	Count   int
}

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *db_models.Schedule) (uuid.UUID, error)
	GetByID(ctx context.Context, id string) (*db_models.Schedule, error)
	ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Schedule, error)
	Update(ctx context.Context, schedule *db_models.Schedule) error
	Delete(ctx context.Context, id string) error

	// TopEndCities feeds the popular-destinations cache.
	TopEndCities(ctx context.Context, limit int) ([]CityCount, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *db_models.Schedule) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(schedule).Error; err != nil {
		return uuid.Nil, err
	}
	return schedule.ID, nil
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).First(&schedule, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) ListByUser(ctx context.Context, userID string, page, pageSize int) ([]db_models.Schedule, error) {
	var schedules []db_models.Schedule
	offset := (page - 1) * pageSize

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(pageSize).
		Find(&schedules).Error
	if err != nil {
		return nil, err
	}
	return schedules, nil
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Save(schedule)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *scheduleRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Delete(&db_models.Schedule{}, "id = ?", id).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (r *scheduleRepository) TopEndCities(ctx context.Context, limit int) ([]CityCount, error) {
	var counts []CityCount
	err := r.db.WithContext(ctx).
		Model(&db_models.Schedule{}).
		Select("end_city, COUNT(*) AS count").
		Group("end_city").
		Order("count DESC").
		Limit(limit).
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
