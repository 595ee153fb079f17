package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"moodtrip/internal/models/db_models"
)

type BudgetRepository interface {
	Create(ctx context.Context, budget *db_models.Budget) (uuid.UUID, error)
	GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) (*db_models.Budget, error)
	CreateQuickBudget(ctx context.Context, quick *db_models.QuickBudget) (uuid.UUID, error)
}

type budgetRepository struct {
	db *gorm.DB
}

func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

func (r *budgetRepository) Create(ctx context.Context, budget *db_models.Budget) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(budget).Error; err != nil {
		return uuid.Nil, err
	}
	return budget.ID, nil
}

func (r *budgetRepository) GetByScheduleID(ctx context.Context, scheduleID uuid.UUID) (*db_models.Budget, error) {
	var budget db_models.Budget
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("created_at DESC").
		First(&budget).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (r *budgetRepository) CreateQuickBudget(ctx context.Context, quick *db_models.QuickBudget) (uuid.UUID, error) {
	if err := r.db.WithContext(ctx).Create(quick).Error; err != nil {
		return uuid.Nil, err
	}
	return quick.ID, nil
}
