package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/pagination"
	"gorm.io/gorm"
)

type expenseRepository struct {
	db *gorm.DB
}

// NewExpenseRepository creates a new expense repository
func NewExpenseRepository(db *gorm.DB) domainRepo.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) CreateCategory(ctx context.Context, category *entity.ExpenseCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *expenseRepository) GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error) {
	var category entity.ExpenseCategory
	err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &category, err
}

func (r *expenseRepository) ListCategories(ctx context.Context) ([]entity.ExpenseCategory, error) {
	var categories []entity.ExpenseCategory
	err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *expenseRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseCategory{}, "id = ?", id).Error
}

func (r *expenseRepository) Create(ctx context.Context, expense *entity.ExpenseRecord) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseRecord, error) {
	var expense entity.ExpenseRecord
	err := r.db.WithContext(ctx).
		Preload("Category").
		First(&expense, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &expense, err
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ExpenseRecord{}, "id = ?", id).Error
}

func (r *expenseRepository) List(ctx context.Context, params *pagination.PaginationParams, categoryID *uuid.UUID, startDate, endDate *time.Time) ([]entity.ExpenseRecord, int64, error) {
	var expenses []entity.ExpenseRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ExpenseRecord{})

	if categoryID != nil {
		query = query.Where("category_id = ?", *categoryID)
	}
	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Category").
		Order("date DESC, created_at DESC").
		Find(&expenses).Error

	return expenses, total, err
}

func (r *expenseRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.ExpenseRecord, error) {
	var expenses []entity.ExpenseRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&expenses).Error
	return expenses, err
}
