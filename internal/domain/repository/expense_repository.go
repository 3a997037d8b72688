package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// ExpenseRepository defines the interface for expense logs and categories
type ExpenseRepository interface {
	CreateCategory(ctx context.Context, category *entity.ExpenseCategory) error
	GetCategoryByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseCategory, error)
	ListCategories(ctx context.Context) ([]entity.ExpenseCategory, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error

	Create(ctx context.Context, expense *entity.ExpenseRecord) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ExpenseRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, categoryID *uuid.UUID, startDate, endDate *time.Time) ([]entity.ExpenseRecord, int64, error)
	// ListBetween returns all expenses dated within [start, end] inclusive,
	// for report aggregation.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.ExpenseRecord, error)
}
