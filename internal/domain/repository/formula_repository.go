package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// FormulaRepository defines the interface for feed formula operations
type FormulaRepository interface {
	// Upsert persists the formula and replaces its line set atomically.
	Upsert(ctx context.Context, formula *entity.FeedFormula) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FeedFormula, error)
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.FeedFormula, int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
