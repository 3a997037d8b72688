package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// PurchaseFilterParams contains filtering parameters for purchase queries
type PurchaseFilterParams struct {
	Pagination   *pagination.PaginationParams
	IngredientID *uuid.UUID
	StartDate    *time.Time
	EndDate      *time.Time
}

// PurchaseRepository defines the interface for purchase intake operations
type PurchaseRepository interface {
	// CreateWithIntake appends the purchase record and credits the ingredient
	// ledger in a single transaction. The ledger row is locked for the
	// duration, so concurrent purchases of the same ingredient serialize
	// instead of overwriting each other's intake. Returns the updated entry.
	CreateWithIntake(ctx context.Context, record *entity.PurchaseRecord, policy enum.CostingPolicy) (*entity.IngredientStock, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error)
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.PurchaseRecord, int64, error)
	// ListBetween returns all purchases dated within [start, end] inclusive,
	// for report aggregation.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.PurchaseRecord, error)
}
