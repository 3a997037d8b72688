package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// EggRepository defines the interface for egg production logging
type EggRepository interface {
	// CreateProduction appends the record and credits the central egg stock
	// (quantity by good eggs, losses by broken eggs) in one transaction.
	CreateProduction(ctx context.Context, record *entity.EggProductionRecord) error
	ListProductions(ctx context.Context, shedID *uuid.UUID, params *pagination.PaginationParams, startDate, endDate *time.Time) ([]entity.EggProductionRecord, int64, error)
	// ListBetween returns all production records dated within [start, end]
	// inclusive, for report aggregation.
	ListBetween(ctx context.Context, start, end time.Time) ([]entity.EggProductionRecord, error)
}
