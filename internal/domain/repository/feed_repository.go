package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// FeedRepository defines the interface for feed production and consumption.
// Both mutators commit their record plus all stock movements in a single
// transaction; ledger debits are clamped at zero in SQL so a shortfall can
// never drive a balance negative.
type FeedRepository interface {
	// CreateProduction appends the production record, credits the feed stock
	// by the produced quantity and debits each ingredient ledger by the
	// given kg (clamped at zero), all in one transaction. Ingredients with
	// no ledger entry are skipped.
	CreateProduction(ctx context.Context, record *entity.FeedProductionRecord, debits map[uuid.UUID]float64) error
	ListProductions(ctx context.Context, params *pagination.PaginationParams, startDate, endDate *time.Time) ([]entity.FeedProductionRecord, int64, error)
	// CreateConsumption appends the shed consumption event and debits the
	// feed stock (clamped at zero) in one transaction.
	CreateConsumption(ctx context.Context, event *entity.FeedConsumptionEvent) error
	ListConsumptions(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.FeedConsumptionEvent, int64, error)
}
