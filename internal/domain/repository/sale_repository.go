package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// SaleFilterParams contains filtering parameters for sale queries
type SaleFilterParams struct {
	Pagination  *pagination.PaginationParams
	Status      *enum.PaymentStatus
	OverdueOnly bool
	StartDate   *time.Time
	EndDate     *time.Time
}

// SaleRepository defines the interface for sales and receivables
type SaleRepository interface {
	// CreateWithStockDebit decrements the egg stock and appends the sale in
	// one transaction. Returns false without writing anything when the stock
	// is insufficient (hard-blocking policy).
	CreateWithStockDebit(ctx context.Context, sale *entity.SaleRecord) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error)
	Update(ctx context.Context, sale *entity.SaleRecord) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.SaleRecord, int64, error)
	// ListPaidBetween returns Paid sales dated within [start, end] inclusive,
	// for report aggregation.
	ListPaidBetween(ctx context.Context, start, end time.Time) ([]entity.SaleRecord, error)
}
