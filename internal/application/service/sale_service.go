package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// SaleService handles egg sales and receivables. Sales are hard-blocking:
// unlike feed production, an insufficient egg stock rejects the whole
// operation instead of clamping.
type SaleService struct {
	saleRepo  repository.SaleRepository
	stockRepo repository.StockRepository
	bus       *events.Bus
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, stockRepo repository.StockRepository, bus *events.Bus) *SaleService {
	return &SaleService{
		saleRepo:  saleRepo,
		stockRepo: stockRepo,
		bus:       bus,
	}
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	Date          time.Time
	Customer      string
	Product       string
	QuantitySold  int
	UnitPrice     float64
	PaymentMethod string
	DueDate       *time.Time
}

// CreateSale records a sale and debits the central egg stock in the same
// transaction. Credit sales ("A Prazo") require a due date and start
// Pending; every other payment method is Paid immediately.
func (s *SaleService) CreateSale(ctx context.Context, input *CreateSaleInput) (*entity.SaleRecord, error) {
	if input.QuantitySold <= 0 {
		return nil, apperror.NewBadRequestError("Quantity sold must be greater than zero")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}
	if input.Customer == "" {
		return nil, apperror.NewBadRequestError("Customer is required")
	}
	if input.PaymentMethod == "" {
		return nil, apperror.NewBadRequestError("Payment method is required")
	}

	sale := &entity.SaleRecord{
		Date:          input.Date,
		Customer:      input.Customer,
		Product:       input.Product,
		QuantitySold:  input.QuantitySold,
		UnitPrice:     input.UnitPrice,
		TotalValue:    float64(input.QuantitySold) * input.UnitPrice,
		PaymentMethod: input.PaymentMethod,
	}

	if sale.OnCredit() {
		if input.DueDate == nil {
			return nil, apperror.NewBadRequestError("Due date is required for credit sales")
		}
		sale.PaymentStatus = enum.PaymentStatusPending
		sale.DueDate = input.DueDate
	} else {
		now := time.Now()
		sale.PaymentStatus = enum.PaymentStatusPaid
		sale.PaymentDate = &now
	}

	ok, err := s.saleRepo.CreateWithStockDebit(ctx, sale)
	if err != nil {
		return nil, err
	}
	if !ok {
		stock, stockErr := s.stockRepo.GetEggStock(ctx)
		available := 0
		if stockErr == nil && stock != nil {
			available = stock.Quantity
		}
		return nil, apperror.NewInsufficientStockError(
			fmt.Sprintf("Insufficient egg stock: requested %d, available %d", input.QuantitySold, available))
	}

	s.bus.Publish(events.TypeEggStock, map[string]interface{}{
		"sold":    input.QuantitySold,
		"sale_id": sale.ID,
	})

	return sale, nil
}

// GetSale gets a sale by ID
func (s *SaleService) GetSale(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// SettleSale marks a pending credit sale as paid, stamping today as the
// payment date. Settling an already paid sale is rejected.
func (s *SaleService) SettleSale(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	if sale.PaymentStatus == enum.PaymentStatusPaid {
		return nil, apperror.NewBadRequestError("Sale is already paid")
	}

	now := time.Now()
	sale.PaymentStatus = enum.PaymentStatusPaid
	sale.PaymentDate = &now

	if err := s.saleRepo.Update(ctx, sale); err != nil {
		return nil, err
	}

	return sale, nil
}

// ListSales lists sales with optional status, overdue and date filters
func (s *SaleService) ListSales(ctx context.Context, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.SaleRecord], error) {
	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// ListReceivables lists pending credit sales
func (s *SaleService) ListReceivables(ctx context.Context, params *pagination.PaginationParams, overdueOnly bool) (*pagination.PaginatedResult[entity.SaleRecord], error) {
	pending := enum.PaymentStatusPending
	return s.ListSales(ctx, &repository.SaleFilterParams{
		Pagination:  params,
		Status:      &pending,
		OverdueOnly: overdueOnly,
	})
}
