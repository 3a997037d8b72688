package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// PurchaseService handles purchase intake: the append-only purchase log plus
// the ingredient stock ledger credit.
type PurchaseService struct {
	purchaseRepo   repository.PurchaseRepository
	ingredientRepo repository.IngredientRepository
	costingPolicy  enum.CostingPolicy
	bus            *events.Bus
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	ingredientRepo repository.IngredientRepository,
	costingPolicy enum.CostingPolicy,
	bus *events.Bus,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo:   purchaseRepo,
		ingredientRepo: ingredientRepo,
		costingPolicy:  costingPolicy,
		bus:            bus,
	}
}

// CreatePurchaseInput represents the create purchase input
type CreatePurchaseInput struct {
	IngredientID uuid.UUID
	Date         time.Time
	Quantity     float64
	UnitPrice    float64
	Supplier     *string
}

// CreatePurchase appends a purchase record and credits the ingredient ledger.
// TotalKg = quantity x the ingredient's unit-to-kg factor; the average cost
// update follows the configured costing policy.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input *CreatePurchaseInput) (*entity.PurchaseRecord, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}

	ingredient, err := s.ingredientRepo.GetByID(ctx, input.IngredientID)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}

	totalValue := input.Quantity * input.UnitPrice
	totalKg := input.Quantity * ingredient.UnitToKgFactor

	var pricePerKg float64
	if totalKg > 0 {
		pricePerKg = totalValue / totalKg
	}

	record := &entity.PurchaseRecord{
		IngredientID: ingredient.ID,
		Date:         input.Date,
		Quantity:     input.Quantity,
		UnitPrice:    input.UnitPrice,
		TotalValue:   totalValue,
		TotalKg:      totalKg,
		PricePerKg:   pricePerKg,
		Supplier:     input.Supplier,
	}

	// The ledger credit and costing math run inside the repository
	// transaction, against a locked row.
	stock, err := s.purchaseRepo.CreateWithIntake(ctx, record, s.costingPolicy)
	if err != nil {
		return nil, err
	}

	s.bus.Publish(events.TypeIngredientStock, map[string]interface{}{
		"ingredient_id":      ingredient.ID,
		"ingredient_name":    ingredient.Name,
		"current_balance_kg": stock.CurrentBalanceKg,
	})

	return record, nil
}

// GetPurchase retrieves a purchase record by ID
func (s *PurchaseService) GetPurchase(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error) {
	record, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return record, nil
}

// ListPurchases lists purchase records with filtering
func (s *PurchaseService) ListPurchases(ctx context.Context, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.PurchaseRecord], error) {
	records, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}
