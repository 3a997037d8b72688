package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/repository"
)

// StockService exposes read-only views over the derived stock ledgers
type StockService struct {
	stockRepo repository.StockRepository
}

// NewStockService creates a new stock service
func NewStockService(stockRepo repository.StockRepository) *StockService {
	return &StockService{stockRepo: stockRepo}
}

// IngredientStockView is one row of the ingredient stock overview
type IngredientStockView struct {
	IngredientID            uuid.UUID `json:"ingredient_id"`
	IngredientName          string    `json:"ingredient_name"`
	CumulativeIntakeKg      float64   `json:"cumulative_intake_kg"`
	CumulativeConsumptionKg float64   `json:"cumulative_consumption_kg"`
	CurrentBalanceKg        float64   `json:"current_balance_kg"`
	AverageCostPerKg        float64   `json:"average_cost_per_kg"`
	MinimumStockKg          float64   `json:"minimum_stock_kg"`
	BelowMinimum            bool      `json:"below_minimum"`
}

// StockOverview aggregates the three ledgers into one dashboard payload
type StockOverview struct {
	Ingredients []IngredientStockView `json:"ingredients"`
	FeedStockKg float64               `json:"feed_stock_kg"`
	EggStock    int                   `json:"egg_stock"`
	EggLosses   int                   `json:"egg_losses"`
}

// GetOverview returns the full stock dashboard: every ingredient ledger row
// plus the feed and egg singletons.
func (s *StockService) GetOverview(ctx context.Context) (*StockOverview, error) {
	stocks, err := s.stockRepo.ListIngredientStocks(ctx)
	if err != nil {
		return nil, err
	}

	overview := &StockOverview{
		Ingredients: make([]IngredientStockView, 0, len(stocks)),
	}
	for _, stock := range stocks {
		overview.Ingredients = append(overview.Ingredients, newIngredientStockView(stock))
	}

	feedStock, err := s.stockRepo.GetFeedStock(ctx)
	if err != nil {
		return nil, err
	}
	if feedStock != nil {
		overview.FeedStockKg = feedStock.QuantityKg
	}

	eggStock, err := s.stockRepo.GetEggStock(ctx)
	if err != nil {
		return nil, err
	}
	if eggStock != nil {
		overview.EggStock = eggStock.Quantity
		overview.EggLosses = eggStock.Losses
	}

	return overview, nil
}

// ListLowStock returns the ingredient ledger rows sitting below their
// configured minimum. Ingredients with no minimum never appear.
func (s *StockService) ListLowStock(ctx context.Context) ([]IngredientStockView, error) {
	stocks, err := s.stockRepo.ListIngredientStocks(ctx)
	if err != nil {
		return nil, err
	}

	low := make([]IngredientStockView, 0)
	for _, stock := range stocks {
		if stock.BelowMinimum(stock.Ingredient.MinimumStockKg) {
			low = append(low, newIngredientStockView(stock))
		}
	}
	return low, nil
}

func newIngredientStockView(stock entity.IngredientStock) IngredientStockView {
	return IngredientStockView{
		IngredientID:            stock.IngredientID,
		IngredientName:          stock.Ingredient.Name,
		CumulativeIntakeKg:      stock.CumulativeIntakeKg,
		CumulativeConsumptionKg: stock.CumulativeConsumptionKg,
		CurrentBalanceKg:        stock.CurrentBalanceKg,
		AverageCostPerKg:        stock.AverageCostPerKg,
		MinimumStockKg:          stock.Ingredient.MinimumStockKg,
		BelowMinimum:            stock.BelowMinimum(stock.Ingredient.MinimumStockKg),
	}
}
