package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/events"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// FeedService handles feed production and shed feed consumption. Production
// follows the permissive policy: ingredient shortfalls clamp the debit at
// zero and surface as warnings, they never block the run.
type FeedService struct {
	feedRepo    repository.FeedRepository
	formulaRepo repository.FormulaRepository
	shedRepo    repository.ShedRepository
	stockRepo   repository.StockRepository
	bus         *events.Bus
}

// NewFeedService creates a new feed service
func NewFeedService(
	feedRepo repository.FeedRepository,
	formulaRepo repository.FormulaRepository,
	shedRepo repository.ShedRepository,
	stockRepo repository.StockRepository,
	bus *events.Bus,
) *FeedService {
	return &FeedService{
		feedRepo:    feedRepo,
		formulaRepo: formulaRepo,
		shedRepo:    shedRepo,
		stockRepo:   stockRepo,
		bus:         bus,
	}
}

// StockWarning describes a non-blocking inventory shortfall detected during
// a permissive mutation.
type StockWarning struct {
	IngredientID   uuid.UUID `json:"ingredient_id"`
	IngredientName string    `json:"ingredient_name,omitempty"`
	RequiredKg     float64   `json:"required_kg"`
	AvailableKg    float64   `json:"available_kg"`
	Message        string    `json:"message"`
}

// ProductionResult is the outcome of a feed production run
type ProductionResult struct {
	Record   *entity.FeedProductionRecord `json:"record"`
	Warnings []StockWarning               `json:"warnings,omitempty"`
}

// ProduceFeedInput represents the produce feed input
type ProduceFeedInput struct {
	FormulaID  uuid.UUID
	Date       time.Time
	QuantityKg float64
}

// ProduceFeed records a production run: appends the record, credits the feed
// stock and debits each formula ingredient proportionally. Cost is computed
// on the 1000 kg basis: totalCost = (quantity / 1000) x costPer1000Kg.
func (s *FeedService) ProduceFeed(ctx context.Context, input *ProduceFeedInput) (*ProductionResult, error) {
	if input.QuantityKg <= 0 {
		return nil, apperror.NewBadRequestError("Quantity to produce must be greater than zero")
	}

	formula, err := s.formulaRepo.GetByID(ctx, input.FormulaID)
	if err != nil {
		return nil, err
	}
	if formula == nil {
		return nil, apperror.NewNotFoundError("Formula")
	}
	if len(formula.Lines) == 0 {
		return nil, apperror.NewBadRequestError("Formula has no ingredient lines")
	}

	proportion := input.QuantityKg / 1000
	totalCost := proportion * formula.CostPer1000Kg()

	record := &entity.FeedProductionRecord{
		FormulaID:          formula.ID,
		FormulaName:        formula.Name,
		Date:               input.Date,
		QuantityProducedKg: input.QuantityKg,
		TotalCost:          totalCost,
		CostPerKg:          formula.CostPerKg,
	}

	// Warnings come from a pre-write snapshot; the actual debits are clamped
	// again in SQL inside the transaction.
	debits := make(map[uuid.UUID]float64, len(formula.Lines))
	var warnings []StockWarning
	for _, line := range formula.Lines {
		requiredKg := line.QuantityKg * proportion
		debits[line.IngredientID] = requiredKg

		stock, err := s.stockRepo.GetIngredientStock(ctx, line.IngredientID)
		if err != nil {
			return nil, err
		}
		if stock == nil {
			warnings = append(warnings, StockWarning{
				IngredientID:   line.IngredientID,
				IngredientName: line.Ingredient.Name,
				RequiredKg:     requiredKg,
				Message:        "No stock entry for ingredient; debit skipped",
			})
			continue
		}
		if stock.CurrentBalanceKg < requiredKg {
			warnings = append(warnings, StockWarning{
				IngredientID:   line.IngredientID,
				IngredientName: line.Ingredient.Name,
				RequiredKg:     requiredKg,
				AvailableKg:    stock.CurrentBalanceKg,
				Message:        fmt.Sprintf("Insufficient stock: needed %.3f kg, had %.3f kg; balance clamped at zero", requiredKg, stock.CurrentBalanceKg),
			})
		}
	}

	if err := s.feedRepo.CreateProduction(ctx, record, debits); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TypeFeedStock, map[string]interface{}{
		"produced_kg": input.QuantityKg,
		"formula_id":  formula.ID,
	})

	return &ProductionResult{Record: record, Warnings: warnings}, nil
}

// ListProductions lists feed production records
func (s *FeedService) ListProductions(ctx context.Context, params *pagination.PaginationParams, startDate, endDate *time.Time) (*pagination.PaginatedResult[entity.FeedProductionRecord], error) {
	records, total, err := s.feedRepo.ListProductions(ctx, params, startDate, endDate)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(records, pag), nil
}

// ConsumptionResult is the outcome of recording shed feed consumption
type ConsumptionResult struct {
	Event    *entity.FeedConsumptionEvent `json:"event"`
	Warnings []StockWarning               `json:"warnings,omitempty"`
}

// RecordConsumptionInput represents the record consumption input
type RecordConsumptionInput struct {
	ShedID     uuid.UUID
	Date       time.Time
	QuantityKg float64
}

// RecordConsumption logs shed feed usage and debits the feed stock, clamped
// at zero with a warning when the stock runs short (permissive, same policy
// as production).
func (s *FeedService) RecordConsumption(ctx context.Context, input *RecordConsumptionInput) (*ConsumptionResult, error) {
	if input.QuantityKg <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be greater than zero")
	}

	shed, err := s.shedRepo.GetByID(ctx, input.ShedID)
	if err != nil {
		return nil, err
	}
	if shed == nil {
		return nil, apperror.NewNotFoundError("Shed")
	}

	var warnings []StockWarning
	feedStock, err := s.stockRepo.GetFeedStock(ctx)
	if err != nil {
		return nil, err
	}
	if feedStock != nil && feedStock.QuantityKg < input.QuantityKg {
		warnings = append(warnings, StockWarning{
			RequiredKg:  input.QuantityKg,
			AvailableKg: feedStock.QuantityKg,
			Message:     fmt.Sprintf("Insufficient feed stock: needed %.3f kg, had %.3f kg; stock clamped at zero", input.QuantityKg, feedStock.QuantityKg),
		})
	}

	event := &entity.FeedConsumptionEvent{
		ShedID:     shed.ID,
		Date:       input.Date,
		QuantityKg: input.QuantityKg,
	}

	if err := s.feedRepo.CreateConsumption(ctx, event); err != nil {
		return nil, err
	}

	s.bus.Publish(events.TypeFeedStock, map[string]interface{}{
		"consumed_kg": input.QuantityKg,
		"shed_id":     shed.ID,
	})

	return &ConsumptionResult{Event: event, Warnings: warnings}, nil
}

// ListConsumptions lists feed consumption events for a shed
func (s *FeedService) ListConsumptions(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.FeedConsumptionEvent], error) {
	events, total, err := s.feedRepo.ListConsumptions(ctx, shedID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(events, pag), nil
}
