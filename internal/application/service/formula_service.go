package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// FormulaService handles feed formula authoring
type FormulaService struct {
	formulaRepo    repository.FormulaRepository
	ingredientRepo repository.IngredientRepository
	stockRepo      repository.StockRepository
}

// NewFormulaService creates a new formula service
func NewFormulaService(
	formulaRepo repository.FormulaRepository,
	ingredientRepo repository.IngredientRepository,
	stockRepo repository.StockRepository,
) *FormulaService {
	return &FormulaService{
		formulaRepo:    formulaRepo,
		ingredientRepo: ingredientRepo,
		stockRepo:      stockRepo,
	}
}

// FormulaLineInput represents one ingredient line in a formula
type FormulaLineInput struct {
	IngredientID uuid.UUID
	QuantityKg   float64
}

// SaveFormulaInput represents the upsert formula input. A nil ID creates a
// new formula; a set ID replaces the existing one.
type SaveFormulaInput struct {
	ID        *uuid.UUID
	Name      string
	BirdPhase enum.BirdPhase
	Lines     []FormulaLineInput
}

// SaveFormula validates and persists a formula. Each line is priced from the
// ingredient ledger's current average cost at save time; the price is not
// refreshed afterwards.
func (s *FormulaService) SaveFormula(ctx context.Context, input *SaveFormulaInput) (*entity.FeedFormula, error) {
	if len(input.Lines) == 0 {
		return nil, apperror.NewBadRequestError("A formula needs at least one ingredient line")
	}

	seen := make(map[uuid.UUID]bool, len(input.Lines))
	ingredientIDs := make([]uuid.UUID, 0, len(input.Lines))
	for _, line := range input.Lines {
		if line.QuantityKg <= 0 {
			return nil, apperror.NewBadRequestError("Line quantity must be greater than zero")
		}
		if seen[line.IngredientID] {
			return nil, apperror.NewBadRequestError("Duplicate ingredient in formula")
		}
		seen[line.IngredientID] = true
		ingredientIDs = append(ingredientIDs, line.IngredientID)
	}

	ingredients, err := s.ingredientRepo.GetByIDs(ctx, ingredientIDs)
	if err != nil {
		return nil, err
	}
	ingredientMap := make(map[uuid.UUID]*entity.Ingredient, len(ingredients))
	for i := range ingredients {
		ingredientMap[ingredients[i].ID] = &ingredients[i]
	}

	formula := &entity.FeedFormula{
		Name:      input.Name,
		BirdPhase: input.BirdPhase,
	}
	if input.ID != nil {
		existing, err := s.formulaRepo.GetByID(ctx, *input.ID)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, apperror.NewNotFoundError("Formula")
		}
		formula.ID = *input.ID
		formula.CreatedAt = existing.CreatedAt
	}

	lines := make([]entity.FormulaLine, 0, len(input.Lines))
	for _, line := range input.Lines {
		ingredient, exists := ingredientMap[line.IngredientID]
		if !exists {
			return nil, apperror.NewNotFoundError(fmt.Sprintf("Ingredient %s", line.IngredientID))
		}

		unitCost := 0.0
		if stock, err := s.stockRepo.GetIngredientStock(ctx, ingredient.ID); err != nil {
			return nil, err
		} else if stock != nil {
			unitCost = stock.AverageCostPerKg
		}

		lines = append(lines, entity.FormulaLine{
			IngredientID: ingredient.ID,
			QuantityKg:   line.QuantityKg,
			UnitCost:     unitCost,
			LineCost:     line.QuantityKg * unitCost,
		})
	}

	formula.Lines = lines
	formula.RecomputeTotals()

	if err := s.formulaRepo.Upsert(ctx, formula); err != nil {
		return nil, err
	}

	return formula, nil
}

// GetFormula retrieves a formula with its lines
func (s *FormulaService) GetFormula(ctx context.Context, id uuid.UUID) (*entity.FeedFormula, error) {
	formula, err := s.formulaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if formula == nil {
		return nil, apperror.NewNotFoundError("Formula")
	}
	return formula, nil
}

// ListFormulas lists formulas with optional name search
func (s *FormulaService) ListFormulas(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.FeedFormula], error) {
	formulas, total, err := s.formulaRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(formulas, pag), nil
}

// DeleteFormula removes a formula and its lines
func (s *FormulaService) DeleteFormula(ctx context.Context, id uuid.UUID) error {
	formula, err := s.formulaRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if formula == nil {
		return apperror.NewNotFoundError("Formula")
	}
	return s.formulaRepo.Delete(ctx, id)
}
