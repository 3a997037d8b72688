package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/apperror"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// IngredientService handles ingredient registry operations
type IngredientService struct {
	ingredientRepo repository.IngredientRepository
}

// NewIngredientService creates a new ingredient service
func NewIngredientService(ingredientRepo repository.IngredientRepository) *IngredientService {
	return &IngredientService{ingredientRepo: ingredientRepo}
}

// CreateIngredientInput represents the create ingredient input
type CreateIngredientInput struct {
	Name           string
	PurchaseUnit   string
	UnitToKgFactor float64
	MinimumStockKg float64
}

// CreateIngredient registers a new ingredient
func (s *IngredientService) CreateIngredient(ctx context.Context, input *CreateIngredientInput) (*entity.Ingredient, error) {
	if input.UnitToKgFactor <= 0 {
		return nil, apperror.NewBadRequestError("Unit to kg factor must be greater than zero")
	}

	existing, err := s.ingredientRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("An ingredient with this name already exists")
	}

	ingredient := &entity.Ingredient{
		Name:           input.Name,
		PurchaseUnit:   input.PurchaseUnit,
		UnitToKgFactor: input.UnitToKgFactor,
		MinimumStockKg: input.MinimumStockKg,
	}

	if err := s.ingredientRepo.Create(ctx, ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// GetIngredient retrieves an ingredient by ID
func (s *IngredientService) GetIngredient(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}
	return ingredient, nil
}

// ListIngredients lists ingredients with optional name search
func (s *IngredientService) ListIngredients(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Ingredient], error) {
	ingredients, total, err := s.ingredientRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(ingredients, pag), nil
}

// UpdateIngredientInput represents the update ingredient input
type UpdateIngredientInput struct {
	ID             uuid.UUID
	Name           *string
	PurchaseUnit   *string
	UnitToKgFactor *float64
	MinimumStockKg *float64
}

// UpdateIngredient edits an ingredient in place; the id is immutable
func (s *IngredientService) UpdateIngredient(ctx context.Context, input *UpdateIngredientInput) (*entity.Ingredient, error) {
	ingredient, err := s.ingredientRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if ingredient == nil {
		return nil, apperror.NewNotFoundError("Ingredient")
	}

	if input.Name != nil {
		ingredient.Name = *input.Name
	}
	if input.PurchaseUnit != nil {
		ingredient.PurchaseUnit = *input.PurchaseUnit
	}
	if input.UnitToKgFactor != nil {
		if *input.UnitToKgFactor <= 0 {
			return nil, apperror.NewBadRequestError("Unit to kg factor must be greater than zero")
		}
		ingredient.UnitToKgFactor = *input.UnitToKgFactor
	}
	if input.MinimumStockKg != nil {
		ingredient.MinimumStockKg = *input.MinimumStockKg
	}

	if err := s.ingredientRepo.Update(ctx, ingredient); err != nil {
		return nil, err
	}

	return ingredient, nil
}

// DeleteIngredient removes an ingredient unless formulas or purchases still
// reference it.
func (s *IngredientService) DeleteIngredient(ctx context.Context, id uuid.UUID) error {
	ingredient, err := s.ingredientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if ingredient == nil {
		return apperror.NewNotFoundError("Ingredient")
	}

	inUse, err := s.ingredientRepo.InUse(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return apperror.NewConflictError("Ingredient is referenced by formulas or purchases and cannot be deleted")
	}

	return s.ingredientRepo.Delete(ctx, id)
}
