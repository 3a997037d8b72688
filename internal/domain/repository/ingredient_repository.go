package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/pkg/pagination"
)

// IngredientRepository defines the interface for ingredient registry operations
type IngredientRepository interface {
	Create(ctx context.Context, ingredient *entity.Ingredient) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error)
	GetByName(ctx context.Context, name string) (*entity.Ingredient, error)
	// GetByIDs retrieves multiple ingredients in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error)
	Update(ctx context.Context, ingredient *entity.Ingredient) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Ingredient, int64, error)
	// InUse reports whether any formula line or purchase record references
	// the ingredient, so deletes can enforce referential integrity.
	InUse(ctx context.Context, id uuid.UUID) (bool, error)
}

// StockRepository exposes read access to the stock ledgers. Mutation happens
// only through the mutator repositories so every write stays transactional.
type StockRepository interface {
	GetIngredientStock(ctx context.Context, ingredientID uuid.UUID) (*entity.IngredientStock, error)
	ListIngredientStocks(ctx context.Context) ([]entity.IngredientStock, error)
	GetFeedStock(ctx context.Context) (*entity.FeedStock, error)
	GetEggStock(ctx context.Context) (*entity.EggStock, error)
}
