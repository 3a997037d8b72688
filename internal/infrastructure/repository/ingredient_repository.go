package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/pagination"
	"gorm.io/gorm"
)

type ingredientRepository struct {
	db *gorm.DB
}

// NewIngredientRepository creates a new ingredient repository
func NewIngredientRepository(db *gorm.DB) domainRepo.IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := r.db.WithContext(ctx).
		Preload("Stock").
		First(&ingredient, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ingredient, err
}

func (r *ingredientRepository) GetByName(ctx context.Context, name string) (*entity.Ingredient, error) {
	var ingredient entity.Ingredient
	err := r.db.WithContext(ctx).
		Preload("Stock").
		First(&ingredient, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ingredient, err
}

func (r *ingredientRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Ingredient, error) {
	if len(ids) == 0 {
		return []entity.Ingredient{}, nil
	}
	var ingredients []entity.Ingredient
	err := r.db.WithContext(ctx).
		Preload("Stock").
		Where("id IN ?", ids).
		Find(&ingredients).Error
	return ingredients, err
}

func (r *ingredientRepository) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	return r.db.WithContext(ctx).Save(ingredient).Error
}

func (r *ingredientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Ingredient{}, "id = ?", id).Error
}

func (r *ingredientRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Ingredient, int64, error) {
	var ingredients []entity.Ingredient
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Ingredient{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Stock").
		Order("name ASC").
		Find(&ingredients).Error

	return ingredients, total, err
}

func (r *ingredientRepository) InUse(ctx context.Context, id uuid.UUID) (bool, error) {
	var lineCount int64
	if err := r.db.WithContext(ctx).Model(&entity.FormulaLine{}).
		Where("ingredient_id = ?", id).
		Count(&lineCount).Error; err != nil {
		return false, err
	}
	if lineCount > 0 {
		return true, nil
	}

	var purchaseCount int64
	if err := r.db.WithContext(ctx).Model(&entity.PurchaseRecord{}).
		Where("ingredient_id = ?", id).
		Count(&purchaseCount).Error; err != nil {
		return false, err
	}
	return purchaseCount > 0, nil
}

type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository creates a new stock ledger read repository
func NewStockRepository(db *gorm.DB) domainRepo.StockRepository {
	return &stockRepository{db: db}
}

func (r *stockRepository) GetIngredientStock(ctx context.Context, ingredientID uuid.UUID) (*entity.IngredientStock, error) {
	var stock entity.IngredientStock
	err := r.db.WithContext(ctx).First(&stock, "ingredient_id = ?", ingredientID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}

func (r *stockRepository) ListIngredientStocks(ctx context.Context) ([]entity.IngredientStock, error) {
	var stocks []entity.IngredientStock
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Find(&stocks).Error
	return stocks, err
}

func (r *stockRepository) GetFeedStock(ctx context.Context) (*entity.FeedStock, error) {
	var stock entity.FeedStock
	err := r.db.WithContext(ctx).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}

func (r *stockRepository) GetEggStock(ctx context.Context) (*entity.EggStock, error) {
	var stock entity.EggStock
	err := r.db.WithContext(ctx).First(&stock).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &stock, err
}
