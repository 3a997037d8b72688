package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"github.com/granjatech/granja-api/internal/domain/enum"
	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

// CreateWithIntake writes the purchase record and the ledger credit in one
// transaction so intake can never be recorded without the stock credit. The
// ledger row is read under FOR UPDATE before the costing math runs, so two
// concurrent purchases of the same ingredient serialize rather than both
// applying their intake to the same stale snapshot.
func (r *purchaseRepository) CreateWithIntake(ctx context.Context, record *entity.PurchaseRecord, policy enum.CostingPolicy) (*entity.IngredientStock, error) {
	var stock entity.IngredientStock
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&stock, "ingredient_id = ?", record.IngredientID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// First purchase of this ingredient creates its ledger entry.
			stock = entity.IngredientStock{IngredientID: record.IngredientID}
		} else if err != nil {
			return err
		}

		stock.ApplyIntake(record.TotalKg, record.PricePerKg, policy)
		return tx.Save(&stock).Error
	})
	if err != nil {
		return nil, err
	}
	return &stock, nil
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRecord, error) {
	var record entity.PurchaseRecord
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		First(&record, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.PurchaseRecord, int64, error) {
	var records []entity.PurchaseRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.PurchaseRecord{})

	if params.IngredientID != nil {
		query = query.Where("ingredient_id = ?", *params.IngredientID)
	}
	if params.StartDate != nil {
		query = query.Where("date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Ingredient").
		Order("date DESC, created_at DESC").
		Find(&records).Error

	return records, total, err
}

func (r *purchaseRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.PurchaseRecord, error) {
	var records []entity.PurchaseRecord
	err := r.db.WithContext(ctx).
		Preload("Ingredient").
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
