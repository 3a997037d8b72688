package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/pagination"
	"gorm.io/gorm"
)

type feedRepository struct {
	db *gorm.DB
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(db *gorm.DB) domainRepo.FeedRepository {
	return &feedRepository{db: db}
}

// CreateProduction commits the production record, the feed stock credit and
// every ingredient ledger debit in one transaction. Debits are clamped in
// SQL: consumption grows by at most the current balance, and the balance
// bottoms out at zero, which keeps balance = intake - consumption intact.
func (r *feedRepository) CreateProduction(ctx context.Context, record *entity.FeedProductionRecord, debits map[uuid.UUID]float64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}

		if err := tx.Model(&entity.FeedStock{}).
			Where("1 = 1").
			Update("quantity_kg", gorm.Expr("quantity_kg + ?", record.QuantityProducedKg)).Error; err != nil {
			return err
		}

		for ingredientID, kg := range debits {
			if kg <= 0 {
				continue
			}
			// Ingredients without a ledger entry match zero rows and are
			// skipped, per the permissive production policy.
			if err := tx.Model(&entity.IngredientStock{}).
				Where("ingredient_id = ?", ingredientID).
				Updates(map[string]interface{}{
					"cumulative_consumption_kg": gorm.Expr("cumulative_consumption_kg + LEAST(current_balance_kg, ?)", kg),
					"current_balance_kg":        gorm.Expr("GREATEST(current_balance_kg - ?, 0)", kg),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *feedRepository) ListProductions(ctx context.Context, params *pagination.PaginationParams, startDate, endDate *time.Time) ([]entity.FeedProductionRecord, int64, error) {
	var records []entity.FeedProductionRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FeedProductionRecord{})

	if startDate != nil {
		query = query.Where("date >= ?", *startDate)
	}
	if endDate != nil {
		query = query.Where("date <= ?", *endDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&records).Error

	return records, total, err
}

// CreateConsumption commits the consumption event and the clamped feed stock
// debit in one transaction.
func (r *feedRepository) CreateConsumption(ctx context.Context, event *entity.FeedConsumptionEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Model(&entity.FeedStock{}).
			Where("1 = 1").
			Update("quantity_kg", gorm.Expr("GREATEST(quantity_kg - ?, 0)", event.QuantityKg)).Error
	})
}

func (r *feedRepository) ListConsumptions(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.FeedConsumptionEvent, int64, error) {
	var events []entity.FeedConsumptionEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FeedConsumptionEvent{}).
		Where("shed_id = ?", shedID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("date DESC, created_at DESC").
		Find(&events).Error

	return events, total, err
}
