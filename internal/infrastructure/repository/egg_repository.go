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

type eggRepository struct {
	db *gorm.DB
}

// NewEggRepository creates a new egg production repository
func NewEggRepository(db *gorm.DB) domainRepo.EggRepository {
	return &eggRepository{db: db}
}

// CreateProduction commits the record and the central stock credit in one
// transaction. Egg stock is a single central pool, not per shed.
func (r *eggRepository) CreateProduction(ctx context.Context, record *entity.EggProductionRecord) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return err
		}
		return tx.Model(&entity.EggStock{}).
			Where("1 = 1").
			Updates(map[string]interface{}{
				"quantity": gorm.Expr("quantity + ?", record.GoodEggs),
				"losses":   gorm.Expr("losses + ?", record.BrokenEggs),
			}).Error
	})
}

func (r *eggRepository) ListProductions(ctx context.Context, shedID *uuid.UUID, params *pagination.PaginationParams, startDate, endDate *time.Time) ([]entity.EggProductionRecord, int64, error) {
	var records []entity.EggProductionRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.EggProductionRecord{})

	if shedID != nil {
		query = query.Where("shed_id = ?", *shedID)
	}
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

func (r *eggRepository) ListBetween(ctx context.Context, start, end time.Time) ([]entity.EggProductionRecord, error) {
	var records []entity.EggProductionRecord
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&records).Error
	return records, err
}
