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
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

// errInsufficientStock aborts the transaction when the guarded decrement
// matched no rows.
var errInsufficientStock = errors.New("insufficient egg stock")

// CreateWithStockDebit atomically decrements the egg stock and appends the
// sale. The decrement is guarded (quantity >= sold) so a shortfall rolls the
// whole operation back and the sale is never written.
func (r *saleRepository) CreateWithStockDebit(ctx context.Context, sale *entity.SaleRecord) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.EggStock{}).
			Where("quantity >= ?", sale.QuantitySold).
			Update("quantity", gorm.Expr("quantity - ?", sale.QuantitySold))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errInsufficientStock
		}
		return tx.Create(sale).Error
	})
	if errors.Is(err, errInsufficientStock) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.SaleRecord, error) {
	var sale entity.SaleRecord
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.SaleRecord) error {
	return r.db.WithContext(ctx).Save(sale).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.SaleRecord, int64, error) {
	var sales []entity.SaleRecord
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.SaleRecord{})

	if params.Status != nil {
		query = query.Where("payment_status = ?", *params.Status)
	}
	if params.OverdueOnly {
		query = query.Where("payment_status = ? AND due_date < ?", enum.PaymentStatusPending, time.Now())
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
		Order("date DESC, created_at DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) ListPaidBetween(ctx context.Context, start, end time.Time) ([]entity.SaleRecord, error) {
	var sales []entity.SaleRecord
	err := r.db.WithContext(ctx).
		Where("payment_status = ? AND date >= ? AND date <= ?", enum.PaymentStatusPaid, start, end).
		Order("date ASC").
		Find(&sales).Error
	return sales, err
}
