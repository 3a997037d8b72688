package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/entity"
	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"github.com/granjatech/granja-api/pkg/pagination"
	"gorm.io/gorm"
)

type shedRepository struct {
	db *gorm.DB
}

// NewShedRepository creates a new shed repository
func NewShedRepository(db *gorm.DB) domainRepo.ShedRepository {
	return &shedRepository{db: db}
}

func (r *shedRepository) Create(ctx context.Context, shed *entity.Shed) error {
	return r.db.WithContext(ctx).Create(shed).Error
}

func (r *shedRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Shed, error) {
	var shed entity.Shed
	err := r.db.WithContext(ctx).First(&shed, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &shed, err
}

func (r *shedRepository) Update(ctx context.Context, shed *entity.Shed) error {
	return r.db.WithContext(ctx).Save(shed).Error
}

func (r *shedRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Shed{}, "id = ?", id).Error
}

func (r *shedRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Shed, int64, error) {
	var sheds []entity.Shed
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Shed{})

	if search != "" {
		query = query.Where("name ILIKE ? OR batch_label ILIKE ?", "%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("name ASC").
		Find(&sheds).Error

	return sheds, total, err
}

// AddMortality commits the event, the clamped bird count debit and the loss
// credit in one transaction.
func (r *shedRepository) AddMortality(ctx context.Context, event *entity.MortalityEvent) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(event).Error; err != nil {
			return err
		}
		return tx.Model(&entity.Shed{}).
			Where("id = ?", event.ShedID).
			Updates(map[string]interface{}{
				"bird_count":        gorm.Expr("GREATEST(bird_count - ?, 0)", event.Count),
				"cumulative_losses": gorm.Expr("cumulative_losses + ?", event.Count),
			}).Error
	})
}

func (r *shedRepository) ListMortalities(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.MortalityEvent, int64, error) {
	var events []entity.MortalityEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.MortalityEvent{}).
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

func (r *shedRepository) MortalitiesBetween(ctx context.Context, start, end time.Time) ([]entity.MortalityEvent, error) {
	var events []entity.MortalityEvent
	err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("date ASC").
		Find(&events).Error
	return events, err
}

func (r *shedRepository) AddHusbandry(ctx context.Context, event *entity.HusbandryEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *shedRepository) ListHusbandry(ctx context.Context, shedID uuid.UUID, params *pagination.PaginationParams) ([]entity.HusbandryEvent, int64, error) {
	var events []entity.HusbandryEvent
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.HusbandryEvent{}).
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
