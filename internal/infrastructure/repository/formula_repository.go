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

type formulaRepository struct {
	db *gorm.DB
}

// NewFormulaRepository creates a new formula repository
func NewFormulaRepository(db *gorm.DB) domainRepo.FormulaRepository {
	return &formulaRepository{db: db}
}

// Upsert saves the formula header and replaces its full line set in one
// transaction. Lines are replaced wholesale because the authoring flow always
// submits the complete list.
func (r *formulaRepository) Upsert(ctx context.Context, formula *entity.FeedFormula) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lines := formula.Lines
		formula.Lines = nil

		if err := tx.Save(formula).Error; err != nil {
			return err
		}

		if err := tx.Unscoped().
			Where("formula_id = ?", formula.ID).
			Delete(&entity.FormulaLine{}).Error; err != nil {
			return err
		}

		for i := range lines {
			lines[i].ID = uuid.Nil
			lines[i].FormulaID = formula.ID
		}
		if len(lines) > 0 {
			if err := tx.Create(&lines).Error; err != nil {
				return err
			}
		}

		formula.Lines = lines
		return nil
	})
}

func (r *formulaRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FeedFormula, error) {
	var formula entity.FeedFormula
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Ingredient").
		First(&formula, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &formula, err
}

func (r *formulaRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.FeedFormula, int64, error) {
	var formulas []entity.FeedFormula
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.FeedFormula{})

	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Preload("Lines").
		Order("name ASC").
		Find(&formulas).Error

	return formulas, total, err
}

func (r *formulaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("formula_id = ?", id).Delete(&entity.FormulaLine{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.FeedFormula{}, "id = ?", id).Error
	})
}
