package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/granjatech/granja-api/internal/domain/entity"
	domainRepo "github.com/granjatech/granja-api/internal/domain/repository"
	"gorm.io/gorm"
)

type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository creates a new snapshot repository
func NewSnapshotRepository(db *gorm.DB) domainRepo.SnapshotRepository {
	return &snapshotRepository{db: db}
}

// collectionModel returns a fresh slice pointer for a collection name, or nil
// for unknown keys. The mapping doubles as the reset allow-list.
func collectionModel(name string) interface{} {
	switch name {
	case domainRepo.CollectionIngredients:
		return &[]entity.Ingredient{}
	case domainRepo.CollectionIngredientStocks:
		return &[]entity.IngredientStock{}
	case domainRepo.CollectionPurchases:
		return &[]entity.PurchaseRecord{}
	case domainRepo.CollectionFormulas:
		return &[]entity.FeedFormula{}
	case domainRepo.CollectionFormulaLines:
		return &[]entity.FormulaLine{}
	case domainRepo.CollectionFeedProductions:
		return &[]entity.FeedProductionRecord{}
	case domainRepo.CollectionFeedStock:
		return &[]entity.FeedStock{}
	case domainRepo.CollectionFeedConsumptions:
		return &[]entity.FeedConsumptionEvent{}
	case domainRepo.CollectionSheds:
		return &[]entity.Shed{}
	case domainRepo.CollectionMortalities:
		return &[]entity.MortalityEvent{}
	case domainRepo.CollectionHusbandry:
		return &[]entity.HusbandryEvent{}
	case domainRepo.CollectionEggProductions:
		return &[]entity.EggProductionRecord{}
	case domainRepo.CollectionEggStock:
		return &[]entity.EggStock{}
	case domainRepo.CollectionSales:
		return &[]entity.SaleRecord{}
	case domainRepo.CollectionExpenses:
		return &[]entity.ExpenseRecord{}
	case domainRepo.CollectionExpenseCategories:
		return &[]entity.ExpenseCategory{}
	}
	return nil
}

// allCollections lists every collection in foreign-key dependency order:
// parents before children. Inserts walk it forward, deletes walk it backward,
// so restore and reset never trip over the referential constraints that
// AutoMigrate creates (formula_lines -> feed_formulas/ingredients,
// ingredient_stocks/purchase_records -> ingredients, the shed event tables ->
// sheds, expense_records -> expense_categories).
var allCollections = []string{
	domainRepo.CollectionIngredients,
	domainRepo.CollectionSheds,
	domainRepo.CollectionExpenseCategories,
	domainRepo.CollectionFormulas,
	domainRepo.CollectionFormulaLines,
	domainRepo.CollectionIngredientStocks,
	domainRepo.CollectionPurchases,
	domainRepo.CollectionFeedProductions,
	domainRepo.CollectionFeedStock,
	domainRepo.CollectionFeedConsumptions,
	domainRepo.CollectionMortalities,
	domainRepo.CollectionHusbandry,
	domainRepo.CollectionEggProductions,
	domainRepo.CollectionEggStock,
	domainRepo.CollectionSales,
	domainRepo.CollectionExpenses,
}

func (r *snapshotRepository) Export(ctx context.Context) (domainRepo.Snapshot, error) {
	snapshot := make(domainRepo.Snapshot, len(allCollections))
	for _, name := range allCollections {
		dest := collectionModel(name)
		if err := r.db.WithContext(ctx).Table(name).Find(dest).Error; err != nil {
			return nil, fmt.Errorf("failed to export %s: %w", name, err)
		}
		snapshot[name] = dest
	}
	return snapshot, nil
}

// Import overwrites each known collection present in the payload inside one
// transaction. Unknown keys are ignored; collections absent from the payload
// are left as they are. Deletes run children first and inserts parents first
// so a full export always restores cleanly against the foreign keys.
func (r *snapshotRepository) Import(ctx context.Context, snapshot map[string]interface{}) error {
	decoded := make(map[string]interface{}, len(snapshot))
	for name, raw := range snapshot {
		dest := collectionModel(name)
		if dest == nil {
			continue
		}

		data, err := json.Marshal(raw)
		if err != nil {
			return fmt.Errorf("failed to re-encode %s: %w", name, err)
		}
		if err := json.Unmarshal(data, dest); err != nil {
			return fmt.Errorf("failed to decode %s: %w", name, err)
		}
		decoded[name] = dest
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := len(allCollections) - 1; i >= 0; i-- {
			name := allCollections[i]
			if _, ok := decoded[name]; !ok {
				continue
			}
			if err := tx.Exec("DELETE FROM " + name).Error; err != nil {
				return fmt.Errorf("failed to clear %s: %w", name, err)
			}
		}

		for _, name := range allCollections {
			dest, ok := decoded[name]
			if !ok {
				continue
			}
			if reflect.ValueOf(dest).Elem().Len() > 0 {
				if err := tx.Table(name).CreateInBatches(dest, 200).Error; err != nil {
					return fmt.Errorf("failed to import %s: %w", name, err)
				}
			}
		}
		return nil
	})
}

// Reset clears every allow-listed collection, children before parents, and
// reseeds the singleton stock rows. Tables outside the allow-list keep their
// contents.
func (r *snapshotRepository) Reset(ctx context.Context) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := len(allCollections) - 1; i >= 0; i-- {
			if err := tx.Exec("DELETE FROM " + allCollections[i]).Error; err != nil {
				return fmt.Errorf("failed to reset %s: %w", allCollections[i], err)
			}
		}
		if err := tx.Create(&entity.FeedStock{}).Error; err != nil {
			return err
		}
		return tx.Create(&entity.EggStock{}).Error
	})
}
