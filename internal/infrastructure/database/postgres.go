package database

import (
	"fmt"
	"log"

	"github.com/granjatech/granja-api/internal/config"
	"github.com/granjatech/granja-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Master data
		&entity.Ingredient{},
		&entity.FeedFormula{},
		&entity.FormulaLine{},
		&entity.Shed{},
		&entity.ExpenseCategory{},

		// Ledgers
		&entity.IngredientStock{},
		&entity.FeedStock{},
		&entity.EggStock{},

		// Transaction logs
		&entity.PurchaseRecord{},
		&entity.FeedProductionRecord{},
		&entity.FeedConsumptionEvent{},
		&entity.EggProductionRecord{},
		&entity.SaleRecord{},
		&entity.ExpenseRecord{},
		&entity.MortalityEvent{},
		&entity.HusbandryEvent{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// SeedDefaultData creates the singleton stock rows and default expense
// categories when they are missing.
func SeedDefaultData(db *gorm.DB) error {
	var feedCount int64
	if err := db.Model(&entity.FeedStock{}).Count(&feedCount).Error; err != nil {
		return err
	}
	if feedCount == 0 {
		if err := db.Create(&entity.FeedStock{}).Error; err != nil {
			return fmt.Errorf("failed to seed feed stock: %w", err)
		}
	}

	var eggCount int64
	if err := db.Model(&entity.EggStock{}).Count(&eggCount).Error; err != nil {
		return err
	}
	if eggCount == 0 {
		if err := db.Create(&entity.EggStock{}).Error; err != nil {
			return fmt.Errorf("failed to seed egg stock: %w", err)
		}
	}

	categories := []string{"Feed", "Medication", "Labor", "Utilities", "Maintenance", "Other"}
	for _, name := range categories {
		var existing entity.ExpenseCategory
		if err := db.Where("name = ?", name).First(&existing).Error; err != nil {
			if err := db.Create(&entity.ExpenseCategory{Name: name}).Error; err != nil {
				log.Printf("Warning: failed to create expense category %s: %v", name, err)
			}
		}
	}

	return nil
}
