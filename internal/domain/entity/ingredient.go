package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Ingredient represents a raw feed ingredient in the registry
type Ingredient struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name           string         `gorm:"size:255;unique;not null" json:"name"`
	PurchaseUnit   string         `gorm:"size:50;not null" json:"purchase_unit"`
	UnitToKgFactor float64        `gorm:"type:decimal(12,4);not null" json:"unit_to_kg_factor"`
	MinimumStockKg float64        `gorm:"type:decimal(12,3);default:0" json:"minimum_stock_kg"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Stock     *IngredientStock `gorm:"foreignKey:IngredientID" json:"stock,omitempty"`
	Purchases []PurchaseRecord `gorm:"foreignKey:IngredientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new ingredient
func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Ingredient model
func (Ingredient) TableName() string {
	return "ingredients"
}

// IngredientStock is the per-ingredient ledger entry. The balance is always
// recomputed as intake minus consumption, clamped at zero, inside the same
// transaction as the mutation that touched it.
type IngredientStock struct {
	ID                      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	IngredientID            uuid.UUID `gorm:"type:uuid;unique;not null;index" json:"ingredient_id"`
	CumulativeIntakeKg      float64   `gorm:"type:decimal(14,3);default:0" json:"cumulative_intake_kg"`
	CumulativeConsumptionKg float64   `gorm:"type:decimal(14,3);default:0" json:"cumulative_consumption_kg"`
	CurrentBalanceKg        float64   `gorm:"type:decimal(14,3);default:0" json:"current_balance_kg"`
	AverageCostPerKg        float64   `gorm:"type:decimal(12,4);default:0" json:"average_cost_per_kg"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`

	// Relationships
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new stock entry
func (s *IngredientStock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the IngredientStock model
func (IngredientStock) TableName() string {
	return "ingredient_stocks"
}

// Recompute sets the current balance from the cumulative counters, clamped
// at zero so a shortfall can never drive the ledger negative.
func (s *IngredientStock) Recompute() {
	s.CurrentBalanceKg = s.CumulativeIntakeKg - s.CumulativeConsumptionKg
	if s.CurrentBalanceKg < 0 {
		s.CurrentBalanceKg = 0
	}
}

// BelowMinimum reports whether the balance has fallen under the ingredient's
// configured minimum stock level.
func (s *IngredientStock) BelowMinimum(minimumKg float64) bool {
	return minimumKg > 0 && s.CurrentBalanceKg < minimumKg
}

// ApplyIntake credits the ledger with a purchase and updates the average
// cost per kg according to the configured costing policy. With the
// last-purchase policy the average is overwritten by this purchase's price;
// with the weighted-average policy it is blended by intake weight.
func (s *IngredientStock) ApplyIntake(totalKg, pricePerKg float64, policy enum.CostingPolicy) {
	previousIntake := s.CumulativeIntakeKg
	s.CumulativeIntakeKg += totalKg
	s.Recompute()

	switch policy {
	case enum.CostingPolicyWeightedAverage:
		if s.CumulativeIntakeKg > 0 {
			s.AverageCostPerKg = (s.AverageCostPerKg*previousIntake + pricePerKg*totalKg) / s.CumulativeIntakeKg
		} else {
			s.AverageCostPerKg = pricePerKg
		}
	default:
		s.AverageCostPerKg = pricePerKg
	}
}
