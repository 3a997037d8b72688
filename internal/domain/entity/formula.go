package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"gorm.io/gorm"
)

// FeedFormula is a weighted recipe of ingredients defining a feed's per-kg
// cost and composition.
type FeedFormula struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name          string         `gorm:"size:255;not null" json:"name"`
	BirdPhase     enum.BirdPhase `gorm:"default:0" json:"bird_phase"`
	TotalWeightKg float64        `gorm:"type:decimal(14,3);default:0" json:"total_weight_kg"`
	TotalCost     float64        `gorm:"type:decimal(14,2);default:0" json:"total_cost"`
	CostPerKg     float64        `gorm:"type:decimal(12,4);default:0" json:"cost_per_kg"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Lines []FormulaLine `gorm:"foreignKey:FormulaID" json:"lines,omitempty"`
}

// BeforeCreate generates a UUID before creating a new formula
func (f *FeedFormula) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeedFormula model
func (FeedFormula) TableName() string {
	return "feed_formulas"
}

// CostPer1000Kg returns the cost of producing one metric ton of this feed.
func (f *FeedFormula) CostPer1000Kg() float64 {
	return f.CostPerKg * 1000
}

// RecomputeTotals recalculates the aggregate fields from the line list.
// CostPerKg is zero when the formula has no weight.
func (f *FeedFormula) RecomputeTotals() {
	f.TotalWeightKg = 0
	f.TotalCost = 0
	for _, line := range f.Lines {
		f.TotalWeightKg += line.QuantityKg
		f.TotalCost += line.LineCost
	}
	if f.TotalWeightKg > 0 {
		f.CostPerKg = f.TotalCost / f.TotalWeightKg
	} else {
		f.CostPerKg = 0
	}
}

// FormulaLine is one ingredient line inside a feed formula. The unit cost is
// the ingredient's ledger average cost at save time; stale prices are
// accepted and never re-priced on later reads.
type FormulaLine struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FormulaID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"formula_id"`
	IngredientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	QuantityKg   float64        `gorm:"type:decimal(12,3);not null" json:"quantity_kg"`
	UnitCost     float64        `gorm:"type:decimal(12,4);not null" json:"unit_cost"`
	LineCost     float64        `gorm:"type:decimal(14,2);not null" json:"line_cost"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Formula    FeedFormula `gorm:"foreignKey:FormulaID" json:"-"`
	Ingredient Ingredient  `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// BeforeCreate generates a UUID before creating a new formula line
func (l *FormulaLine) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FormulaLine model
func (FormulaLine) TableName() string {
	return "formula_lines"
}
