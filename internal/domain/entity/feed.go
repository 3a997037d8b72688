package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedProductionRecord is an append-only log entry for a feed production run.
// TotalCost = (QuantityProducedKg / 1000) x the formula's cost per 1000 kg.
type FeedProductionRecord struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FormulaID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"formula_id"`
	FormulaName        string         `gorm:"size:255;not null" json:"formula_name"`
	Date               time.Time      `gorm:"type:date;not null;index" json:"date"`
	QuantityProducedKg float64        `gorm:"type:decimal(14,3);not null" json:"quantity_produced_kg"`
	TotalCost          float64        `gorm:"type:decimal(14,2);not null" json:"total_cost"`
	CostPerKg          float64        `gorm:"type:decimal(12,4);not null" json:"cost_per_kg"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Formula FeedFormula `gorm:"foreignKey:FormulaID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new production record
func (p *FeedProductionRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeedProductionRecord model
func (FeedProductionRecord) TableName() string {
	return "feed_production_records"
}

// FeedStock is the single-row counter of produced feed on hand, credited by
// production and debited by shed consumption.
type FeedStock struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	QuantityKg float64   `gorm:"type:decimal(14,3);default:0" json:"quantity_kg"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the feed stock row
func (s *FeedStock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeedStock model
func (FeedStock) TableName() string {
	return "feed_stock"
}
