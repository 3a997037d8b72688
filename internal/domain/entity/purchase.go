package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PurchaseRecord is an append-only log entry for an ingredient purchase.
// Quantity is expressed in the ingredient's purchase unit; TotalKg must equal
// Quantity times the ingredient's unit-to-kg factor at creation time.
type PurchaseRecord struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	IngredientID uuid.UUID      `gorm:"type:uuid;not null;index" json:"ingredient_id"`
	Date         time.Time      `gorm:"type:date;not null;index" json:"date"`
	Quantity     float64        `gorm:"type:decimal(12,3);not null" json:"quantity"`
	UnitPrice    float64        `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalValue   float64        `gorm:"type:decimal(14,2);not null" json:"total_value"`
	TotalKg      float64        `gorm:"type:decimal(14,3);not null" json:"total_kg"`
	PricePerKg   float64        `gorm:"type:decimal(12,4);not null" json:"price_per_kg"`
	Supplier     *string        `gorm:"size:255" json:"supplier,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Ingredient Ingredient `gorm:"foreignKey:IngredientID" json:"ingredient,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase record
func (p *PurchaseRecord) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseRecord model
func (PurchaseRecord) TableName() string {
	return "purchase_records"
}
