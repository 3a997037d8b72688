package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExpenseCategory groups expense records for reporting
type ExpenseCategory struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Expenses []ExpenseRecord `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new expense category
func (c *ExpenseCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseCategory model
func (ExpenseCategory) TableName() string {
	return "expense_categories"
}

// ExpenseRecord is a flat append-only expense log entry with no ledger
// interaction.
type ExpenseRecord struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID  *uuid.UUID     `gorm:"type:uuid;index" json:"category_id,omitempty"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Description string         `gorm:"size:255;not null" json:"description"`
	Amount      float64        `gorm:"type:decimal(14,2);not null" json:"amount"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category *ExpenseCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// BeforeCreate generates a UUID before creating a new expense record
func (e *ExpenseRecord) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ExpenseRecord model
func (ExpenseRecord) TableName() string {
	return "expense_records"
}
