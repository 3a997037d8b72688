package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/granjatech/granja-api/internal/domain/enum"
	"gorm.io/gorm"
)

// SaleRecord represents an egg sale. Creating a sale debits the central egg
// stock in the same transaction; "A Prazo" sales stay Pending until settled.
type SaleRecord struct {
	ID            uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	Date          time.Time          `gorm:"type:date;not null;index" json:"date"`
	Customer      string             `gorm:"size:255;not null" json:"customer"`
	Product       string             `gorm:"size:255;not null" json:"product"`
	QuantitySold  int                `gorm:"not null" json:"quantity_sold"`
	UnitPrice     float64            `gorm:"type:decimal(12,2);not null" json:"unit_price"`
	TotalValue    float64            `gorm:"type:decimal(14,2);not null" json:"total_value"`
	PaymentMethod string             `gorm:"size:50;not null" json:"payment_method"`
	PaymentStatus enum.PaymentStatus `gorm:"default:0" json:"payment_status"`
	DueDate       *time.Time         `gorm:"type:date" json:"due_date,omitempty"`
	PaymentDate   *time.Time         `gorm:"type:date" json:"payment_date,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
	DeletedAt     gorm.DeletedAt     `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sale record
func (s *SaleRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleRecord model
func (SaleRecord) TableName() string {
	return "sale_records"
}

// OnCredit reports whether this sale was made on credit.
func (s *SaleRecord) OnCredit() bool {
	return s.PaymentMethod == enum.PaymentMethodOnCredit
}

// Overdue reports whether a pending credit sale has passed its due date.
func (s *SaleRecord) Overdue(now time.Time) bool {
	return s.PaymentStatus == enum.PaymentStatusPending &&
		s.DueDate != nil && s.DueDate.Before(now)
}
