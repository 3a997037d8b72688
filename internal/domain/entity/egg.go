package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EggProductionRecord is an append-only log entry for a day's collection in
// one shed. Good eggs credit the central egg stock; broken eggs accumulate
// as losses.
type EggProductionRecord struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShedID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"shed_id"`
	ShedName   string         `gorm:"size:255;not null" json:"shed_name"`
	Date       time.Time      `gorm:"type:date;not null;index" json:"date"`
	GoodEggs   int            `gorm:"not null" json:"good_eggs"`
	BrokenEggs int            `gorm:"default:0" json:"broken_eggs"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shed Shed `gorm:"foreignKey:ShedID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new production record
func (e *EggProductionRecord) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EggProductionRecord model
func (EggProductionRecord) TableName() string {
	return "egg_production_records"
}

// EggStock is the single-row central egg counter, credited by production
// and debited by sales.
type EggStock struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Quantity  int       `gorm:"default:0" json:"quantity"`
	Losses    int       `gorm:"default:0" json:"losses"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating the egg stock row
func (s *EggStock) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the EggStock model
func (EggStock) TableName() string {
	return "egg_stock"
}
