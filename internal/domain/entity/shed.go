package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Shed represents a physical housing unit for a flock, the primary
// production-tracking unit.
type Shed struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name             string         `gorm:"size:255;not null" json:"name"`
	BatchLabel       string         `gorm:"size:100" json:"batch_label"`
	BirdCount        int            `gorm:"default:0" json:"bird_count"`
	CumulativeLosses int            `gorm:"default:0" json:"cumulative_losses"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	EggProductions []EggProductionRecord  `gorm:"foreignKey:ShedID" json:"-"`
	Mortalities    []MortalityEvent       `gorm:"foreignKey:ShedID" json:"-"`
	Husbandry      []HusbandryEvent       `gorm:"foreignKey:ShedID" json:"-"`
	FeedUsage      []FeedConsumptionEvent `gorm:"foreignKey:ShedID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new shed
func (s *Shed) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Shed model
func (Shed) TableName() string {
	return "sheds"
}

// MortalityEvent is a per-shed log entry that also decrements the shed's
// bird count (clamped at zero).
type MortalityEvent struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShedID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"shed_id"`
	ShedName  string         `gorm:"size:255;not null" json:"shed_name"`
	Date      time.Time      `gorm:"type:date;not null;index" json:"date"`
	Count     int            `gorm:"not null" json:"count"`
	Cause     *string        `gorm:"size:255" json:"cause,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shed Shed `gorm:"foreignKey:ShedID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new mortality event
func (m *MortalityEvent) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the MortalityEvent model
func (MortalityEvent) TableName() string {
	return "mortality_events"
}

// HusbandryEvent is a free-form per-shed care log entry (vaccination,
// cleaning, treatments). No ledger interaction.
type HusbandryEvent struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShedID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"shed_id"`
	Date        time.Time      `gorm:"type:date;not null;index" json:"date"`
	Activity    string         `gorm:"size:255;not null" json:"activity"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shed Shed `gorm:"foreignKey:ShedID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new husbandry event
func (h *HusbandryEvent) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the HusbandryEvent model
func (HusbandryEvent) TableName() string {
	return "husbandry_events"
}

// FeedConsumptionEvent is a per-shed log entry that debits the central feed
// stock (clamped at zero, permissive).
type FeedConsumptionEvent struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ShedID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"shed_id"`
	Date       time.Time      `gorm:"type:date;not null;index" json:"date"`
	QuantityKg float64        `gorm:"type:decimal(12,3);not null" json:"quantity_kg"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Shed Shed `gorm:"foreignKey:ShedID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new consumption event
func (f *FeedConsumptionEvent) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FeedConsumptionEvent model
func (FeedConsumptionEvent) TableName() string {
	return "feed_consumption_events"
}
