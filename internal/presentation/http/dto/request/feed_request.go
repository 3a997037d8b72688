package request

import "github.com/granjatech/granja-api/internal/domain/enum"

// FormulaLineRequest is one ingredient line in a formula save request
type FormulaLineRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	QuantityKg   float64 `json:"quantity_kg" binding:"required,gt=0"`
}

// SaveFormulaRequest represents a formula create or replace request
type SaveFormulaRequest struct {
	Name      string               `json:"name" binding:"required,min=1,max=255"`
	BirdPhase enum.BirdPhase       `json:"bird_phase"`
	Lines     []FormulaLineRequest `json:"lines" binding:"required,min=1,dive"`
}

// ProduceFeedRequest represents a feed production run request
type ProduceFeedRequest struct {
	FormulaID  string  `json:"formula_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	QuantityKg float64 `json:"quantity_kg" binding:"required,gt=0"`
}

// RecordConsumptionRequest represents a shed feed consumption request
type RecordConsumptionRequest struct {
	ShedID     string  `json:"shed_id" binding:"required,uuid"`
	Date       string  `json:"date" binding:"required"`
	QuantityKg float64 `json:"quantity_kg" binding:"required,gt=0"`
}
