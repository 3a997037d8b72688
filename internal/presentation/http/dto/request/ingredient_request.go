package request

// CreateIngredientRequest represents an ingredient registration request
type CreateIngredientRequest struct {
	Name           string  `json:"name" binding:"required,min=1,max=255"`
	PurchaseUnit   string  `json:"purchase_unit" binding:"required,min=1,max=50"`
	UnitToKgFactor float64 `json:"unit_to_kg_factor" binding:"required,gt=0"`
	MinimumStockKg float64 `json:"minimum_stock_kg" binding:"gte=0"`
}

// UpdateIngredientRequest represents an ingredient update request
type UpdateIngredientRequest struct {
	Name           *string  `json:"name,omitempty"`
	PurchaseUnit   *string  `json:"purchase_unit,omitempty"`
	UnitToKgFactor *float64 `json:"unit_to_kg_factor,omitempty"`
	MinimumStockKg *float64 `json:"minimum_stock_kg,omitempty"`
}

// CreatePurchaseRequest represents a purchase intake request. The date uses
// the YYYY-MM-DD layout.
type CreatePurchaseRequest struct {
	IngredientID string  `json:"ingredient_id" binding:"required,uuid"`
	Date         string  `json:"date" binding:"required"`
	Quantity     float64 `json:"quantity" binding:"required,gt=0"`
	UnitPrice    float64 `json:"unit_price" binding:"gte=0"`
	Supplier     *string `json:"supplier,omitempty"`
}
