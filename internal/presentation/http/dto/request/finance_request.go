package request

// CreateSaleRequest represents a sale registration request. DueDate is
// mandatory when the payment method is "A Prazo".
type CreateSaleRequest struct {
	Date          string  `json:"date" binding:"required"`
	Customer      string  `json:"customer" binding:"required,min=1,max=255"`
	Product       string  `json:"product" binding:"required,min=1,max=255"`
	QuantitySold  int     `json:"quantity_sold" binding:"required,gt=0"`
	UnitPrice     float64 `json:"unit_price" binding:"gte=0"`
	PaymentMethod string  `json:"payment_method" binding:"required,min=1,max=50"`
	DueDate       *string `json:"due_date,omitempty"`
}

// CreateExpenseRequest represents an expense log request
type CreateExpenseRequest struct {
	CategoryID  *string `json:"category_id,omitempty"`
	Date        string  `json:"date" binding:"required"`
	Description string  `json:"description" binding:"required,min=1,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
}

// CreateExpenseCategoryRequest represents an expense category request
type CreateExpenseCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=255"`
}

// ResetRequest guards the destructive reset endpoint; the client must spell
// out the confirmation phrase.
type ResetRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}
