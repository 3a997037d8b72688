package request

// RecordEggProductionRequest represents a daily egg collection request
type RecordEggProductionRequest struct {
	ShedID     string `json:"shed_id" binding:"required,uuid"`
	Date       string `json:"date" binding:"required"`
	GoodEggs   int    `json:"good_eggs" binding:"gte=0"`
	BrokenEggs int    `json:"broken_eggs" binding:"gte=0"`
}

// CreateShedRequest represents a shed registration request
type CreateShedRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=255"`
	BatchLabel string `json:"batch_label" binding:"max=100"`
	BirdCount  int    `json:"bird_count" binding:"gte=0"`
}

// UpdateShedRequest represents a shed update request
type UpdateShedRequest struct {
	Name       *string `json:"name,omitempty"`
	BatchLabel *string `json:"batch_label,omitempty"`
	BirdCount  *int    `json:"bird_count,omitempty"`
}

// RecordMortalityRequest represents a bird loss log request
type RecordMortalityRequest struct {
	Date  string  `json:"date" binding:"required"`
	Count int     `json:"count" binding:"required,gt=0"`
	Cause *string `json:"cause,omitempty"`
}

// RecordHusbandryRequest represents a care activity log request
type RecordHusbandryRequest struct {
	Date        string  `json:"date" binding:"required"`
	Activity    string  `json:"activity" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
}
