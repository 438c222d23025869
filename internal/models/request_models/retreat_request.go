package request_models

type CreateRetreatRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Location    string   `json:"location" binding:"required"`
	Categories  []string `json:"categories,omitempty"`
	ImageURL    string   `json:"image_url,omitempty"`
	PriceMinor  int64    `json:"price_minor"`
	Currency    string   `json:"currency,omitempty"`
	Capacity    int      `json:"capacity"`
	StartDate   string   `json:"start_date"` // RFC3339
	EndDate     string   `json:"end_date"`
}

type RetreatSearchRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit,omitempty"`
}
