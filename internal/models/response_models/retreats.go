package response_models

type RetreatResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Categories  []string `json:"categories"`
	ImageURL    string   `json:"image_url,omitempty"`
	PriceMinor  int64    `json:"price_minor"`
	Currency    string   `json:"currency"`
	Capacity    int      `json:"capacity"`
	SpotsLeft   int      `json:"spots_left"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	HostID      string   `json:"host_id"`
}

type RetreatSearchResult struct {
	Retreat    RetreatResponse `json:"retreat"`
	Similarity float64         `json:"similarity"` // 0-1
}
