package response_models

// RetreatRecommendation is ephemeral: recomputed per analysis call and never
// persisted. MatchScore is always on a 0-1 scale; clients render a "% match"
// as round(score*100).
type RetreatRecommendation struct {
	RetreatID   string   `json:"retreat_id"`
	Title       string   `json:"title"`
	MatchScore  float64  `json:"match_score"`
	Reason      string   `json:"reason"`
	Location    string   `json:"location,omitempty"`
	Date        string   `json:"date,omitempty"`
	Time        string   `json:"time,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Image       string   `json:"image,omitempty"`
	Categories  []string `json:"categories,omitempty"`
}

const (
	RecommendationSourceRemote   = "remote"
	RecommendationSourceFallback = "fallback"
)

type JournalAnalysisResponse struct {
	Keywords        []string                `json:"keywords"`
	Recommendations []RetreatRecommendation `json:"recommendations"`
	Source          string                  `json:"source"` // "remote" or "fallback"
}
