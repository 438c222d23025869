package response_models

type ForumSpaceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	PostCount   int64  `json:"post_count"`
}

type ForumPostResponse struct {
	ID        string `json:"id"`
	SpaceID   string `json:"space_id"`
	AuthorID  string `json:"author_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}
