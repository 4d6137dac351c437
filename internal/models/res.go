package models

// PostsPage is the shape of GET /api/posts.
type PostsPage struct {
	Posts      []Post `json:"posts"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
}

// ErrorBody is the uniform error response.
type ErrorBody struct {
	Error string `json:"error"`
}
