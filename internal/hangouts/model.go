package hangouts

import "time"

// Hangout is one shareable post.
type Hangout struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	ImageURL    string    `json:"imageUrl"`
	Description string    `json:"description"`
	Likes       int       `json:"likes"`
	Comments    int       `json:"comments"`
	Tags        []string  `json:"tags"`
	CreatedAt   time.Time `json:"createdAt"`
}

// CreateRequest is the payload for creating a post.
type CreateRequest struct {
	Username    string   `json:"username"`
	ImageURL    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}
