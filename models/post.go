package models

import "time"

// Post represents a single blog entry owned by an authenticated user.
// The owner is stored as a denormalized email string rather than a foreign
// key; ownership checks compare it against the email carried by the verified
// bearer token.
type Post struct {
	// ID is the opaque server-assigned identifier of the post (UUIDv7).
	ID string `json:"id"`

	// Title is the headline of the post. Required at creation time.
	Title string `json:"title"`

	// Body is the main text of the post. Required at creation time.
	Body string `json:"body"`

	// Image is a reference to the post's cover image — a URL or encoded
	// text. Required at creation time; the server does not interpret it.
	Image string `json:"image"`

	// UserEmail is the email of the owning identity, always derived from
	// the verified token and never taken from the request body.
	UserEmail string `json:"user"`

	// CreatedAt is the timestamp assigned by the store at creation.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last successful mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Post model.
func (p Post) TableName() string {
	return "posts"
}
