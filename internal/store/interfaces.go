package store

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// PostRepository is the persistence contract for blog posts.
//
// UpdatePost and DeletePost are owner-scoped: the mutation matches both the
// post identifier and the owner email in a single conditional statement, so
// an ownership check cannot race with a concurrent mutation. When nothing is
// affected, implementations report [ErrPostNotFound] for a missing post and
// [ErrPostNotOwned] for an existing post with a different owner.
type PostRepository interface {
	// GetAllPosts returns the full collection in store-native order.
	GetAllPosts(ctx context.Context) ([]models.Post, error)

	// GetPostByID returns a single post or [ErrPostNotFound].
	GetPostByID(ctx context.Context, postID string) (models.Post, error)

	// CreatePost persists a new post and returns the stored representation
	// with server-assigned timestamps.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// UpdatePost overwrites title, body, and image of the post identified
	// by post.ID, provided post.UserEmail matches the stored owner.
	UpdatePost(ctx context.Context, post models.Post) error

	// DeletePost removes the post identified by postID, provided userEmail
	// matches the stored owner.
	DeletePost(ctx context.Context, postID, userEmail string) error
}
