package service

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// PostService implements the business rules of the post resource: presence
// validation on create, identifier assignment, and owner scoping of every
// mutation. The caller's identity (the verified token email) is always passed
// explicitly; services never trust an owner supplied in a request body.
type PostService interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	CreatePost(ctx context.Context, post models.Post, userEmail string) (models.Post, error)
	UpdatePost(ctx context.Context, post models.Post, userEmail string) error
	DeletePost(ctx context.Context, postID string, userEmail string) error
}

// AuthService verifies bearer tokens issued by the account service and, for
// test tooling and parity with the issuer, creates them.
type AuthService interface {
	CreateToken(ctx context.Context, email string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
