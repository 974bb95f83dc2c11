// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed HTTP client for the go-blog-keeper API.
//
// The primary abstraction is [PostServiceClient], which decouples consumers
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPPostServiceClient]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrNotFound] for 404, [ErrForbidden] for 403).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// PostServiceClient defines typed communication with the post API.
// Implementations are responsible for serialisation, bearer token management,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type PostServiceClient interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent write requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the client, or an
	// empty string if no token has been set yet.
	Token() string

	// ListPosts fetches the full public post collection via GET /posts.
	ListPosts(ctx context.Context) ([]models.Post, error)

	// CreatePost submits a new post via POST /posts and returns the persisted
	// document with its server-assigned identifier and owner.
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)

	// UpdatePost overwrites the post identified by post.ID via
	// PUT /posts/{postID}.
	UpdatePost(ctx context.Context, post models.Post) error

	// DeletePost removes the post identified by postID via
	// DELETE /posts/{postID}.
	DeletePost(ctx context.Context, postID string) error
}
