// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// postService is the concrete implementation of PostService.
// It owns presence validation, identifier assignment, and owner stamping;
// persistence and the atomic ownership checks live in the PostRepository.
type postService struct {
	// postRepository is the data-access layer used to read and mutate posts.
	postRepository store.PostRepository

	// idGenerator assigns identifiers to newly created posts.
	idGenerator utils.UUIDGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewPostService constructs a new PostService wired to the given PostRepository.
func NewPostService(postRepository store.PostRepository, logger *logger.Logger) PostService {
	return &postService{
		postRepository: postRepository,
		idGenerator:    utils.UUIDGenerator{},
		logger:         logger,
	}
}

// ListPosts returns every stored post. The collection is public: no identity
// is required and no filtering is applied.
func (p *postService) ListPosts(ctx context.Context) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	posts, err := p.postRepository.GetAllPosts(ctx)
	if err != nil {
		log.Err(err).Msg("listing posts ended with error")
		return nil, fmt.Errorf("listing posts ended with error: %w", err)
	}

	return posts, nil
}

// CreatePost persists a new post on behalf of userEmail.
//
// Title, Body, and Image must all be present; otherwise ErrIncompletePost is
// returned and nothing is persisted. The owner is always taken from userEmail
// and the identifier is always server-assigned, regardless of what the input
// post carries.
func (p *postService) CreatePost(ctx context.Context, post models.Post, userEmail string) (models.Post, error) {
	log := logger.FromContext(ctx)

	if userEmail == "" {
		log.Error().Msg("no user email provided for post creation")
		return models.Post{}, ErrNoUserEmail
	}
	if post.Title == "" || post.Body == "" || post.Image == "" {
		log.Error().Any("post", post).Msg("incomplete post data provided")
		return models.Post{}, ErrIncompletePost
	}

	post.ID = p.idGenerator.Generate()
	post.UserEmail = userEmail

	createdPost, err := p.postRepository.CreatePost(ctx, post)
	if err != nil {
		log.Err(err).Str("post_id", post.ID).Msg("post creation ended with error")
		return models.Post{}, fmt.Errorf("post creation ended with error: %w", err)
	}

	return createdPost, nil
}

// UpdatePost overwrites title, body, and image of the post identified by
// post.ID, provided userEmail owns it. Fields are written as given, empty
// values included.
//
// Returns ErrNoPostID when the identifier is missing, or a wrapped storage
// error (store.ErrPostNotFound, store.ErrPostNotOwned) on conditional-update
// failure.
func (p *postService) UpdatePost(ctx context.Context, post models.Post, userEmail string) error {
	log := logger.FromContext(ctx)

	if post.ID == "" {
		log.Error().Msg("no post ID provided for update")
		return ErrNoPostID
	}
	if userEmail == "" {
		log.Error().Str("post_id", post.ID).Msg("no user email provided for update")
		return ErrNoUserEmail
	}

	post.UserEmail = userEmail

	if err := p.postRepository.UpdatePost(ctx, post); err != nil {
		log.Err(err).Str("post_id", post.ID).Msg("post update ended with error")
		return fmt.Errorf("post update ended with error: %w", err)
	}

	return nil
}

// DeletePost removes the post identified by postID, provided userEmail owns it.
func (p *postService) DeletePost(ctx context.Context, postID string, userEmail string) error {
	log := logger.FromContext(ctx)

	if postID == "" {
		log.Error().Msg("no post ID provided for delete")
		return ErrNoPostID
	}
	if userEmail == "" {
		log.Error().Str("post_id", postID).Msg("no user email provided for delete")
		return ErrNoUserEmail
	}

	if err := p.postRepository.DeletePost(ctx, postID, userEmail); err != nil {
		log.Err(err).Str("post_id", postID).Msg("post deletion ended with error")
		return fmt.Errorf("post deletion ended with error: %w", err)
	}

	return nil
}
