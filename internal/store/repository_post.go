// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/jackc/pgerrcode"
)

type postRepository struct {
	*DB
}

// NewPostRepository returns a [PostRepository] backed by PostgreSQL.
func NewPostRepository(db *DB) PostRepository {
	return &postRepository{DB: db}
}

func (r *postRepository) GetAllPosts(ctx context.Context) ([]models.Post, error) {
	log := r.logger

	query, args, err := buildSelectAllPostsQuery()
	if err != nil {
		log.Err(err).Str("func", "GetAllPosts").Msg("error building select all posts query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "GetAllPosts").
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error executing select all posts query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0)
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.Image, &post.UserEmail, &post.CreatedAt, &post.UpdatedAt); err != nil {
			log.Err(err).Str("func", "GetAllPosts").Msg("error scanning post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "GetAllPosts").Msg("error iterating post rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}

func (r *postRepository) GetPostByID(ctx context.Context, postID string) (models.Post, error) {
	log := r.logger

	query, args, err := buildSelectPostByIDQuery(postID)
	if err != nil {
		log.Err(err).Str("func", "GetPostByID").Msg("error building select post query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var post models.Post
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&post.ID, &post.Title, &post.Body, &post.Image, &post.UserEmail, &post.CreatedAt, &post.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Post{}, ErrPostNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "GetPostByID").
			Str("post_id", postID).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error executing select post query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return post, nil
}

func (r *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := r.logger

	query, args, err := buildInsertPostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "CreatePost").Msg("error building insert post query")
		return models.Post{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Post
	err = r.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Title, &created.Body, &created.Image, &created.UserEmail, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.Post{}, ErrPostAlreadyExists
		default:
			log.Err(err).Str("func", "CreatePost").
				Str("post_id", post.ID).
				Str("pg_code", postgresError(err)).
				Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
				Msg("error executing insert post statement")
			return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return created, nil
}

func (r *postRepository) UpdatePost(ctx context.Context, post models.Post) error {
	log := r.logger

	query, args, err := buildUpdatePostQuery(post)
	if err != nil {
		log.Err(err).Str("func", "UpdatePost").Msg("error building update post query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "UpdatePost").
			Str("post_id", post.ID).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error executing update post statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.checkMutationOutcome(ctx, result, post.ID)
}

func (r *postRepository) DeletePost(ctx context.Context, postID, userEmail string) error {
	log := r.logger

	query, args, err := buildDeletePostQuery(postID, userEmail)
	if err != nil {
		log.Err(err).Str("func", "DeletePost").Msg("error building delete post query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "DeletePost").
			Str("post_id", postID).
			Str("pg_code", postgresError(err)).
			Bool("retryable", r.errorClassificator.Classify(err) == Retryable).
			Msg("error executing delete post statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return r.checkMutationOutcome(ctx, result, postID)
}

// checkMutationOutcome distinguishes the two reasons an owner-scoped mutation
// can affect zero rows: the post does not exist at all, or it exists under a
// different owner. A single follow-up lookup by identifier settles which.
func (r *postRepository) checkMutationOutcome(ctx context.Context, result sql.Result, postID string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected > 0 {
		return nil
	}

	_, err = r.GetPostByID(ctx, postID)
	if errors.Is(err, ErrPostNotFound) {
		return ErrPostNotFound
	}
	if err != nil {
		return err
	}

	return ErrPostNotOwned
}
