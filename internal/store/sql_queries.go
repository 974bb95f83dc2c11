// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/Masterminds/squirrel"
)

// psql builds queries with PostgreSQL-style $N placeholders.
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// postColumns is the canonical column order used by every post query; scan
// destinations in the repository follow the same order.
var postColumns = []string{"id", "title", "body", "image", "user_email", "created_at", "updated_at"}

func buildSelectAllPostsQuery() (string, []any, error) {
	return psql.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		OrderBy("created_at").
		ToSql()
}

func buildSelectPostByIDQuery(postID string) (string, []any, error) {
	return psql.
		Select(postColumns...).
		From(models.Post{}.TableName()).
		Where(squirrel.Eq{"id": postID}).
		ToSql()
}

func buildInsertPostQuery(post models.Post) (string, []any, error) {
	return psql.
		Insert(models.Post{}.TableName()).
		Columns("id", "title", "body", "image", "user_email").
		Values(post.ID, post.Title, post.Body, post.Image, post.UserEmail).
		Suffix("RETURNING id, title, body, image, user_email, created_at, updated_at").
		ToSql()
}

// buildUpdatePostQuery overwrites the mutable fields of a post. The WHERE
// clause matches both the identifier and the owner so that the ownership
// check and the mutation happen in one statement.
func buildUpdatePostQuery(post models.Post) (string, []any, error) {
	return psql.
		Update(models.Post{}.TableName()).
		Set("title", post.Title).
		Set("body", post.Body).
		Set("image", post.Image).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": post.ID, "user_email": post.UserEmail}).
		ToSql()
}

// buildDeletePostQuery removes a post, matching identifier and owner in one
// statement for the same reason as buildUpdatePostQuery.
func buildDeletePostQuery(postID, userEmail string) (string, []any, error) {
	return psql.
		Delete(models.Post{}.TableName()).
		Where(squirrel.Eq{"id": postID, "user_email": userEmail}).
		ToSql()
}
