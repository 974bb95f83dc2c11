// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, serverURL string) PostServiceClient {
	t.Helper()
	return NewHTTPPostServiceClient(HTTPClientConfig{BaseURL: serverURL})
}

// ---- ListPosts ----

func TestListPosts_Success(t *testing.T) {
	want := []models.Post{
		{ID: "p1", Title: "first", UserEmail: "alice@example.com"},
		{ID: "p2", Title: "second", UserEmail: "bob@example.com"},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"), "listing must not require a credential")

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.PostsResponse{Posts: want})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	got, err := c.ListPosts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestListPosts_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":"error","message":"internal error"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.ListPosts(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ---- CreatePost ----

func TestCreatePost_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/posts", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		var post models.Post
		require.NoError(t, json.NewDecoder(r.Body).Decode(&post))
		post.ID = "assigned-id"
		post.UserEmail = "alice@example.com"

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.DataResponse{
			Status: models.StatusSuccess,
			Data:   post,
		})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	created, err := c.CreatePost(context.Background(), models.Post{Title: "t", Body: "b", Image: "i"})

	require.NoError(t, err)
	assert.Equal(t, "assigned-id", created.ID)
	assert.Equal(t, "alice@example.com", created.UserEmail)
	assert.Equal(t, "t", created.Title)
}

func TestCreatePost_NoToken_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"No user"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	_, err := c.CreatePost(context.Background(), models.Post{Title: "t", Body: "b", Image: "i"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestCreatePost_IncompleteData_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"please provide full information"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	_, err := c.CreatePost(context.Background(), models.Post{Title: "only title"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ---- UpdatePost ----

func TestUpdatePost_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/posts/p1", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StatusResponse{Status: models.StatusSuccess})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	err := c.UpdatePost(context.Background(), models.Post{ID: "p1", Title: "new"})
	assert.NoError(t, err)
}

func TestUpdatePost_NotOwned_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"error","message":"you are not the owner of this post"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	err := c.UpdatePost(context.Background(), models.Post{ID: "p1"})
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdatePost_UnknownID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"post not found"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	err := c.UpdatePost(context.Background(), models.Post{ID: "missing"})
	assert.ErrorIs(t, err, ErrNotFound)
}

// ---- DeletePost ----

func TestDeletePost_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/posts/p1", r.URL.Path)
		assert.Equal(t, "Bearer my-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.StatusResponse{Status: models.StatusSuccess})
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	err := c.DeletePost(context.Background(), "p1")
	assert.NoError(t, err)
}

func TestDeletePost_NotOwned_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"status":"error","message":"you are not the owner of this post"}`))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL)
	c.SetToken("my-token")

	err := c.DeletePost(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrForbidden)
}

// ---- Token management ----

func TestSetToken_TrimsWhitespace(t *testing.T) {
	c := NewHTTPPostServiceClient(HTTPClientConfig{})
	c.SetToken("  my-token  ")
	assert.Equal(t, "my-token", c.Token())
}
