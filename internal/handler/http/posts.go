package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/go-chi/chi/v5"
)

// getAllPosts handles GET /posts. The collection is public and returned in
// full as {"posts":[...]}.
func (h *Handler) getAllPosts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	posts, err := h.services.PostService.ListPosts(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during posts listing")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.PostsResponse{Posts: posts}, http.StatusOK)
}

// createPost handles POST /posts. The owner is always the authenticated
// identity; an owner supplied in the request body is ignored.
func (h *Handler) createPost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userEmail, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email found in request context")
		utils.WriteJSON(w, models.ErrorResponse{
			Status:  models.StatusError,
			Message: msgNoUser,
		}, http.StatusUnauthorized)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{
			Status:  models.StatusError,
			Message: msgIncompleteInfo,
		}, http.StatusBadRequest)
		return
	}

	createdPost, err := h.services.PostService.CreatePost(ctx, post, userEmail)
	if err != nil {
		log.Err(err).Msg("post creation ended with error")
		writeError(w, err)
		return
	}

	log.Debug().Str("post_id", createdPost.ID).Str("user", userEmail).Msg("post created")

	utils.WriteJSON(w, models.DataResponse{
		Status: models.StatusSuccess,
		Data:   createdPost,
	}, http.StatusOK)
}

// updatePost handles PUT /posts/{postID}. Title, body, and image are
// overwritten as given; only the owner of the post may update it.
func (h *Handler) updatePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userEmail, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email found in request context")
		utils.WriteJSON(w, models.ErrorResponse{
			Status:  models.StatusError,
			Message: msgNoUser,
		}, http.StatusUnauthorized)
		return
	}

	var post models.Post
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{
			Status:  models.StatusError,
			Message: msgIncompleteInfo,
		}, http.StatusBadRequest)
		return
	}
	post.ID = chi.URLParam(r, "postID")

	if err := h.services.PostService.UpdatePost(ctx, post, userEmail); err != nil {
		log.Err(err).Str("post_id", post.ID).Msg("post update ended with error")
		writeError(w, err)
		return
	}

	log.Debug().Str("post_id", post.ID).Str("user", userEmail).Msg("post updated")

	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess}, http.StatusOK)
}

// deletePost handles DELETE /posts/{postID}. Only the owner of the post may
// delete it.
func (h *Handler) deletePost(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userEmail, ok := utils.GetUserEmailFromContext(ctx)
	if !ok {
		log.Error().Msg("no user email found in request context")
		utils.WriteJSON(w, models.ErrorResponse{
			Status:  models.StatusError,
			Message: msgNoUser,
		}, http.StatusUnauthorized)
		return
	}

	postID := chi.URLParam(r, "postID")

	if err := h.services.PostService.DeletePost(ctx, postID, userEmail); err != nil {
		log.Err(err).Str("post_id", postID).Msg("post deletion ended with error")
		writeError(w, err)
		return
	}

	log.Debug().Str("post_id", postID).Str("user", userEmail).Msg("post deleted")

	utils.WriteJSON(w, models.StatusResponse{Status: models.StatusSuccess}, http.StatusOK)
}

// health handles GET /health for liveness probes.
func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	utils.WriteJSON(w, models.StatusResponse{Status: "ok"}, http.StatusOK)
}
