package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// auth is an HTTP middleware that enforces JWT-based authentication on the
// post mutation routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and — on success — stores
// the authenticated user's email in the request context under
// [utils.UserEmailCtxKey] before delegating to the next handler.
//
// Rejections follow the API contract:
//   - No "Authorization" header, or a header that carries no token at all
//     (e.g. "Bearer " with nothing after the scheme) → 401 with message
//     "No user" (the caller presented no credential).
//   - Token expired/invalid → 403 with message "Invalid User" (the caller
//     presented a credential that could not be accepted).
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteJSON(w, models.ErrorResponse{
				Status:  models.StatusError,
				Message: msgNoUser,
			}, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteJSON(w, models.ErrorResponse{
				Status:  models.StatusError,
				Message: msgNoUser,
			}, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteJSON(w, models.ErrorResponse{
				Status:  models.StatusError,
				Message: msgInvalidUser,
			}, http.StatusForbidden)
			return
		}

		// Store the authenticated user's email in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx = context.WithValue(ctx, utils.UserEmailCtxKey, token.Email)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value.
//
// The "Bearer " scheme marker is optional: when the header starts with it,
// the marker is stripped; otherwise the whole header value is taken as the
// token. Returns [ErrEmptyToken] when nothing remains after stripping.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
