package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-blog-keeper/internal/logger"
	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Mock: AuthService ----

type mockAuthService struct {
	createTokenFn func(ctx context.Context, email string) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) CreateToken(ctx context.Context, email string) (models.Token, error) {
	return m.createTokenFn(ctx, email)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger places a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{
			name:      "Bearer scheme is stripped",
			header:    "Bearer my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:      "bare token without scheme",
			header:    "my-jwt-token",
			wantToken: "my-jwt-token",
		},
		{
			name:    "scheme with nothing after it",
			header:  "Bearer ",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "empty header",
			header:  "",
			wantErr: ErrEmptyToken,
		},
		{
			name:    "only spaces",
			header:  " ",
			wantErr: ErrEmptyToken,
		},
		{
			name:      "surrounding whitespace is trimmed",
			header:    "Bearer   my-jwt-token  ",
			wantToken: "my-jwt-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantToken, token)
			}
		})
	}
}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	validToken := models.Token{Email: "alice@example.com"}

	tests := []struct {
		name           string
		authHeader     string
		parseTokenFn   func(ctx context.Context, s string) (models.Token, error)
		expectedStatus int
		expectedBody   string
		nextCalled     bool
		wantEmail      string
	}{
		{
			name:           "empty Authorization header",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgNoUser,
			nextCalled:     false,
		},
		{
			name:           "scheme with no token after it",
			authHeader:     "Bearer ",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   msgNoUser,
			nextCalled:     false,
		},
		{
			name:       "valid token passes through with email in context",
			authHeader: "Bearer valid-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantEmail:      "alice@example.com",
		},
		{
			name:       "bare token without scheme is verified as-is",
			authHeader: "valid.jwt.token",
			parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
				if tokenString != "valid.jwt.token" {
					return models.Token{}, service.ErrTokenIsExpiredOrInvalid
				}
				return validToken, nil
			},
			expectedStatus: http.StatusOK,
			nextCalled:     true,
			wantEmail:      "alice@example.com",
		},
		{
			name:       "expired or invalid token",
			authHeader: "Bearer expired-token",
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   msgInvalidUser,
			nextCalled:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var authSvc service.AuthService
			if tt.parseTokenFn != nil {
				authSvc = &mockAuthService{parseTokenFn: tt.parseTokenFn}
			} else {
				// parseTokenFn must not be reached: the request carries no credential
				authSvc = &mockAuthService{parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
					t.Fatal("ParseToken should not be called")
					return models.Token{}, nil
				}}
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			var capturedEmail any
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				capturedEmail = r.Context().Value(utils.UserEmailCtxKey)
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)

			if tt.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), tt.expectedBody)
				assert.Contains(t, rr.Body.String(), models.StatusError)
			}
			if tt.nextCalled && tt.wantEmail != "" {
				assert.Equal(t, tt.wantEmail, capturedEmail)
			}
		})
	}
}

// ---- Email is stored in the context ----

func TestAuth_EmailInContext(t *testing.T) {
	const expectedEmail = "bob@example.com"

	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Email: expectedEmail}, nil
		},
	})

	var gotEmail any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotEmail = r.Context().Value(utils.UserEmailCtxKey)
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, expectedEmail, gotEmail)
}

// ---- Original request context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Email: "alice@example.com"}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodPost, "/posts", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
}

// ---- Concurrent requests ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	h := newHandlerWithAuthService(&mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{Email: "alice@example.com"}, nil
		},
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodPost, "/posts", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
