package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog-keeper/internal/service"
	"github.com/MKhiriev/go-blog-keeper/internal/store"
	"github.com/MKhiriev/go-blog-keeper/internal/utils"
	"github.com/MKhiriev/go-blog-keeper/models"
)

// Canned response messages. The wording is part of the public API contract
// consumed by existing clients and must stay byte-for-byte stable.
const (
	msgNoUser          = "No user"
	msgInvalidUser     = "Invalid User"
	msgIncompleteInfo  = "please provide full information"
	msgNotOwner        = "you are not the owner of this post"
	msgPostNotFound    = "post not found"
	msgInternalError   = "internal error"
	msgInvalidGzipData = "Invalid gzip data"
)

var errorStatusMap = map[error]int{
	service.ErrIncompletePost:          http.StatusBadRequest,
	service.ErrNoPostID:                http.StatusNotFound,
	service.ErrNoUserEmail:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	store.ErrPostNotFound: http.StatusNotFound,
	store.ErrPostNotOwned: http.StatusForbidden,

	store.ErrPostAlreadyExists:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	service.ErrIncompletePost:          msgIncompleteInfo,
	service.ErrNoPostID:                msgPostNotFound,
	service.ErrNoUserEmail:             msgNoUser,
	service.ErrTokenIsExpiredOrInvalid: msgInvalidUser,

	store.ErrPostNotFound: msgPostNotFound,
	store.ErrPostNotOwned: msgNotOwner,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError maps err to the canned message exposed to clients. Raw
// error text never reaches the response body; unmapped errors collapse to
// msgInternalError.
func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgInternalError
}

// writeError shapes err into the standard error envelope
// {"status":"error","message":...} with the mapped HTTP status code.
func writeError(w http.ResponseWriter, err error) {
	utils.WriteJSON(w, models.ErrorResponse{
		Status:  models.StatusError,
		Message: messageFromError(err),
	}, statusFromError(err))
}
