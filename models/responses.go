package models

// Response status values used across every JSON envelope the API returns.
const (
	// StatusSuccess marks a completed operation.
	StatusSuccess = "success"

	// StatusError marks a failed operation of any kind.
	StatusError = "error"
)

// PostsResponse is the envelope returned by the public list endpoint.
// It always carries the full, unpaginated collection in store-native order.
type PostsResponse struct {
	// Posts is the complete set of stored posts.
	Posts []Post `json:"posts"`
}

// DataResponse is the envelope returned by operations that hand back a
// document, e.g. post creation returns the persisted post including its
// server-assigned identifier and timestamps.
type DataResponse struct {
	// Status is always [StatusSuccess] for this envelope.
	Status string `json:"status"`

	// Data is the persisted document.
	Data Post `json:"data"`
}

// StatusResponse is the envelope returned by mutations that do not hand back
// a document body (update, delete).
type StatusResponse struct {
	// Status is always [StatusSuccess] for this envelope.
	Status string `json:"status"`
}

// ErrorResponse is the uniform failure envelope. The HTTP status code
// discriminates the error kind; Message carries a canned phrase that
// clients may match on, so its wording is stable.
type ErrorResponse struct {
	// Status is always [StatusError] for this envelope.
	Status string `json:"status"`

	// Message is a short human-readable description of the failure.
	Message string `json:"message"`
}
