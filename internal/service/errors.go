package service

import "errors"

var (
	ErrIncompletePost = errors.New("incomplete post data provided")
	ErrNoPostID       = errors.New("no post ID provided")
	ErrNoUserEmail    = errors.New("no user email provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)
