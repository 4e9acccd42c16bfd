package domain

import "errors"

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateIdentity = errors.New("username or email already exists")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrWeakCredential    = errors.New("password too weak")
	ErrEmptyComment      = errors.New("comment is empty")
	ErrInvalidMediaType  = errors.New("unsupported media type")
	ErrFeedUnavailable   = errors.New("feed unavailable")
	ErrInvalidInput      = errors.New("invalid input")

	// ErrStorageUnavailable classifies persistence failures that have no
	// more specific meaning. Repositories wrap the underlying error into
	// it rather than swallowing it.
	ErrStorageUnavailable = errors.New("storage unavailable")
)
