package repository

import "errors"

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrAlreadyExists indicates a uniqueness constraint rejected the write.
	ErrAlreadyExists = errors.New("repository: already exists")
	// ErrDateNotFound indicates the parent record exists but has no entry for the date.
	ErrDateNotFound = errors.New("repository: date not found")
	// ErrItemNotFound indicates none of the requested items were present.
	ErrItemNotFound = errors.New("repository: item not found")
)
