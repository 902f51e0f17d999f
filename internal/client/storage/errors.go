package storage

import "errors"

// Common client storage errors
var (
	// ErrFavoriteNotFound indicates that favorite was not found
	ErrFavoriteNotFound = errors.New("favorite not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
