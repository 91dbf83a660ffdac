package repository

import "errors"

var (
	ErrNotFound       = errors.New("content item not found")
	ErrCacheMiss      = errors.New("content item not in cache")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToUpdate = errors.New("failed to update")
)
