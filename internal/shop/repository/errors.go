package repository

import "errors"

var (
	ErrNotFound       = errors.New("shop repository: not found")
	ErrFailedToUpsert = errors.New("shop repository: failed to upsert")
	ErrFailedToGet    = errors.New("shop repository: failed to get")
	ErrFailedToList   = errors.New("shop repository: failed to list")
)
