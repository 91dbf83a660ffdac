package repository

import "errors"

var (
	ErrNotFound       = errors.New("asset repository: not found")
	ErrContentMissing = errors.New("asset repository: content item missing")
	ErrFailedToInsert = errors.New("asset repository: failed to insert")
	ErrFailedToGet    = errors.New("asset repository: failed to get")
	ErrFailedToList   = errors.New("asset repository: failed to list")
	ErrFailedToUpdate = errors.New("asset repository: failed to update")
)
