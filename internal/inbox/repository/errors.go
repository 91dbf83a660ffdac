package repository

import "errors"

var (
	ErrNotFound       = errors.New("inbox item not found")
	ErrContentMissing = errors.New("content item missing")
	ErrStatusMoved    = errors.New("status does not match")
	ErrFailedToInsert = errors.New("failed to insert")
	ErrFailedToGet    = errors.New("failed to get")
	ErrFailedToList   = errors.New("failed to list")
	ErrFailedToUpdate = errors.New("failed to update")
)
