package repository

import "errors"

var (
	ErrContentMissing  = errors.New("content item missing")
	ErrAlreadyApproved = errors.New("rights already approved")
	ErrRequestPending  = errors.New("request already pending")
	ErrNoPending       = errors.New("no pending request")
	ErrFailedToInsert  = errors.New("failed to insert")
	ErrFailedToList    = errors.New("failed to list")
	ErrFailedToUpdate  = errors.New("failed to update")
)
