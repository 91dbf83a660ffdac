package platform

import "errors"

var (
	// ErrPostNotFound is returned when the provider no longer knows the post.
	ErrPostNotFound = errors.New("platform: post not found")
)
