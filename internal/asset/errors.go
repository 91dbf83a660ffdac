package asset

import "errors"

var (
	ErrContentNotFound = errors.New("asset: content item not found")
	ErrJobNotFound     = errors.New("asset: job not found")
	ErrInvalidKind     = errors.New("asset: invalid kind")
	ErrInvalidOptions  = errors.New("asset: invalid options payload")
)
