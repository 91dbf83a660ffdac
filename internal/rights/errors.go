package rights

import "errors"

// Domain errors
var (
	// ErrContentNotFound - referenced content item does not exist
	ErrContentNotFound = errors.New("rights: content item not found")

	// ErrAlreadyApproved - rights already granted for this content
	ErrAlreadyApproved = errors.New("rights: already approved")

	// ErrRequestPending - an unresolved request already exists
	ErrRequestPending = errors.New("rights: request already pending")

	// ErrNoPendingRequest - nothing to resolve for this content
	ErrNoPendingRequest = errors.New("rights: no pending request")

	// ErrInvalidDecision - decision must be approved or declined
	ErrInvalidDecision = errors.New("rights: invalid decision")

	// ErrBrandRequired - brand id is required
	ErrBrandRequired = errors.New("rights: brand id is required")
)
