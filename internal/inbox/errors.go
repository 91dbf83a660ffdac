package inbox

import "errors"

// Domain errors
var (
	// ErrInboxItemNotFound - inbox item does not exist
	ErrInboxItemNotFound = errors.New("inbox: item not found")

	// ErrContentNotFound - referenced content item does not exist
	ErrContentNotFound = errors.New("inbox: content item not found")

	// ErrInvalidStatus - status is not one of the known states
	ErrInvalidStatus = errors.New("inbox: invalid status")

	// ErrInvalidTransition - transition not allowed by the review graph
	ErrInvalidTransition = errors.New("inbox: invalid status transition")

	// ErrStatusConflict - item moved concurrently, transition lost the race
	ErrStatusConflict = errors.New("inbox: status changed concurrently")
)
