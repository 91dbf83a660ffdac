package notifier

import "errors"

var (
	ErrUnknownEventType = errors.New("notifier: unknown event type")
)
