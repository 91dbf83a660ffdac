package notifier

import (
	"context"

	"ugc-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Notify renders and dispatches the notification for a rights event.
	// Dispatch is fire and forget.
	Notify(ctx context.Context, event model.RightsEvent) error
}
