package usecase

import (
	"context"

	"ugc-srv/internal/model"
	"ugc-srv/internal/notifier"
	"ugc-srv/pkg/email"
)

// Notify builds the localized message for the event and hands it to the
// outbound channel. The channel contract is recipient plus rendered body;
// transport delivery is outside this service.
func (uc *implUseCase) Notify(ctx context.Context, event model.RightsEvent) error {
	var (
		msg email.Email
		err error
	)

	switch event.Type {
	case model.RightsEventRequested:
		msg, err = email.NewEmail(ctx, email.EmailMeta{
			Recipient:    event.CreatorHandle,
			CC:           []string{uc.brand.ReplyEmail},
			TemplateType: email.RightsRequestTemplate,
		}, email.RightsRequest{
			CreatorHandle: event.CreatorHandle,
			Platform:      event.Platform,
			Permalink:     event.Permalink,
			BrandName:     uc.brand.Name,
		})
	case model.RightsEventResolved:
		msg, err = email.NewEmail(ctx, email.EmailMeta{
			Recipient:    uc.brand.ReplyEmail,
			TemplateType: email.RightsResolvedTemplate,
		}, email.RightsResolved{
			CreatorHandle: event.CreatorHandle,
			Platform:      event.Platform,
			Permalink:     event.Permalink,
			Status:        event.Status,
		})
	default:
		return notifier.ErrUnknownEventType
	}
	if err != nil {
		return err
	}

	uc.l.Infof(ctx, "notifier.usecase.Notify: dispatched %s to %s for request %s (content %s)",
		event.Type, msg.Recipient, event.RequestID, event.ContentID)

	return nil
}
