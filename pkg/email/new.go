package email

import (
	"bytes"
	"context"

	"ugc-srv/pkg/locale"
)

func NewEmail(ctx context.Context, e EmailMeta, data interface{}) (Email, error) {
	l, ok := locale.GetLocaleFromContext(ctx)
	if !ok {
		l = locale.DefaultLang
	}

	tmpl, err := getEmailTemplate(l, e.TemplateType)
	if err != nil {
		return Email{}, err
	}
	translatedData := map[string]interface{}{}
	collectData(e.TemplateType, data, &translatedData)

	var body bytes.Buffer
	if err := tmpl.Execute(&body, translatedData); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(l, e.TemplateType),
		Body:      body.String(),
	}, nil
}
