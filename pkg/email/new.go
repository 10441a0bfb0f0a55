package email

import (
	"bytes"
	"context"

	"portal-srv/pkg/locale"
)

// NewEmail renders an Email from a template and data, localized to the
// context locale.
func NewEmail(ctx context.Context, e EmailMeta, data interface{}) (Email, error) {
	l, ok := locale.GetLocaleFromContext(ctx)
	if !ok {
		l = locale.DefaultLang
	}

	tmpl, err := getEmailTemplate(l, e.TemplateType)
	if err != nil {
		return Email{}, err
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return Email{}, err
	}

	return Email{
		Recipient: e.Recipient,
		CC:        e.CC,
		Subject:   getEmailSubject(l, e.TemplateType),
		Body:      body.String(),
	}, nil
}
