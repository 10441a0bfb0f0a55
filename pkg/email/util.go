package email

import (
	"fmt"
	"html/template"

	"portal-srv/pkg/locale"
)

var emailSubjects = map[string]map[string]string{
	AppointmentReminderTemplate: {
		locale.EN: "Appointment reminder",
		locale.VI: "Nhắc lịch khám",
	},
}

// Return raw template for email
func getEmailTemplate(lang string, templateType string) (*template.Template, error) {
	tmplFile := fmt.Sprintf("%s-%s.tmpl", templateType, lang)
	tmplPath := fmt.Sprintf("templates/%s", tmplFile)
	tmpl, err := template.New(tmplFile).ParseFS(emailTemplates, tmplPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse email template %s: %w", tmplFile, err)
	}
	return tmpl, nil
}

// Return email subject
func getEmailSubject(lang string, templateType string) string {
	subjects, ok := emailSubjects[templateType]
	if !ok {
		return ""
	}
	if s, ok := subjects[lang]; ok {
		return s
	}
	return subjects[locale.DefaultLang]
}
