package email

import "embed"

//go:embed templates/*
var emailTemplates embed.FS

const (
	AppointmentReminderTemplate = "appointment_reminder"
)
