package email

type EmailMeta struct {
	Recipient    string
	CC           []string
	TemplateType string
}

type Email struct {
	Recipient string
	Subject   string
	Body      string
	CC        []string
}

// AppointmentReminder carries data for the appointment reminder template.
type AppointmentReminder struct {
	PatientName string
	Doctor      string
	Department  string
	Date        string
	Time        string
	Location    string
}
