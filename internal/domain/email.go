package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// EventNotificationEmailData holds data for the event notification email sent
// to stakeholders of affected systems.
type EventNotificationEmailData struct {
	Recipients       []string
	EventTitle       string
	EventDescription string
	EventDate        string
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendEventNotification(ctx context.Context, data *EventNotificationEmailData) error
}
