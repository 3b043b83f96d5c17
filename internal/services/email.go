package services

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"regexp"

	"sdlccalendar/internal/domain"
)

// htmlTagRe strips markup from rich-text descriptions for the plain-text
// email body.
var htmlTagRe = regexp.MustCompile(`<[^>]*>?`)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// eventNotificationTemplateData is what the event_notification templates see.
// DescriptionHTML is typed template.HTML so rich-text markup from the editor
// survives into the HTML body unescaped.
type eventNotificationTemplateData struct {
	EventTitle      string
	EventDate       string
	DescriptionHTML template.HTML
	DescriptionText string
}

// SendEventNotification renders the "event_notification" template and sends it
// to every recipient. The first failed recipient aborts the remainder.
func (s *emailService) SendEventNotification(ctx context.Context, data *domain.EventNotificationEmailData) error {
	if data == nil {
		return fmt.Errorf("event notification data is nil")
	}
	if len(data.Recipients) == 0 {
		return fmt.Errorf("no recipients specified")
	}
	if data.EventTitle == "" {
		return fmt.Errorf("event title is required")
	}

	tmplData := eventNotificationTemplateData{
		EventTitle:      data.EventTitle,
		EventDate:       data.EventDate,
		DescriptionHTML: template.HTML(data.EventDescription),
		DescriptionText: htmlTagRe.ReplaceAllString(data.EventDescription, ""),
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_notification", tmplData)
	if err != nil {
		return fmt.Errorf("failed to render event_notification template: %w", err)
	}

	for _, recipient := range data.Recipients {
		if err := s.mailer.Send(recipient, subject, htmlBody, textBody); err != nil {
			return fmt.Errorf("failed to send notification to %s: %w", recipient, err)
		}
	}
	s.logger.InfoContext(ctx, "event notification sent", "recipients", len(data.Recipients), "event", data.EventTitle)
	return nil
}
