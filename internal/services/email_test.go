package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"sdlccalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type sentEmail struct {
	to      string
	subject string
	html    string
	text    string
}

// fakeMailer records sends and can fail for one recipient.
type fakeMailer struct {
	sent   []sentEmail
	failTo string
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	if f.failTo != "" && to == f.failTo {
		return errors.New("smtp unavailable")
	}
	f.sent = append(f.sent, sentEmail{to: to, subject: subject, html: html, text: text})
	return nil
}

// fakeRenderer captures the template name and data it was asked to render.
type fakeRenderer struct {
	lastName string
	lastData any
	err      error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.lastName = templateName
	f.lastData = data
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func notificationData() *domain.EventNotificationEmailData {
	return &domain.EventNotificationEmailData{
		Recipients:       []string{"ops@example.com", "dev@example.com"},
		EventTitle:       "Deploy CRM hotfix",
		EventDescription: "<p>Rolling out the <b>CRM</b> hotfix</p>",
		EventDate:        "2024-11-15",
	}
}

func TestEmailService_SendEventNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("sends to every recipient", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger)

		require.NoError(t, svc.SendEventNotification(ctx, notificationData()))
		require.Len(t, mailer.sent, 2)
		assert.Equal(t, "ops@example.com", mailer.sent[0].to)
		assert.Equal(t, "dev@example.com", mailer.sent[1].to)
		assert.Equal(t, "event_notification", renderer.lastName)
	})

	t.Run("plain text body gets markup stripped", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger)

		require.NoError(t, svc.SendEventNotification(ctx, notificationData()))
		data, ok := renderer.lastData.(eventNotificationTemplateData)
		require.True(t, ok)
		assert.Equal(t, "Rolling out the CRM hotfix", data.DescriptionText)
		assert.Equal(t, "<p>Rolling out the <b>CRM</b> hotfix</p>", string(data.DescriptionHTML))
	})

	t.Run("rejects empty recipients before rendering", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{}
		svc := NewEmailService(mailer, renderer, discardLogger)

		data := notificationData()
		data.Recipients = nil
		require.Error(t, svc.SendEventNotification(ctx, data))
		assert.Empty(t, renderer.lastName)
		assert.Empty(t, mailer.sent)
	})

	t.Run("rejects missing title", func(t *testing.T) {
		svc := NewEmailService(&fakeMailer{}, &fakeRenderer{}, discardLogger)

		data := notificationData()
		data.EventTitle = ""
		require.Error(t, svc.SendEventNotification(ctx, data))
	})

	t.Run("render failure aborts all sends", func(t *testing.T) {
		mailer := &fakeMailer{}
		renderer := &fakeRenderer{err: errors.New("bad template")}
		svc := NewEmailService(mailer, renderer, discardLogger)

		require.Error(t, svc.SendEventNotification(ctx, notificationData()))
		assert.Empty(t, mailer.sent)
	})

	t.Run("send failure names the recipient", func(t *testing.T) {
		mailer := &fakeMailer{failTo: "dev@example.com"}
		svc := NewEmailService(mailer, &fakeRenderer{}, discardLogger)

		err := svc.SendEventNotification(ctx, notificationData())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "dev@example.com")
		// The first recipient was still delivered.
		require.Len(t, mailer.sent, 1)
	})
}
