package services

import (
	"context"
	"errors"
	"testing"

	"communityregistration/internal/domain"

	"github.com/stretchr/testify/require"
)

type fakeMailer struct {
	to, subject, html, text string
	err                     error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

type fakeRenderer struct {
	name string
	err  error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	f.name = templateName
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}

func TestEmailService_SendRegistrationConfirmed(t *testing.T) {
	mailer := &fakeMailer{}
	renderer := &fakeRenderer{}
	svc := NewEmailService(mailer, renderer)

	err := svc.SendRegistrationConfirmed(context.Background(), &domain.RegistrationConfirmedEmailData{
		Email:      "jane@example.com",
		EventTitle: "Intro Night",
	})
	require.NoError(t, err)
	require.Equal(t, "registration_confirmed", renderer.name)
	require.Equal(t, "jane@example.com", mailer.to)
	require.Equal(t, "subject", mailer.subject)
}

func TestEmailService_SendRegistrationConfirmed_NilData(t *testing.T) {
	svc := NewEmailService(&fakeMailer{}, &fakeRenderer{})
	require.Error(t, svc.SendRegistrationConfirmed(context.Background(), nil))
}

func TestEmailService_SendRegistrationConfirmed_RenderError(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewEmailService(mailer, &fakeRenderer{err: errors.New("missing template")})

	err := svc.SendRegistrationConfirmed(context.Background(), &domain.RegistrationConfirmedEmailData{Email: "jane@example.com"})
	require.Error(t, err)
	require.Empty(t, mailer.to, "nothing may be sent when rendering fails")
}

func TestEmailService_SendRegistrationConfirmed_SendError(t *testing.T) {
	svc := NewEmailService(&fakeMailer{err: errors.New("ses rejected")}, &fakeRenderer{})

	err := svc.SendRegistrationConfirmed(context.Background(), &domain.RegistrationConfirmedEmailData{Email: "jane@example.com"})
	require.Error(t, err)
}
