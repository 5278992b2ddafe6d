package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"thesishub-backend/internal/logger"
)

type emailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(apiKey, fromEmail, fromName string) EmailService {
	return &emailService{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		fromName:  fromName,
	}
}

func (s *emailService) SendAccessDecision(ctx context.Context, email, name, thesisTitle, decision string) error {
	subject := fmt.Sprintf("Your thesis access request was %s", decision)
	body := fmt.Sprintf("Hello %s,\n\nYour request to view %q was %s.\n\nThesisHub", name, thesisTitle, decision)
	return s.send(email, name, subject, body)
}

func (s *emailService) SendAccessExpired(ctx context.Context, email, name, thesisTitle string, windowDays int32) error {
	subject := "Your thesis access has expired"
	body := fmt.Sprintf("Hello %s,\n\nYour access to %q expired after %d days. Submit a new request if you still need it.\n\nThesisHub", name, thesisTitle, windowDays)
	return s.send(email, name, subject, body)
}

func (s *emailService) send(to, toName, subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)

	message := mail.NewSingleEmail(from, subject, recipient, plainText, "")

	logger.ExternalServiceCall("sendgrid", "send", "to", to, "subject", subject)
	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		logger.ExternalServiceResult("sendgrid", "send", err)
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		err := fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
		logger.ExternalServiceResult("sendgrid", "send", err)
		return err
	}
	logger.ExternalServiceResult("sendgrid", "send", nil)
	return nil
}
