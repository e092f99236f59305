package services

import (
	"context"
	"fmt"

	"symposiumadmin/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer}
}

// SendAbstractRejection sends the rejection/fallback notification using the
// "abstract_rejected" template.
func (s *emailService) SendAbstractRejection(ctx context.Context, data *domain.AbstractRejectionEmailData) error {
	if data == nil {
		return fmt.Errorf("abstract rejection data is nil")
	}
	subject, htmlBody, textBody, err := s.renderer.Render("abstract_rejected", data)
	if err != nil {
		return fmt.Errorf("failed to render abstract_rejected template: %w", err)
	}
	if err := s.mailer.Send(data.Email, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send rejection email: %w", err)
	}
	return nil
}
