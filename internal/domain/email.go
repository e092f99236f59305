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

// AbstractRejectionEmailData holds data for the rejection/fallback email sent
// after an abstract is rejected and the registrant is moved to the fallback event.
type AbstractRejectionEmailData struct {
	Email         string
	Name          string
	EventTitle    string
	FallbackTitle string
}

// EmailService defines the contract for sending domain-level emails.
// Sends are best-effort: callers invoke them only after the owning
// transaction has committed.
type EmailService interface {
	SendAbstractRejection(ctx context.Context, data *AbstractRejectionEmailData) error
}
