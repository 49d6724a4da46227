package registration

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/guemper-znacht/event-registration/email"
)

//go:embed templates
var templates embed.FS

// SendRegistrationConfirmationEmail mails a summary of the persisted
// batch to every registrant who provided an address. Callers treat a
// failure as log-only; the registration itself already succeeded.
func SendRegistrationConfirmationEmail(ctx context.Context, emailSender email.Sender, fromAddress string, people []Person, intentID string) error {
	toAddresses := make([]string, 0, len(people))
	for _, p := range people {
		if p.Email != "" {
			toAddresses = append(toAddresses, p.Email)
		}
	}
	if len(toAddresses) == 0 {
		return nil
	}

	data := map[string]any{
		"People":          people,
		"PaymentIntentID": intentID,
		"Total":           totalDisplay(len(people)),
	}

	htmlBody, err := renderTemplate("registration-confirmation.tmpl", data)
	if err != nil {
		return err
	}

	textOnlyBody, err := renderTemplate("registration-confirmation-textonly.tmpl", data)
	if err != nil {
		return err
	}

	return emailSender.SendEmail(ctx, email.Email{
		FromAddress: fromAddress,
		ToAddresses: toAddresses,
		Subject:     "Gümper Znacht - Anmeldung bestätigt",
		HTMLBody:    htmlBody,
		TextBody:    textOnlyBody,
	})
}

func totalDisplay(numPeople int) string {
	return fmt.Sprintf("CHF %d.-", int64(numPeople)*PricePerPersonMajor)
}

func renderTemplate(name string, data map[string]any) (string, error) {
	tmpl, err := template.New(name).ParseFS(templates, "templates/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse email template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("failed to execute email template: %w", err)
	}

	return buf.String(), nil
}
