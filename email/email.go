// Package email sends transactional mail. The interface mirrors what
// the handlers need; implementations are SES in prod and a logging
// sender for local dev (see cmd).
package email

import "context"

type Email struct {
	FromAddress string
	ToAddresses []string
	Subject     string
	HTMLBody    string
	TextBody    string
}

type Sender interface {
	SendEmail(ctx context.Context, e Email) error
}
