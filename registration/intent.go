package registration

import (
	"context"
	"fmt"
	"log/slog"
)

const DefaultCurrency = "chf"

type IssueIntentParams struct {
	// Amount is in the smallest currency unit and must be positive.
	Amount               int64
	Currency             string
	People               []Person
	NumberOfParticipants int
	TotalAmount          int64
}

// IssueIntent serializes the registrant list into intent metadata and
// creates a payment intent with automatic payment-method selection.
// It returns the client confirmation secret.
func IssueIntent(ctx context.Context, logger *slog.Logger, params IssueIntentParams, provider PaymentProvider) (string, error) {
	if provider == nil {
		return "", NewNotConfiguredError("Payment provider is not configured")
	}
	if params.Amount <= 0 {
		return "", NewInvalidAmountError(fmt.Sprintf("Amount must be positive, got %d", params.Amount))
	}

	numberOfParticipants := params.NumberOfParticipants
	if numberOfParticipants == 0 {
		numberOfParticipants = len(params.People)
	}
	if numberOfParticipants == 0 {
		numberOfParticipants = 1
	}

	metadata, dropped := IntentMetadata(params.People, numberOfParticipants, params.TotalAmount)
	for _, i := range dropped {
		// The direct persistence path still has the full record; only
		// the redirect-recovery path loses this person.
		logger.Warn("Dropping oversized person metadata slot",
			slog.Int("personIndex", i),
			slog.Int("slotCap", maxMetadataValueLen),
		)
	}

	currency := params.Currency
	if currency == "" {
		currency = DefaultCurrency
	}

	intent, err := provider.CreateIntent(ctx, CreateIntentParams{
		Amount:   params.Amount,
		Currency: currency,
		Metadata: metadata,
	})
	if err != nil {
		return "", NewPaymentProviderError("Failed to create payment intent", err)
	}

	return intent.ClientSecret, nil
}
