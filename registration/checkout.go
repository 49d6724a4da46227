package registration

import (
	"context"
	"fmt"
	"log/slog"
)

type CheckoutResult struct {
	IntentID string
	// RequiresRedirect reports that control left for an off-site
	// payment redirect; persistence happens via Reconcile on return.
	RequiresRedirect bool
	RowsSaved        int
}

// Checkout runs the synchronous confirmation flow: validate the batch,
// issue an intent for its total, confirm against the hosted payment
// UI, and on immediate success persist the live registrant list.
// There is no automatic retry; any confirmation error aborts and the
// user must resubmit.
func Checkout(ctx context.Context, logger *slog.Logger, batch *Batch, returnURL string, confirmer IntentConfirmer, deps PersistDeps) (CheckoutResult, error) {
	if err := batch.Validate(); err != nil {
		return CheckoutResult{}, err
	}
	if confirmer == nil {
		return CheckoutResult{}, NewNotConfiguredError("Payment confirmer is not configured")
	}

	clientSecret, err := IssueIntent(ctx, logger, IssueIntentParams{
		Amount:               batch.AmountMinorUnits(),
		People:               batch.People,
		NumberOfParticipants: len(batch.People),
		TotalAmount:          batch.TotalMajorUnits(),
	}, deps.Provider)
	if err != nil {
		return CheckoutResult{}, err
	}

	outcome, err := confirmer.ConfirmIntent(ctx, clientSecret, returnURL)
	if err != nil {
		return CheckoutResult{}, NewConfirmationFailedError("Payment confirmation failed", err)
	}

	batch.IntentID = outcome.IntentID

	if outcome.RedirectStarted {
		return CheckoutResult{IntentID: outcome.IntentID, RequiresRedirect: true}, nil
	}

	if outcome.Status != INTENT_STATUS_SUCCEEDED {
		return CheckoutResult{}, NewPaymentNotSucceededError(fmt.Sprintf("Payment did not succeed, status is %q", outcome.Status))
	}

	result, err := PersistDirect(ctx, logger, batch.People, outcome.IntentID, deps)
	if err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{IntentID: outcome.IntentID, RowsSaved: result.RowsSaved}, nil
}
