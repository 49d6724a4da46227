package registration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

type SaveResult struct {
	RowsSaved        int
	AlreadyProcessed bool
	// People are the registrants that were persisted, for follow-up
	// steps like the confirmation email. Empty when AlreadyProcessed.
	People []Person
}

// PersistDeps are the collaborators of the unified persistence
// operation. Marker and Provider may be nil; each degrades that part
// of the dedupe scheme rather than failing the save.
type PersistDeps struct {
	Sheet    SheetAppender
	Marker   ProcessedMarker
	Provider PaymentProvider
}

// SaveBatch is the single convergence point of both persistence paths.
// Keyed by intent ID it (1) conditionally sets the processed marker,
// (2) appends all rows in one batched call, and (3) best-effort writes
// the saved flag into the intent metadata. A marker conflict means
// another invocation already persisted this intent.
func SaveBatch(ctx context.Context, logger *slog.Logger, rows []SheetRow, intentID string, deps PersistDeps) (SaveResult, error) {
	if deps.Sheet == nil {
		return SaveResult{}, NewNotConfiguredError("Sheet endpoint is not configured")
	}
	if len(rows) == 0 {
		return SaveResult{}, NewNoRegistrationDataError("No rows to persist")
	}

	marked := false
	if deps.Marker != nil && intentID != "" {
		err := deps.Marker.MarkProcessed(ctx, intentID, len(rows))
		if err != nil {
			var regErr *Error
			if errors.As(err, &regErr) && regErr.Reason == REASON_ALREADY_PROCESSED {
				return SaveResult{AlreadyProcessed: true}, nil
			}

			// A broken marker store must not block registrations; the
			// metadata saved flag still catches most duplicates.
			logger.Warn("Processed marker write failed, continuing without dedupe guard",
				slog.String("paymentIntentId", intentID),
				slog.String("error", err.Error()),
			)
		} else {
			marked = true
		}
	}

	if err := deps.Sheet.AppendRows(ctx, rows); err != nil {
		if marked {
			if unmarkErr := deps.Marker.UnmarkProcessed(ctx, intentID); unmarkErr != nil {
				logger.Error("Failed to roll back processed marker after append failure",
					slog.String("paymentIntentId", intentID),
					slog.String("error", unmarkErr.Error()),
				)
			}
		}
		return SaveResult{}, NewSheetAppendFailedError("Failed to append rows to sheet", err)
	}

	if deps.Provider != nil && intentID != "" {
		err := deps.Provider.UpdateIntentMetadata(ctx, intentID, map[string]string{metadataKeySaved: "true"})
		if err != nil {
			// The rows are already appended; a failed mark only risks a
			// duplicate attempt on a later reconciler run.
			logger.Warn("Could not mark intent as saved",
				slog.String("paymentIntentId", intentID),
				slog.String("error", err.Error()),
			)
		}
	}

	return SaveResult{RowsSaved: len(rows)}, nil
}

// PersistDirect is invoked right after a synchronous confirmation
// success, with the full in-memory registrant list. It does not read
// anything back from intent metadata.
func PersistDirect(ctx context.Context, logger *slog.Logger, people []Person, intentID string, deps PersistDeps) (SaveResult, error) {
	if len(people) == 0 {
		return SaveResult{}, NewNoRegistrationDataError("No people provided")
	}

	rows := BuildRows(people, intentID, time.Now())
	result, err := SaveBatch(ctx, logger, rows, intentID, deps)
	if err != nil || result.AlreadyProcessed {
		return result, err
	}

	result.People = people
	return result, nil
}

// Reconcile is the redirect-recovery path: it rebuilds registrant rows
// from intent metadata and persists them, tolerating truncated or
// malformed person slots by skipping those rows.
func Reconcile(ctx context.Context, logger *slog.Logger, intentID string, deps PersistDeps) (SaveResult, error) {
	if intentID == "" {
		return SaveResult{}, NewMissingIntentIDError("payment_intent is missing")
	}
	if deps.Provider == nil {
		return SaveResult{}, NewNotConfiguredError("Payment provider is not configured")
	}

	intent, err := deps.Provider.GetIntent(ctx, intentID)
	if err != nil {
		return SaveResult{}, NewPaymentProviderError(fmt.Sprintf("Failed to retrieve payment intent %q", intentID), err)
	}

	if intent.Status != INTENT_STATUS_SUCCEEDED {
		return SaveResult{}, NewPaymentNotSucceededError(fmt.Sprintf("Payment is not successful, status is %q", intent.Status))
	}

	if metadataMarkedSaved(intent.Metadata) {
		return SaveResult{AlreadyProcessed: true}, nil
	}

	n := participantCount(intent.Metadata)
	if n == 0 {
		return SaveResult{}, NewNoRegistrationDataError("No registration data found in payment metadata")
	}

	var people []Person
	for i := 0; i < n; i++ {
		p, ok := personFromSlot(intent.Metadata, i)
		if !ok {
			logger.Warn("Skipping unreadable person metadata slot",
				slog.String("paymentIntentId", intentID),
				slog.Int("personIndex", i),
			)
			continue
		}
		people = append(people, p)
	}

	if len(people) == 0 {
		return SaveResult{}, NewNoRegistrationDataError("No valid rows could be built from payment metadata")
	}

	rows := BuildRows(people, intentID, time.Now())
	result, err := SaveBatch(ctx, logger, rows, intentID, deps)
	if err != nil || result.AlreadyProcessed {
		return result, err
	}

	result.People = people
	return result, nil
}
