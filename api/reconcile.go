package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/guemper-znacht/event-registration/registration"
)

type completeRegistrationResponse struct {
	Success          bool `json:"success"`
	Saved            int  `json:"saved,omitempty"`
	AlreadyProcessed bool `json:"alreadyProcessed,omitempty"`
}

// completeRegistration is called from the success page. It covers
// payment methods that went through an off-site redirect, where the
// synchronous persistence path never ran.
func (a *API) completeRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	intentID := r.URL.Query().Get("payment_intent")

	result, err := registration.Reconcile(ctx, logger, intentID, a.persistDeps())
	if err != nil {
		logger.Error("Failed to reconcile registration",
			slog.String("paymentIntentId", intentID),
			slog.String("error", err.Error()),
		)

		status, message := statusForError(err)
		a.writeError(w, status, message)
		return
	}

	if result.AlreadyProcessed {
		logger.Info("Intent already processed, skipping", slog.String("paymentIntentId", intentID))
		a.writeJSON(w, http.StatusOK, completeRegistrationResponse{Success: true, AlreadyProcessed: true})
		return
	}

	a.sendConfirmationEmail(ctx, logger, result.People, intentID)

	a.writeJSON(w, http.StatusOK, completeRegistrationResponse{Success: true, Saved: result.RowsSaved})
}

// sendConfirmationEmail is best-effort: the registration is already
// persisted, so a mail failure is logged and never surfaced.
func (a *API) sendConfirmationEmail(ctx context.Context, logger *slog.Logger, people []registration.Person, intentID string) {
	if a.emailSender == nil || len(people) == 0 {
		return
	}

	err := registration.SendRegistrationConfirmationEmail(ctx, a.emailSender, a.emailFrom, people, intentID)
	if err != nil {
		logger.Error("failed to send confirmation email",
			slog.String("paymentIntentId", intentID),
			slog.String("error", err.Error()),
		)
	}
}
