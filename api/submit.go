package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/guemper-znacht/event-registration/registration"
)

type submitRegistrationRequest struct {
	People          []registration.Person `json:"people"`
	PaymentIntentID string                `json:"paymentIntentId"`
	TotalAmount     int64                 `json:"totalAmount"`
}

type submitRegistrationResponse struct {
	Success bool `json:"success"`
}

// submitRegistration is the direct persistence path, invoked right
// after a synchronous confirmation success with the full in-memory
// registrant list. The payment has already completed; a failure here
// is surfaced so the user can contact the organizers, it is never
// rolled back.
func (a *API) submitRegistration(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, 65536)
	var body submitRegistrationRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("Invalid body for submit-registration", slog.String("error", err.Error()))
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if len(body.People) == 0 {
		a.writeError(w, http.StatusBadRequest, "No people provided")
		return
	}

	if a.sheet == nil {
		a.writeError(w, http.StatusInternalServerError, "Configuration error (sheet endpoint URL is missing)")
		return
	}

	result, err := registration.PersistDirect(ctx, logger, body.People, body.PaymentIntentID, a.persistDeps())
	if err != nil {
		logger.Error("Failed to persist registration",
			slog.String("paymentIntentId", body.PaymentIntentID),
			slog.String("error", err.Error()),
		)

		status, message := statusForError(err)
		resp := errorResponse{Error: message}
		if a.env == LOCAL {
			resp.Details = err.Error()
		}
		a.writeJSON(w, status, resp)
		return
	}

	if result.AlreadyProcessed {
		logger.Info("Intent already processed, skipping", slog.String("paymentIntentId", body.PaymentIntentID))
		a.writeJSON(w, http.StatusOK, submitRegistrationResponse{Success: true})
		return
	}

	a.sendConfirmationEmail(ctx, logger, result.People, body.PaymentIntentID)

	a.writeJSON(w, http.StatusOK, submitRegistrationResponse{Success: true})
}
