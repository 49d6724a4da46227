package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/guemper-znacht/event-registration/registration"
)

type createPaymentIntentRequest struct {
	Amount               int64                 `json:"amount"`
	Currency             *string               `json:"currency,omitempty"`
	NumberOfParticipants *int                  `json:"numberOfParticipants,omitempty"`
	People               []registration.Person `json:"people,omitempty"`
	TotalAmount          *int64                `json:"totalAmount,omitempty"`
}

type createPaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

func (a *API) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	if a.provider == nil {
		a.writeError(w, http.StatusInternalServerError, "Stripe is not configured. Please check STRIPE_SECRET_KEY in your environment.")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 65536)
	var body createPaymentIntentRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		logger.Warn("Invalid body for create-payment-intent", slog.String("error", err.Error()))
		a.writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	params := registration.IssueIntentParams{
		Amount: body.Amount,
		People: body.People,
	}
	if body.Currency != nil {
		params.Currency = *body.Currency
	}
	if body.NumberOfParticipants != nil {
		params.NumberOfParticipants = *body.NumberOfParticipants
	}
	if body.TotalAmount != nil {
		params.TotalAmount = *body.TotalAmount
	}

	clientSecret, err := registration.IssueIntent(ctx, logger, params, a.provider)
	if err != nil {
		logger.Error("Failed to issue payment intent", slog.String("error", err.Error()))

		status, message := statusForError(err)
		a.writeError(w, status, message)
		return
	}

	a.writeJSON(w, http.StatusOK, createPaymentIntentResponse{ClientSecret: clientSecret})
}
