package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/guemper-znacht/event-registration/ptr"
	"github.com/guemper-znacht/event-registration/registration"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePaymentIntent(t *testing.T) {
	t.Run("returns the client secret", func(t *testing.T) {
		var created registration.CreateIntentParams
		provider := &mockProvider{
			CreateIntentFunc: func(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error) {
				created = params
				return registration.Intent{ID: "pi_abc", ClientSecret: "pi_abc_secret"}, nil
			},
		}
		api := newTestAPI(apiOpts{provider: provider})

		body := `{
			"amount": 34000,
			"numberOfParticipants": 2,
			"totalAmount": 340,
			"people": [
				{"vorname": "Anna", "name": "Muster", "tel": "+41 79 123 45 67", "email": "anna@example.com", "option": "Vegi", "allergien": ""},
				{"vorname": "Beat", "name": "Muster", "tel": "+41 79 123 45 68", "email": "beat@example.com", "option": "Fleisch", "allergien": "Nüsse"}
			]
		}`
		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(body))
		w := httptest.NewRecorder()

		api.createPaymentIntent(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp createPaymentIntentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "pi_abc_secret", resp.ClientSecret)

		assert.Equal(t, int64(34000), created.Amount)
		assert.Equal(t, "chf", created.Currency)
		assert.Equal(t, "2", created.Metadata["numberOfParticipants"])
		assert.Equal(t, "340", created.Metadata["totalAmount"])
		assert.Contains(t, created.Metadata["p0"], `"vorname":"Anna"`)
		assert.Contains(t, created.Metadata["p1"], `"option":"Fleisch"`)
	})

	t.Run("optional fields override the defaults", func(t *testing.T) {
		var created registration.CreateIntentParams
		provider := &mockProvider{
			CreateIntentFunc: func(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error) {
				created = params
				return registration.Intent{ClientSecret: "pi_abc_secret"}, nil
			},
		}
		api := newTestAPI(apiOpts{provider: provider})

		body, err := json.Marshal(createPaymentIntentRequest{
			Amount:               17000,
			Currency:             ptr.String("eur"),
			NumberOfParticipants: ptr.Int(1),
			TotalAmount:          ptr.Int64(170),
		})
		require.NoError(t, err)

		req := httptest.NewRequest("POST", "/create-payment-intent", bytes.NewReader(body))
		w := httptest.NewRecorder()

		api.createPaymentIntent(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "eur", created.Currency)
		assert.Equal(t, "1", created.Metadata["numberOfParticipants"])
		assert.Equal(t, "170", created.Metadata["totalAmount"])
	})

	t.Run("missing provider is a configuration error", func(t *testing.T) {
		api := newTestAPI(apiOpts{})

		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount": 17000}`))
		w := httptest.NewRecorder()

		api.createPaymentIntent(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, "STRIPE_SECRET_KEY")
	})

	t.Run("malformed body is a bad request", func(t *testing.T) {
		api := newTestAPI(apiOpts{provider: &mockProvider{}})

		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount":`))
		w := httptest.NewRecorder()

		api.createPaymentIntent(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("non-positive amount is a bad request", func(t *testing.T) {
		providerCalls := 0
		provider := &mockProvider{
			CreateIntentFunc: func(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error) {
				providerCalls++
				return registration.Intent{}, nil
			},
		}
		api := newTestAPI(apiOpts{provider: provider})

		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount": 0}`))
		w := httptest.NewRecorder()

		api.createPaymentIntent(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, providerCalls)
	})

	t.Run("provider failure is a server error", func(t *testing.T) {
		provider := &mockProvider{
			CreateIntentFunc: func(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error) {
				return registration.Intent{}, errors.New("stripe is down")
			},
		}
		api := newTestAPI(apiOpts{provider: provider})

		req := httptest.NewRequest("POST", "/create-payment-intent", strings.NewReader(`{"amount": 17000}`))
		w := httptest.NewRecorder()

		api.createPaymentIntent(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
