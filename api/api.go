package api

import (
	"log/slog"
	"net/http"

	"github.com/guemper-znacht/event-registration/email"
	"github.com/guemper-znacht/event-registration/registration"
)

type Environment int

const (
	LOCAL Environment = iota
	PROD
)

type API struct {
	logger      *slog.Logger
	env         Environment
	provider    registration.PaymentProvider
	sheet       registration.SheetAppender
	marker      registration.ProcessedMarker
	emailSender email.Sender
	emailFrom   string

	// Config echoes for the diagnostics endpoints; never the secrets
	// themselves.
	publishableKey      string
	secretKeyConfigured bool
	sheetURL            string
}

// NewAPI wires every dependency explicitly. provider, sheet, marker
// and emailSender may be nil; the corresponding feature then answers
// with a configuration error instead of crashing the process.
func NewAPI(
	logger *slog.Logger,
	env Environment,
	provider registration.PaymentProvider,
	sheet registration.SheetAppender,
	marker registration.ProcessedMarker,
	emailSender email.Sender,
	emailFrom string,
	publishableKey string,
	secretKeyConfigured bool,
	sheetURL string,
) *API {
	return &API{
		logger:              logger,
		env:                 env,
		provider:            provider,
		sheet:               sheet,
		marker:              marker,
		emailSender:         emailSender,
		emailFrom:           emailFrom,
		publishableKey:      publishableKey,
		secretKeyConfigured: secretKeyConfigured,
		sheetURL:            sheetURL,
	}
}

func (a *API) Routes() *http.ServeMux {
	r := http.NewServeMux()

	r.HandleFunc("POST /create-payment-intent", a.createPaymentIntent)
	r.HandleFunc("GET /complete-registration", a.completeRegistration)
	r.HandleFunc("POST /submit-registration", a.submitRegistration)
	r.HandleFunc("GET /check-env", a.checkEnv)
	r.HandleFunc("GET /test-google-script", a.testGoogleScript)

	return r
}

func (a *API) persistDeps() registration.PersistDeps {
	return registration.PersistDeps{
		Sheet:    a.sheet,
		Marker:   a.marker,
		Provider: a.provider,
	}
}
