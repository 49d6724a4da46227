package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/guemper-znacht/event-registration/registration"
)

// Every error body is a structured {"error": ...} JSON object; no
// error ever leaves a handler untranslated.
type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

func (a *API) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		a.logger.Error("failed to marshal response body", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error": "internal error"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(jsonBody)
}

func (a *API) writeError(w http.ResponseWriter, statusCode int, message string) {
	a.writeJSON(w, statusCode, errorResponse{Error: message})
}

// statusForError maps the domain error taxonomy to HTTP status codes:
// validation problems are the caller's to fix, configuration and
// upstream failures are server-side.
func statusForError(err error) (int, string) {
	var regErr *registration.Error
	if errors.As(err, &regErr) {
		switch regErr.Reason {
		case registration.REASON_INVALID_AMOUNT,
			registration.REASON_VALIDATION_FAILED,
			registration.REASON_MISSING_INTENT_ID,
			registration.REASON_NO_REGISTRATION_DATA,
			registration.REASON_PAYMENT_NOT_SUCCEEDED:
			return http.StatusBadRequest, regErr.Message
		case registration.REASON_NOT_CONFIGURED:
			return http.StatusInternalServerError, regErr.Message
		}
		return http.StatusInternalServerError, regErr.Message
	}

	return http.StatusInternalServerError, err.Error()
}
