package registration

import "fmt"

type ErrorReason string

const (
	REASON_INVALID_AMOUNT        ErrorReason = "INVALID_AMOUNT"
	REASON_VALIDATION_FAILED     ErrorReason = "VALIDATION_FAILED"
	REASON_NOT_CONFIGURED        ErrorReason = "NOT_CONFIGURED"
	REASON_PAYMENT_PROVIDER      ErrorReason = "PAYMENT_PROVIDER_ERROR"
	REASON_PAYMENT_NOT_SUCCEEDED ErrorReason = "PAYMENT_NOT_SUCCEEDED"
	REASON_CONFIRMATION_FAILED   ErrorReason = "CONFIRMATION_FAILED"
	REASON_MISSING_INTENT_ID     ErrorReason = "MISSING_INTENT_ID"
	REASON_NO_REGISTRATION_DATA  ErrorReason = "NO_REGISTRATION_DATA"
	REASON_SHEET_APPEND_FAILED   ErrorReason = "SHEET_APPEND_FAILED"
	REASON_ALREADY_PROCESSED     ErrorReason = "ALREADY_PROCESSED"
	REASON_FAILED_TO_WRITE       ErrorReason = "FAILED_TO_WRITE"
	REASON_FAILED_TO_FETCH       ErrorReason = "FAILED_TO_FETCH"
	REASON_TIMEOUT               ErrorReason = "TIMEOUT"
)

type Error struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

func newRegistrationError(reason ErrorReason, message string, cause error) *Error {
	return &Error{
		Reason:  reason,
		Message: message,
		Cause:   cause,
	}
}

func NewInvalidAmountError(message string) *Error {
	return newRegistrationError(REASON_INVALID_AMOUNT, message, nil)
}

func NewValidationError(message string) *Error {
	return newRegistrationError(REASON_VALIDATION_FAILED, message, nil)
}

func NewNotConfiguredError(message string) *Error {
	return newRegistrationError(REASON_NOT_CONFIGURED, message, nil)
}

func NewPaymentProviderError(message string, cause error) *Error {
	return newRegistrationError(REASON_PAYMENT_PROVIDER, message, cause)
}

func NewPaymentNotSucceededError(message string) *Error {
	return newRegistrationError(REASON_PAYMENT_NOT_SUCCEEDED, message, nil)
}

func NewConfirmationFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_CONFIRMATION_FAILED, message, cause)
}

func NewMissingIntentIDError(message string) *Error {
	return newRegistrationError(REASON_MISSING_INTENT_ID, message, nil)
}

func NewNoRegistrationDataError(message string) *Error {
	return newRegistrationError(REASON_NO_REGISTRATION_DATA, message, nil)
}

func NewSheetAppendFailedError(message string, cause error) *Error {
	return newRegistrationError(REASON_SHEET_APPEND_FAILED, message, cause)
}

func NewAlreadyProcessedError(message string, cause error) *Error {
	return newRegistrationError(REASON_ALREADY_PROCESSED, message, cause)
}

func NewFailedToWriteError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_WRITE, message, cause)
}

func NewFailedToFetchError(message string, cause error) *Error {
	return newRegistrationError(REASON_FAILED_TO_FETCH, message, cause)
}

func NewTimeoutError(message string) *Error {
	return newRegistrationError(REASON_TIMEOUT, message, nil)
}
