package registration

import "context"

type IntentStatus string

const (
	INTENT_STATUS_SUCCEEDED       IntentStatus = "succeeded"
	INTENT_STATUS_PROCESSING      IntentStatus = "processing"
	INTENT_STATUS_REQUIRES_ACTION IntentStatus = "requires_action"
)

// Intent is the provider-side record for one payment attempt. Metadata
// is the only durable copy of the registrant data before the sheet
// append happens.
type Intent struct {
	ID           string
	ClientSecret string
	Status       IntentStatus
	Metadata     map[string]string
}

type CreateIntentParams struct {
	// Amount is in the smallest currency unit.
	Amount   int64
	Currency string
	Metadata map[string]string
}

type PaymentProvider interface {
	CreateIntent(ctx context.Context, params CreateIntentParams) (Intent, error)
	GetIntent(ctx context.Context, id string) (Intent, error)
	// UpdateIntentMetadata merges the given keys into the intent's
	// existing metadata.
	UpdateIntentMetadata(ctx context.Context, id string, metadata map[string]string) error
}

type SheetAppender interface {
	// AppendRows persists all rows in a single batched call.
	AppendRows(ctx context.Context, rows []SheetRow) error
}

// ProcessedMarker is the exactly-once guard keyed by intent ID.
// MarkProcessed must be a conditional write: it returns an Error with
// REASON_ALREADY_PROCESSED when a marker for the intent already exists.
type ProcessedMarker interface {
	MarkProcessed(ctx context.Context, intentID string, rowCount int) error
	UnmarkProcessed(ctx context.Context, intentID string) error
}

// IntentConfirmer submits the hosted payment UI and confirms the
// intent. The production implementation lives in the browser widget;
// this interface is the seam the checkout flow sees.
type IntentConfirmer interface {
	ConfirmIntent(ctx context.Context, clientSecret string, returnURL string) (ConfirmOutcome, error)
}

type ConfirmOutcome struct {
	IntentID string
	Status   IntentStatus
	// RedirectStarted reports that the chosen payment method left for
	// an off-site redirect; recovery happens on the success page.
	RedirectStarted bool
}
