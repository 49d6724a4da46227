package api

import (
	"context"
	"log/slog"

	"github.com/guemper-znacht/event-registration/email"
	"github.com/guemper-znacht/event-registration/registration"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ registration.PaymentProvider = &mockProvider{}

type mockProvider struct {
	CreateIntentFunc         func(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error)
	GetIntentFunc            func(ctx context.Context, id string) (registration.Intent, error)
	UpdateIntentMetadataFunc func(ctx context.Context, id string, metadata map[string]string) error
}

func (m *mockProvider) CreateIntent(ctx context.Context, params registration.CreateIntentParams) (registration.Intent, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, params)
	}
	return registration.Intent{}, nil
}

func (m *mockProvider) GetIntent(ctx context.Context, id string) (registration.Intent, error) {
	if m.GetIntentFunc != nil {
		return m.GetIntentFunc(ctx, id)
	}
	return registration.Intent{}, nil
}

func (m *mockProvider) UpdateIntentMetadata(ctx context.Context, id string, metadata map[string]string) error {
	if m.UpdateIntentMetadataFunc != nil {
		return m.UpdateIntentMetadataFunc(ctx, id, metadata)
	}
	return nil
}

var _ registration.SheetAppender = &mockSheet{}

type mockSheet struct {
	AppendRowsFunc func(ctx context.Context, rows []registration.SheetRow) error
}

func (m *mockSheet) AppendRows(ctx context.Context, rows []registration.SheetRow) error {
	if m.AppendRowsFunc != nil {
		return m.AppendRowsFunc(ctx, rows)
	}
	return nil
}

var _ registration.ProcessedMarker = &mockMarker{}

type mockMarker struct {
	MarkProcessedFunc   func(ctx context.Context, intentID string, rowCount int) error
	UnmarkProcessedFunc func(ctx context.Context, intentID string) error
}

func (m *mockMarker) MarkProcessed(ctx context.Context, intentID string, rowCount int) error {
	if m.MarkProcessedFunc != nil {
		return m.MarkProcessedFunc(ctx, intentID, rowCount)
	}
	return nil
}

func (m *mockMarker) UnmarkProcessed(ctx context.Context, intentID string) error {
	if m.UnmarkProcessedFunc != nil {
		return m.UnmarkProcessedFunc(ctx, intentID)
	}
	return nil
}

var _ email.Sender = &mockEmailSender{}

type mockEmailSender struct {
	SendEmailFunc func(ctx context.Context, e email.Email) error
}

func (m *mockEmailSender) SendEmail(ctx context.Context, e email.Email) error {
	if m.SendEmailFunc != nil {
		return m.SendEmailFunc(ctx, e)
	}
	return nil
}

type apiOpts struct {
	env            Environment
	provider       registration.PaymentProvider
	sheet          registration.SheetAppender
	marker         registration.ProcessedMarker
	emailSender    email.Sender
	publishableKey string
	secretKeySet   bool
	sheetURL       string
}

func newTestAPI(opts apiOpts) *API {
	return NewAPI(
		noopLogger,
		opts.env,
		opts.provider,
		opts.sheet,
		opts.marker,
		opts.emailSender,
		"noreply@guemper-znacht.ch",
		opts.publishableKey,
		opts.secretKeySet,
		opts.sheetURL,
	)
}

func testPerson(firstName string, email string) registration.Person {
	return registration.Person{
		FirstName:  firstName,
		LastName:   "Muster",
		Phone:      "+41 79 123 45 67",
		Email:      email,
		MealOption: registration.MEAL_VEGAN,
	}
}
