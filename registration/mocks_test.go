package registration

import (
	"context"
	"log/slog"
)

var noopLogger = slog.New(slog.DiscardHandler)

var _ PaymentProvider = &mockProvider{}

type mockProvider struct {
	CreateIntentFunc         func(ctx context.Context, params CreateIntentParams) (Intent, error)
	GetIntentFunc            func(ctx context.Context, id string) (Intent, error)
	UpdateIntentMetadataFunc func(ctx context.Context, id string, metadata map[string]string) error
}

func (m *mockProvider) CreateIntent(ctx context.Context, params CreateIntentParams) (Intent, error) {
	if m.CreateIntentFunc != nil {
		return m.CreateIntentFunc(ctx, params)
	}
	return Intent{}, nil
}

func (m *mockProvider) GetIntent(ctx context.Context, id string) (Intent, error) {
	if m.GetIntentFunc != nil {
		return m.GetIntentFunc(ctx, id)
	}
	return Intent{}, nil
}

func (m *mockProvider) UpdateIntentMetadata(ctx context.Context, id string, metadata map[string]string) error {
	if m.UpdateIntentMetadataFunc != nil {
		return m.UpdateIntentMetadataFunc(ctx, id, metadata)
	}
	return nil
}

var _ SheetAppender = &mockSheet{}

type mockSheet struct {
	AppendRowsFunc func(ctx context.Context, rows []SheetRow) error
}

func (m *mockSheet) AppendRows(ctx context.Context, rows []SheetRow) error {
	if m.AppendRowsFunc != nil {
		return m.AppendRowsFunc(ctx, rows)
	}
	return nil
}

var _ ProcessedMarker = &mockMarker{}

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

var _ IntentConfirmer = &mockConfirmer{}

type mockConfirmer struct {
	ConfirmIntentFunc func(ctx context.Context, clientSecret string, returnURL string) (ConfirmOutcome, error)
}

func (m *mockConfirmer) ConfirmIntent(ctx context.Context, clientSecret string, returnURL string) (ConfirmOutcome, error) {
	if m.ConfirmIntentFunc != nil {
		return m.ConfirmIntentFunc(ctx, clientSecret, returnURL)
	}
	return ConfirmOutcome{}, nil
}

func validPeople(n int) []Person {
	names := []string{"Anna", "Beat", "Clara", "David", "Elena"}
	people := make([]Person, 0, n)
	for i := 0; i < n; i++ {
		people = append(people, Person{
			FirstName:  names[i%len(names)],
			LastName:   "Muster",
			Phone:      "+41 79 123 45 67",
			Email:      "anna@example.com",
			MealOption: MEAL_VEGETARIAN,
		})
	}
	return people
}
