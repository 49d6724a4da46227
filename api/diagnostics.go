package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/guemper-znacht/event-registration/registration"
)

type envValueInfo struct {
	Exists  bool   `json:"exists"`
	Preview string `json:"preview,omitempty"`
	Length  int    `json:"length,omitempty"`
}

type checkEnvResponse struct {
	Status      string                  `json:"status"`
	Environment map[string]envValueInfo `json:"environment"`
	Message     string                  `json:"message"`
}

// checkEnv reports which configuration values are present. Only short
// previews of non-secret values are exposed.
func (a *API) checkEnv(w http.ResponseWriter, r *http.Request) {
	message := "Environment variables are loaded"
	if a.publishableKey == "" {
		message = "STRIPE_PUBLISHABLE_KEY is missing"
	}

	a.writeJSON(w, http.StatusOK, checkEnvResponse{
		Status: "ok",
		Environment: map[string]envValueInfo{
			"STRIPE_PUBLISHABLE_KEY": {
				Exists:  a.publishableKey != "",
				Preview: preview(a.publishableKey, 12),
				Length:  len(a.publishableKey),
			},
			"STRIPE_SECRET_KEY": {
				Exists: a.secretKeyConfigured,
			},
			"GOOGLE_APPS_SCRIPT_URL": {
				Exists:  a.sheetURL != "",
				Preview: preview(a.sheetURL, 30),
			},
		},
		Message: message,
	})
}

type testGoogleScriptResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	URL     string `json:"url,omitempty"`
}

// testGoogleScript issues one real append with a fixed sample row.
// This is the only diagnostics endpoint with a side effect.
func (a *API) testGoogleScript(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := a.getLoggerOrBaseLogger(ctx)

	if a.sheet == nil {
		a.writeJSON(w, http.StatusOK, testGoogleScriptResponse{
			Success: false,
			Error:   "GOOGLE_APPS_SCRIPT_URL is not set",
		})
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	err := a.sheet.AppendRows(ctx, registration.BuildRows([]registration.Person{{
		FirstName:  "Test",
		LastName:   "User",
		Phone:      "+41 79 123 45 67",
		Email:      "test@example.com",
		MealOption: registration.MEAL_MEAT,
		Allergies:  "Keine",
	}}, "test_payment_123", time.Now()))
	if err != nil {
		logger.Warn("Sheet test append failed", slog.String("error", err.Error()))
		a.writeJSON(w, http.StatusOK, testGoogleScriptResponse{
			Success: false,
			Error:   err.Error(),
			URL:     preview(a.sheetURL, 50),
		})
		return
	}

	a.writeJSON(w, http.StatusOK, testGoogleScriptResponse{
		Success: true,
		URL:     preview(a.sheetURL, 50),
	})
}

func preview(s string, n int) string {
	if s == "" {
		return ""
	}
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
